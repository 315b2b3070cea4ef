package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/internal/validation"
)

func TestCatalog_CreateSetsOwnerAndDefaults(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.seedProducer("Alice")

	prod, err := env.Catalog.CreateProduct(env.Ctx, alice, validation.ProductInput{
		Name:     "  Tomate ",
		Category: "Legumes",
		Stock:    3,
		Price:    decimal.RequireFromString("4.5"),
	})
	require.NoError(t, err)

	owner, _ := alice.Identity()
	assert.Equal(t, owner, prod.OwnerID)
	assert.Equal(t, "Tomate", prod.Name)
	assert.Equal(t, domain.ProductActive, prod.Status)
	assert.Equal(t, "4.50", prod.Price.StringFixed(2))
}

func TestCatalog_AnonymousRejected(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Catalog.CreateProduct(env.Ctx, domain.Anonymous(), validation.ProductInput{})
	require.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, _, err = env.Catalog.ListProducts(env.Ctx, domain.Anonymous(), 0, 20)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestCatalog_CrossOwnerIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.seedProducer("Alice")
	bob, _ := env.seedProducer("Bob")
	prod := env.seedProduct(alice, "Tomate", "10.00")

	_, err := env.Catalog.GetProduct(env.Ctx, bob, prod.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	name := "Stolen"
	_, err = env.Catalog.PatchProduct(env.Ctx, bob, prod.ID, ProductPatch{Name: &name})
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = env.Catalog.DeleteProduct(env.Ctx, bob, prod.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	total, items, err := env.Catalog.ListProducts(env.Ctx, bob, 0, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)

	got, err := env.Catalog.GetProduct(env.Ctx, alice, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tomate", got.Name)
}

func TestCatalog_PatchKeepsOwner(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.seedProducer("Alice")
	prod := env.seedProduct(alice, "Tomate", "10.00")

	price := decimal.RequireFromString("12.30")
	status := domain.ProductInactive
	updated, err := env.Catalog.PatchProduct(env.Ctx, alice, prod.ID, ProductPatch{Price: &price, Status: &status})
	require.NoError(t, err)

	assert.Equal(t, prod.OwnerID, updated.OwnerID)
	assert.Equal(t, "Tomate", updated.Name)
	assert.Equal(t, "12.30", updated.Price.StringFixed(2))
	assert.Equal(t, domain.ProductInactive, updated.Status)

	reloaded, err := env.Catalog.GetProduct(env.Ctx, alice, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, prod.OwnerID, reloaded.OwnerID)
	assert.True(t, price.Equal(reloaded.Price))
}

func TestCatalog_PatchValidates(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.seedProducer("Alice")
	prod := env.seedProduct(alice, "Tomate", "10.00")

	stock := -1
	_, err := env.Catalog.PatchProduct(env.Ctx, alice, prod.ID, ProductPatch{Stock: &stock})
	require.ErrorIs(t, err, domain.ErrValidation)

	price := decimal.RequireFromString("1.234")
	_, err = env.Catalog.PatchProduct(env.Ctx, alice, prod.ID, ProductPatch{Price: &price})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalog_ReplaceResetsStatusDefault(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.seedProducer("Alice")
	prod := env.seedProduct(alice, "Tomate", "10.00")

	got, err := env.Catalog.ReplaceProduct(env.Ctx, alice, prod.ID, validation.ProductInput{
		Name:     "Cenoura",
		Category: "Raizes",
		Stock:    0,
		Price:    decimal.RequireFromString("2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cenoura", got.Name)
	assert.Equal(t, domain.ProductActive, got.Status)
	assert.Equal(t, 0, got.Stock)
}

func TestCatalog_DeleteThenList(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.seedProducer("Alice")
	first := env.seedProduct(alice, "A", "1.00")
	second := env.seedProduct(alice, "B", "1.00")

	total, items, err := env.Catalog.ListProducts(env.Ctx, alice, 0, 20)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, items, 2)

	require.NoError(t, env.Catalog.DeleteProduct(env.Ctx, alice, first.ID))
	err = env.Catalog.DeleteProduct(env.Ctx, alice, first.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	total, items, err = env.Catalog.ListProducts(env.Ctx, alice, 0, 20)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, second.ID, items[0].ID)
}

func TestCatalog_ProducerProductsShowsActiveOnly(t *testing.T) {
	env := newTestEnv(t)
	alice, profile := env.seedProducer("Alice")
	active := env.seedProduct(alice, "Tomate", "1.00")
	hidden := env.seedProduct(alice, "Batata", "1.00")

	status := domain.ProductInactive
	_, err := env.Catalog.PatchProduct(env.Ctx, alice, hidden.ID, ProductPatch{Status: &status})
	require.NoError(t, err)

	total, items, err := env.Catalog.ProducerProducts(env.Ctx, profile.ID, 0, 20)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, active.ID, items[0].ID)

	_, _, err = env.Catalog.ProducerProducts(env.Ctx, uuid.New(), 0, 20)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
