package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/pkg/tokens"
)

func TestProfile_ListExcludesStaffSortedByName(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducer("Zeca Hortifruti")
	env.seedProducer("Ana Orgânicos")

	staff := &models.User{Username: "root", PasswordHash: "x", Role: tokens.RoleAdmin}
	require.NoError(t, env.Repo.CreateProducer(env.Ctx, staff, &models.ProducerProfile{Name: "Admin", TaxID: "999"}))

	total, items, err := env.Profile.List(env.Ctx, 0, 20)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Ana Orgânicos", items[0].Name)
	assert.Equal(t, "Zeca Hortifruti", items[1].Name)
}

func TestProfile_DetailDerivesCategories(t *testing.T) {
	env := newTestEnv(t)
	alice, profile := env.seedProducer("Alice")
	env.seedProduct(alice, "Tomate", "1.00")
	env.seedProduct(alice, "Alface", "1.00")

	_, err := env.Catalog.CreateProduct(env.Ctx, alice, productIn("Mel", "Apicultura"))
	require.NoError(t, err)

	view, err := env.Profile.Detail(env.Ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Apicultura", "Legumes"}, view.Categories)
	assert.Equal(t, 0.0, view.AverageRating)
	assert.Zero(t, view.RatingCount)
}

func TestProfile_Mine(t *testing.T) {
	env := newTestEnv(t)
	alice, profile := env.seedProducer("Alice")

	view, err := env.Profile.Mine(env.Ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, view.Profile.ID)

	_, err = env.Profile.Mine(env.Ctx, domain.Anonymous())
	require.ErrorIs(t, err, domain.ErrUnauthenticated)

	staff := &models.User{Username: "root", PasswordHash: "x", Role: tokens.RoleAdmin}
	require.NoError(t, env.Repo.CreateUser(env.Ctx, staff))
	_, err = env.Profile.Mine(env.Ctx, domain.Admin(staff.ID))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfile_UpdateMine(t *testing.T) {
	env := newTestEnv(t)
	alice, profile := env.seedProducer("Alice")

	city := "Campinas"
	name := "  Sitio Alice "
	view, err := env.Profile.UpdateMine(env.Ctx, alice, ProfilePatch{Name: &name, City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Sitio Alice", view.Profile.Name)
	assert.Equal(t, "Campinas", view.Profile.City)
	assert.Equal(t, profile.TaxID, view.Profile.TaxID)

	sameTax := profile.TaxID
	_, err = env.Profile.UpdateMine(env.Ctx, alice, ProfilePatch{TaxID: &sameTax})
	require.NoError(t, err)

	otherTax := "12345678000199"
	_, err = env.Profile.UpdateMine(env.Ctx, alice, ProfilePatch{TaxID: &otherTax})
	require.ErrorIs(t, err, domain.ErrTaxIDImmutable)

	empty := " "
	_, err = env.Profile.UpdateMine(env.Ctx, alice, ProfilePatch{Name: &empty})
	require.ErrorIs(t, err, domain.ErrValidation)
}
