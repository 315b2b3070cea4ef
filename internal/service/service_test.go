package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/validation"
	"github.com/Skotchmaster/marketplace/pkg/config"
	pkgdb "github.com/Skotchmaster/marketplace/pkg/db"
	"github.com/Skotchmaster/marketplace/pkg/tokens"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *recordingPublisher) PublishEvent(_ context.Context, _, _ string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event.(Event))
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type testEnv struct {
	T       *testing.T
	Ctx     context.Context
	Repo    *repo.GormRepo
	Pub     *recordingPublisher
	Catalog *CatalogService
	Orders  *OrderService
	Ratings *RatingService
	Profile *ProfileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := pkgdb.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	r := &repo.GormRepo{DB: db}
	pub := &recordingPublisher{}
	events := &Events{Pub: pub, Topic: "marketplace_events"}

	return &testEnv{
		T:       t,
		Ctx:     context.Background(),
		Repo:    r,
		Pub:     pub,
		Catalog: &CatalogService{Repo: r},
		Orders:  &OrderService{Repo: r, Events: events, TotalPolicy: config.TotalPolicyTrust},
		Ratings: &RatingService{Repo: r, Events: events},
		Profile: &ProfileService{Repo: r},
	}
}

var seq int

// seedProducer stores a producer login and profile without hashing a real
// password.
func (env *testEnv) seedProducer(name string) (domain.Actor, *models.ProducerProfile) {
	env.T.Helper()
	seq++
	user := &models.User{Username: fmt.Sprintf("user%d", seq), PasswordHash: "x", Role: tokens.RoleProducer}
	profile := &models.ProducerProfile{Name: name, TaxID: fmt.Sprintf("%014d", seq)}
	require.NoError(env.T, env.Repo.CreateProducer(env.Ctx, user, profile))
	return domain.Producer(user.ID), profile
}

func productIn(name, category string) validation.ProductInput {
	return validation.ProductInput{
		Name:     name,
		Category: category,
		Stock:    10,
		Price:    decimal.RequireFromString("1.00"),
	}
}

func (env *testEnv) seedProduct(owner domain.Actor, name, price string) *models.Product {
	env.T.Helper()
	in := productIn(name, "Legumes")
	in.Price = decimal.RequireFromString(price)
	prod, err := env.Catalog.CreateProduct(env.Ctx, owner, in)
	require.NoError(env.T, err)
	return prod
}

func (env *testEnv) placeOrder(producer domain.Actor, phone string, lines ...validation.OrderLine) *OrderView {
	env.T.Helper()
	id, _ := producer.Identity()
	view, err := env.Orders.Create(env.Ctx, validation.OrderInput{
		ProducerID:  id,
		ClientName:  "Maria",
		ClientPhone: phone,
		TotalPrice:  decimal.RequireFromString("25.00"),
		Items:       lines,
	})
	require.NoError(env.T, err)
	return view
}

func (env *testEnv) deliveredOrder(producer domain.Actor, prod *models.Product) uuid.UUID {
	env.T.Helper()
	view := env.placeOrder(producer, "11999990000", validation.OrderLine{ProductID: prod.ID, Quantity: 1})
	_, err := env.Orders.UpdateStatus(env.Ctx, producer, view.Order.ID, domain.OrderDelivered)
	require.NoError(env.T, err)
	return view.Order.ID
}
