package scope

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/internal/models"
	pkgdb "github.com/Skotchmaster/marketplace/pkg/db"
)

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := pkgdb.OpenSQLite(":memory:")
	require.NoError(t, err)
	return db.Session(&gorm.Session{DryRun: true})
}

func sqlOf(db *gorm.DB, sc Scope) string {
	var orders []models.Order
	stmt := db.Model(&models.Order{}).Scopes(sc).Find(&orders).Statement
	return stmt.SQL.String()
}

func TestAuthenticatedScopesRejectAnonymous(t *testing.T) {
	anon := domain.Anonymous()

	_, err := Products(anon)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = MyProfile(anon)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = OwnedOrder(anon)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
	_, err = ProducerRatings(anon)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestOrderListing_Priority(t *testing.T) {
	db := dryRun(t)
	producer := domain.Producer(uuid.New())

	assert.Contains(t, sqlOf(db, OrderListing(producer, "555")), "orders.client_phone = ?")
	assert.NotContains(t, sqlOf(db, OrderListing(producer, "555")), "orders.producer_id")
	assert.Contains(t, sqlOf(db, OrderListing(producer, "")), "orders.producer_id = ?")
	assert.Contains(t, sqlOf(db, OrderListing(domain.Anonymous(), "")), "1 = 0")
}

func TestAdminScopesAreUnfiltered(t *testing.T) {
	db := dryRun(t)
	admin := domain.Admin(uuid.New())

	listing := sqlOf(db, OrderListing(admin, ""))
	assert.NotContains(t, listing, "orders.producer_id")
	assert.NotContains(t, listing, "1 = 0")
	assert.Contains(t, sqlOf(db, OrderListing(admin, "555")), "orders.client_phone = ?")

	owned, err := OwnedOrder(admin)
	require.NoError(t, err)
	assert.NotContains(t, sqlOf(db, owned), "orders.producer_id")

	products, err := Products(admin)
	require.NoError(t, err)
	assert.NotContains(t, sqlOf(db, products), "owner_id")

	ratings, err := ProducerRatings(admin)
	require.NoError(t, err)
	assert.NotContains(t, sqlOf(db, ratings), "ratings.producer_id")
}

func TestCanMutateOrder(t *testing.T) {
	owner := uuid.New()
	order := &models.Order{ProducerID: owner}

	require.NoError(t, CanMutateOrder(domain.Producer(owner), order))
	require.NoError(t, CanMutateOrder(domain.Admin(owner), order))
	require.ErrorIs(t, CanMutateOrder(domain.Producer(uuid.New()), order), domain.ErrPermissionDenied)
	require.NoError(t, CanMutateOrder(domain.Admin(uuid.New()), order))
	require.ErrorIs(t, CanMutateOrder(domain.Anonymous(), order), domain.ErrUnauthenticated)
}
