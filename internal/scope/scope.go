// Package scope resolves which rows of a resource an actor may see or
// change. Every repository query that touches products, profiles or orders
// is built from one of these scopes.
package scope

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/pkg/tokens"
)

type Scope func(*gorm.DB) *gorm.DB

func none(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

func all(db *gorm.DB) *gorm.DB {
	return db
}

// Products limits products to the ones the actor owns. Admins see all.
func Products(actor domain.Actor) (Scope, error) {
	id, ok := actor.Identity()
	if !ok {
		return nil, domain.ErrLoginRequired
	}
	if actor.IsAdmin() {
		return all, nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("products.owner_id = ?", id)
	}, nil
}

// PublicProducts is the catalog a producer shows to everyone.
func PublicProducts(producerID uuid.UUID) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("products.owner_id = ? AND products.status = ?", producerID, domain.ProductActive)
	}
}

// ProducerListing hides staff identities.
func ProducerListing() Scope {
	return func(db *gorm.DB) *gorm.DB {
		staff := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.User{}).
			Select("id").
			Where("role = ?", tokens.RoleAdmin)
		return db.Where("producer_profiles.user_id NOT IN (?)", staff)
	}
}

func ProducerDetail(profileID uuid.UUID) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("producer_profiles.id = ?", profileID)
	}
}

func MyProfile(actor domain.Actor) (Scope, error) {
	id, ok := actor.Identity()
	if !ok {
		return nil, domain.ErrLoginRequired
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("producer_profiles.user_id = ?", id)
	}, nil
}

// OrderListing applies the first matching rule: a client phone filter wins
// over authentication, an admin sees every order, a producer sees its own
// and anyone else sees nothing.
func OrderListing(actor domain.Actor, clientPhone string) Scope {
	if clientPhone != "" {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("orders.client_phone = ?", clientPhone)
		}
	}
	if actor.IsAdmin() {
		return all
	}
	if id, ok := actor.Identity(); ok {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("orders.producer_id = ?", id)
		}
	}
	return none
}

// OwnedOrder is used for single-order reads.
func OwnedOrder(actor domain.Actor) (Scope, error) {
	id, ok := actor.Identity()
	if !ok {
		return nil, domain.ErrLoginRequired
	}
	if actor.IsAdmin() {
		return all, nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("orders.producer_id = ?", id)
	}, nil
}

// CanMutateOrder re-checks ownership of an already loaded order.
func CanMutateOrder(actor domain.Actor, order *models.Order) error {
	id, ok := actor.Identity()
	if !ok {
		return domain.ErrLoginRequired
	}
	if actor.IsAdmin() {
		return nil
	}
	if order.ProducerID != id {
		return domain.ErrOrderPermission
	}
	return nil
}

func ProducerRatings(actor domain.Actor) (Scope, error) {
	id, ok := actor.Identity()
	if !ok {
		return nil, domain.ErrLoginRequired
	}
	if actor.IsAdmin() {
		return all, nil
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("ratings.producer_id = ?", id)
	}, nil
}
