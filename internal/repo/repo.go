package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/scope"
)

type GormRepo struct {
	DB *gorm.DB
}

// Transaction runs fn against a repo bound to a single transaction.
func (r *GormRepo) Transaction(ctx context.Context, fn func(tx *GormRepo) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{DB: tx})
	})
}

func (r *GormRepo) scoped(ctx context.Context, model any, sc scope.Scope) *gorm.DB {
	return r.DB.WithContext(ctx).Model(model).Scopes(sc)
}
