package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/scope"
)

var productColumns = []string{"name", "category", "status", "stock", "price", "updated_at"}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

func (r *GormRepo) GetProduct(ctx context.Context, sc scope.Scope, id uuid.UUID) (*models.Product, error) {
	var prod models.Product
	if err := r.scoped(ctx, &models.Product{}, sc).Where("products.id = ?", id).First(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

func (r *GormRepo) ListProducts(ctx context.Context, sc scope.Scope, offset, limit int) (int64, []models.Product, error) {
	var total int64
	if err := r.scoped(ctx, &models.Product{}, sc).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.Product, 0, limit)
	if err := r.scoped(ctx, &models.Product{}, sc).
		Order("products.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

// UpdateProduct writes the mutable columns only, owner_id is never touched.
func (r *GormRepo) UpdateProduct(ctx context.Context, prod *models.Product) error {
	res := r.DB.WithContext(ctx).Model(prod).Select(productColumns).Updates(prod)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteProduct(ctx context.Context, sc scope.Scope, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Scopes(sc).Where("products.id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ProductsByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Product, error) {
	var prods []models.Product
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&prods).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]models.Product, len(prods))
	for _, p := range prods {
		out[p.ID] = p
	}
	return out, nil
}

func (r *GormRepo) ProducerCategories(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	categories := []string{}
	if err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("owner_id = ?", ownerID).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
