package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/scope"
	"github.com/Skotchmaster/marketplace/internal/validation"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

// ProductPatch carries the fields a caller wants to change. Nil means keep.
type ProductPatch struct {
	Name     *string
	Category *string
	Status   *domain.ProductStatus
	Stock    *int
	Price    *decimal.Decimal
}

func (s *CatalogService) CreateProduct(ctx context.Context, actor domain.Actor, in validation.ProductInput) (*models.Product, error) {
	owner, ok := actor.Identity()
	if !ok {
		return nil, domain.ErrLoginRequired
	}
	in, err := validation.Product(in)
	if err != nil {
		return nil, err
	}

	prod := &models.Product{
		OwnerID:  owner,
		Name:     in.Name,
		Category: in.Category,
		Status:   in.Status,
		Stock:    in.Stock,
		Price:    in.Price,
	}
	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		return nil, storeErr(err, "product")
	}
	return prod, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, actor domain.Actor, id uuid.UUID) (*models.Product, error) {
	sc, err := scope.Products(actor)
	if err != nil {
		return nil, err
	}
	prod, err := s.Repo.GetProduct(ctx, sc, id)
	if err != nil {
		return nil, storeErr(err, "product")
	}
	return prod, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, actor domain.Actor, offset, limit int) (int64, []models.Product, error) {
	sc, err := scope.Products(actor)
	if err != nil {
		return 0, nil, err
	}
	total, items, err := s.Repo.ListProducts(ctx, sc, offset, limit)
	if err != nil {
		return 0, nil, storeErr(err, "products")
	}
	return total, items, nil
}

// ProducerProducts is the public catalog of the producer behind profileID.
func (s *CatalogService) ProducerProducts(ctx context.Context, profileID uuid.UUID, offset, limit int) (int64, []models.Product, error) {
	profile, err := s.Repo.GetProfile(ctx, scope.ProducerDetail(profileID))
	if err != nil {
		return 0, nil, storeErr(err, "producer")
	}
	total, items, err := s.Repo.ListProducts(ctx, scope.PublicProducts(profile.UserID), offset, limit)
	if err != nil {
		return 0, nil, storeErr(err, "products")
	}
	return total, items, nil
}

func (s *CatalogService) PatchProduct(ctx context.Context, actor domain.Actor, id uuid.UUID, patch ProductPatch) (*models.Product, error) {
	prod, err := s.GetProduct(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	in := validation.ProductInput{
		Name:     prod.Name,
		Category: prod.Category,
		Status:   prod.Status,
		Stock:    prod.Stock,
		Price:    prod.Price,
	}
	if patch.Name != nil {
		in.Name = *patch.Name
	}
	if patch.Category != nil {
		in.Category = *patch.Category
	}
	if patch.Status != nil {
		in.Status = *patch.Status
	}
	if patch.Stock != nil {
		in.Stock = *patch.Stock
	}
	if patch.Price != nil {
		in.Price = *patch.Price
	}

	if in, err = validation.Product(in); err != nil {
		return nil, err
	}

	prod.Name = in.Name
	prod.Category = in.Category
	prod.Status = in.Status
	prod.Stock = in.Stock
	prod.Price = in.Price

	if err := s.Repo.UpdateProduct(ctx, prod); err != nil {
		return nil, storeErr(err, "product")
	}
	return prod, nil
}

// ReplaceProduct overwrites every mutable field, defaults included.
func (s *CatalogService) ReplaceProduct(ctx context.Context, actor domain.Actor, id uuid.UUID, in validation.ProductInput) (*models.Product, error) {
	return s.PatchProduct(ctx, actor, id, ProductPatch{
		Name:     &in.Name,
		Category: &in.Category,
		Status:   &in.Status,
		Stock:    &in.Stock,
		Price:    &in.Price,
	})
}

func (s *CatalogService) DeleteProduct(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	sc, err := scope.Products(actor)
	if err != nil {
		return err
	}
	return storeErr(s.Repo.DeleteProduct(ctx, sc, id), "product")
}
