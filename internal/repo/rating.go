package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/scope"
)

type RatingSummary struct {
	Average float64
	Total   int64
}

func (r *GormRepo) CreateRating(ctx context.Context, rating *models.Rating) error {
	return r.DB.WithContext(ctx).Create(rating).Error
}

func (r *GormRepo) RatingExists(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Rating{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// RatingSummary returns the unrounded mean score, 0 when there are no ratings.
func (r *GormRepo) RatingSummary(ctx context.Context, producerID uuid.UUID) (RatingSummary, error) {
	var sum RatingSummary
	err := r.DB.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS total").
		Where("producer_id = ?", producerID).
		Scan(&sum).Error
	return sum, err
}

func (r *GormRepo) ListRatings(ctx context.Context, sc scope.Scope, offset, limit int) (int64, []models.Rating, error) {
	var total int64
	if err := r.scoped(ctx, &models.Rating{}, sc).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	ratings := make([]models.Rating, 0, limit)
	if err := r.scoped(ctx, &models.Rating{}, sc).
		Order("ratings.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&ratings).Error; err != nil {
		return 0, nil, err
	}
	return total, ratings, nil
}
