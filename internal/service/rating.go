package service

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/scope"
	"github.com/Skotchmaster/marketplace/internal/validation"
)

type RatingService struct {
	Repo   *repo.GormRepo
	Events *Events
}

type RatingSummary struct {
	Average float64
	Count   int64
}

// Submit records the client's rating for a delivered order. The checks run
// in a fixed order inside one transaction: order exists, order delivered,
// not rated yet, score in range.
func (s *RatingService) Submit(ctx context.Context, in validation.RatingInput) (*models.Rating, error) {
	in, err := validation.Rating(in)
	if err != nil {
		return nil, err
	}

	var rating *models.Rating
	err = s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		order, err := tx.LockOrder(ctx, in.OrderID)
		if err != nil {
			return storeErr(err, "order")
		}
		if order.Status != domain.OrderDelivered {
			return domain.ErrOrderNotDelivered
		}

		rated, err := tx.RatingExists(ctx, order.ID)
		if err != nil {
			return storeErr(err, "rating")
		}
		if rated {
			return domain.ErrAlreadyRated
		}

		if err := validation.RatingScore(in.Score); err != nil {
			return err
		}

		rating = &models.Rating{
			ProducerID:  order.ProducerID,
			OrderID:     order.ID,
			ClientName:  in.ClientName,
			ClientPhone: in.ClientPhone,
			Score:       in.Score,
			Comment:     in.Comment,
		}
		if err := tx.CreateRating(ctx, rating); err != nil {
			if isDuplicate(err) {
				return domain.ErrAlreadyRated
			}
			return storeErr(err, "rating")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Events.emit(ctx, Event{
		Type:       EventRatingSubmitted,
		ProducerID: rating.ProducerID,
		OrderID:    rating.OrderID,
		Score:      rating.Score,
	})
	return rating, nil
}

func (s *RatingService) Summary(ctx context.Context, producerID uuid.UUID) (RatingSummary, error) {
	sum, err := s.Repo.RatingSummary(ctx, producerID)
	if err != nil {
		return RatingSummary{}, storeErr(err, "ratings")
	}
	return RatingSummary{Average: roundRating(sum.Average), Count: sum.Total}, nil
}

func (s *RatingService) ListForProducer(ctx context.Context, actor domain.Actor, offset, limit int) (int64, []models.Rating, error) {
	sc, err := scope.ProducerRatings(actor)
	if err != nil {
		return 0, nil, err
	}
	total, items, err := s.Repo.ListRatings(ctx, sc, offset, limit)
	if err != nil {
		return 0, nil, storeErr(err, "ratings")
	}
	return total, items, nil
}

// roundRating keeps one decimal place, half away from zero.
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
