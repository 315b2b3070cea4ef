package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Skotchmaster/marketplace/internal/domain"
	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/repo"
	"github.com/Skotchmaster/marketplace/internal/scope"
	"github.com/Skotchmaster/marketplace/internal/validation"
)

type ProfileService struct {
	Repo *repo.GormRepo
}

// ProfileView is a profile with its derived catalog and rating figures.
type ProfileView struct {
	Profile       models.ProducerProfile
	Categories    []string
	AverageRating float64
	RatingCount   int64
}

type ProfilePatch struct {
	Name    *string
	TaxID   *string
	Phone   *string
	City    *string
	Address *string
}

func (s *ProfileService) List(ctx context.Context, offset, limit int) (int64, []models.ProducerProfile, error) {
	total, items, err := s.Repo.ListProfiles(ctx, scope.ProducerListing(), offset, limit)
	if err != nil {
		return 0, nil, storeErr(err, "producers")
	}
	return total, items, nil
}

func (s *ProfileService) Detail(ctx context.Context, id uuid.UUID) (*ProfileView, error) {
	return s.view(ctx, scope.ProducerDetail(id))
}

func (s *ProfileService) Mine(ctx context.Context, actor domain.Actor) (*ProfileView, error) {
	sc, err := scope.MyProfile(actor)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, sc)
}

func (s *ProfileService) UpdateMine(ctx context.Context, actor domain.Actor, patch ProfilePatch) (*ProfileView, error) {
	sc, err := scope.MyProfile(actor)
	if err != nil {
		return nil, err
	}
	profile, err := s.Repo.GetProfile(ctx, sc)
	if err != nil {
		return nil, storeErr(err, "profile")
	}

	if patch.TaxID != nil && *patch.TaxID != profile.TaxID {
		return nil, domain.ErrTaxIDImmutable
	}

	in := validation.ProfileInput{
		Name:    profile.Name,
		Phone:   profile.Phone,
		City:    profile.City,
		Address: profile.Address,
	}
	if patch.Name != nil {
		in.Name = *patch.Name
	}
	if patch.Phone != nil {
		in.Phone = *patch.Phone
	}
	if patch.City != nil {
		in.City = *patch.City
	}
	if patch.Address != nil {
		in.Address = *patch.Address
	}
	if in, err = validation.ProfileUpdate(in); err != nil {
		return nil, err
	}

	profile.Name = in.Name
	profile.Phone = in.Phone
	profile.City = in.City
	profile.Address = in.Address
	if err := s.Repo.UpdateProfile(ctx, profile); err != nil {
		return nil, storeErr(err, "profile")
	}
	return s.derive(ctx, profile)
}

func (s *ProfileService) view(ctx context.Context, sc scope.Scope) (*ProfileView, error) {
	profile, err := s.Repo.GetProfile(ctx, sc)
	if err != nil {
		return nil, storeErr(err, "profile")
	}
	return s.derive(ctx, profile)
}

func (s *ProfileService) derive(ctx context.Context, profile *models.ProducerProfile) (*ProfileView, error) {
	categories, err := s.Repo.ProducerCategories(ctx, profile.UserID)
	if err != nil {
		return nil, storeErr(err, "categories")
	}
	sum, err := s.Repo.RatingSummary(ctx, profile.UserID)
	if err != nil {
		return nil, storeErr(err, "ratings")
	}
	return &ProfileView{
		Profile:       *profile,
		Categories:    categories,
		AverageRating: roundRating(sum.Average),
		RatingCount:   sum.Total,
	}, nil
}
