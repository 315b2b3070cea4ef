package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/models"
	"github.com/Skotchmaster/marketplace/internal/scope"
)

var profileColumns = []string{"name", "phone", "city", "address", "updated_at"}

// CreateProducer stores the account and its profile atomically.
func (r *GormRepo) CreateProducer(ctx context.Context, user *models.User, profile *models.ProducerProfile) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) TaxIDTaken(ctx context.Context, taxID string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.ProducerProfile{}).Where("tax_id = ?", taxID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) GetProfile(ctx context.Context, sc scope.Scope) (*models.ProducerProfile, error) {
	var profile models.ProducerProfile
	if err := r.scoped(ctx, &models.ProducerProfile{}, sc).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *GormRepo) ListProfiles(ctx context.Context, sc scope.Scope, offset, limit int) (int64, []models.ProducerProfile, error) {
	var total int64
	if err := r.scoped(ctx, &models.ProducerProfile{}, sc).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.ProducerProfile, 0, limit)
	if err := r.scoped(ctx, &models.ProducerProfile{}, sc).
		Order("producer_profiles.name ASC").
		Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *GormRepo) UpdateProfile(ctx context.Context, profile *models.ProducerProfile) error {
	res := r.DB.WithContext(ctx).Model(profile).Select(profileColumns).Updates(profile)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ProfileNames maps producer identities to their display name.
func (r *GormRepo) ProfileNames(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	var profiles []models.ProducerProfile
	if err := r.DB.WithContext(ctx).Select("user_id", "name").Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}
	for _, p := range profiles {
		out[p.UserID] = p.Name
	}
	return out, nil
}
