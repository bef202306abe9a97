package repository

import (
	"context"

	"skillswap/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	var p domain.Profile
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// GetOrCreate returns the profile for userID, creating an empty row if
// the user registered before profiles existed.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID int64) (*domain.Profile, error) {
	var p domain.Profile
	tx := r.db.WithContext(ctx).
		Where(domain.Profile{UserID: userID}).
		FirstOrCreate(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *domain.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProfileRepository) UpdateReputation(ctx context.Context, userID int64, score float64) error {
	return r.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("user_id = ?", userID).
		Update("reputation_score", score).Error
}
