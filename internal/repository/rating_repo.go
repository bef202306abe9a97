package repository

import (
	"context"

	"skillswap/internal/domain"

	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

// GetExpanded loads a rating with both sides and their profiles.
func (r *RatingRepository) GetExpanded(ctx context.Context, id int64) (*domain.Rating, error) {
	var rating domain.Rating
	tx := r.db.WithContext(ctx).
		Preload("Rater").Preload("Rater.Profile").
		Preload("Rated").Preload("Rated.Profile").
		First(&rating, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rating, nil
}

func (r *RatingRepository) ExistsForSwapAndRater(ctx context.Context, swapID, raterID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Rating{}).
		Where("swap_id = ? AND rater_id = ?", swapID, raterID).
		Count(&count).Error
	return count > 0, err
}

func (r *RatingRepository) ListForRated(ctx context.Context, ratedID int64) ([]domain.Rating, error) {
	var ratings []domain.Rating
	err := r.db.WithContext(ctx).
		Preload("Rater").Preload("Rater.Profile").
		Preload("Swap").
		Where("rated_id = ?", ratedID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

// AverageForRated returns the mean rating received and how many ratings
// it is based on. Zero mean with zero count means "no ratings yet".
func (r *RatingRepository) AverageForRated(ctx context.Context, ratedID int64) (float64, int64, error) {
	var row struct {
		Avg   float64
		Total int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS total").
		Where("rated_id = ?", ratedID).
		Scan(&row).Error
	return row.Avg, row.Total, err
}
