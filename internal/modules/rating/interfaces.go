package rating

import (
	"context"

	"skillswap/internal/domain"
)

type RatingStore interface {
	Create(ctx context.Context, rating *domain.Rating) error
	GetExpanded(ctx context.Context, id int64) (*domain.Rating, error)
	ExistsForSwapAndRater(ctx context.Context, swapID, raterID int64) (bool, error)
	ListForRated(ctx context.Context, ratedID int64) ([]domain.Rating, error)
	AverageForRated(ctx context.Context, ratedID int64) (float64, int64, error)
}

type SwapReader interface {
	GetByID(ctx context.Context, id int64) (*domain.SwapRequest, error)
}

type UserReader interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// ProfileWriter persists the recomputed reputation score.
type ProfileWriter interface {
	UpdateReputation(ctx context.Context, userID int64, score float64) error
}
