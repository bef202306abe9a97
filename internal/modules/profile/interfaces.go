package profile

import (
	"context"

	"skillswap/internal/domain"
)

type ProfileStore interface {
	GetOrCreate(ctx context.Context, userID int64) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
}

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type RatingReader interface {
	AverageForRated(ctx context.Context, ratedID int64) (float64, int64, error)
}

type SwapReader interface {
	CountCompletedForUser(ctx context.Context, userID int64) (int64, error)
}

type SkillReader interface {
	GetByUserAndType(ctx context.Context, userID int64, t domain.SkillType) ([]domain.Skill, error)
}
