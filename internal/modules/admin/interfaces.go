package admin

import (
	"context"

	"skillswap/internal/domain"
	"skillswap/internal/repository"
)

type AdminStore interface {
	Stats(ctx context.Context) (*repository.AdminStats, error)
	ListUsers(ctx context.Context, limit, offset int) ([]repository.UserOverview, int64, error)
}

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	SetBlocked(ctx context.Context, id int64, blocked bool) error
	Delete(ctx context.Context, id int64) error
}

type SkillStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Skill, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f repository.SkillFilter, limit, offset int) ([]domain.Skill, int64, error)
}

type SwapLister interface {
	ListAll(ctx context.Context, limit, offset int) ([]domain.SwapRequest, int64, error)
}
