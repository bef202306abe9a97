package auth

import (
	"context"

	"skillswap/internal/domain"
)

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type ProfileStore interface {
	Create(ctx context.Context, p *domain.Profile) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
