package skill

import (
	"context"

	"skillswap/internal/domain"
	"skillswap/internal/repository"
)

type SkillStore interface {
	Create(ctx context.Context, s *domain.Skill) error
	GetByID(ctx context.Context, id int64) (*domain.Skill, error)
	Update(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f repository.SkillFilter, limit, offset int) ([]domain.Skill, int64, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.Skill, error)
	GetByUserAndType(ctx context.Context, userID int64, t domain.SkillType) ([]domain.Skill, error)
	MatchOffers(ctx context.Context, wantedNames []string, excludeUserID int64) ([]domain.Skill, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	CategoryExists(ctx context.Context, id int64) (bool, error)
}
