package admin

import (
	"context"
	"errors"

	"skillswap/internal/domain"
	"skillswap/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	admin  AdminStore
	users  UserStore
	skills SkillStore
	swaps  SwapLister
}

func NewService(admin AdminStore, users UserStore, skills SkillStore, swaps SwapLister) *Service {
	return &Service{
		admin:  admin,
		users:  users,
		skills: skills,
		swaps:  swaps,
	}
}

func (s *Service) Stats(ctx context.Context) (*repository.AdminStats, error) {
	return s.admin.Stats(ctx)
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]repository.UserOverview, int64, error) {
	return s.admin.ListUsers(ctx, limit, offset)
}

// ToggleBlock flips a user's blocked flag. Admin accounts are immune.
func (s *Service) ToggleBlock(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.IsAdmin() {
		return nil, ErrProtectedUser
	}

	if err := s.users.SetBlocked(ctx, userID, !user.IsBlocked); err != nil {
		return nil, err
	}
	user.IsBlocked = !user.IsBlocked
	return user, nil
}

// DeleteUser removes an account and everything it owns.
func (s *Service) DeleteUser(ctx context.Context, userID int64) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.IsAdmin() {
		return ErrProtectedUser
	}
	return s.users.Delete(ctx, userID)
}

func (s *Service) ListSkills(ctx context.Context, limit, offset int) ([]domain.Skill, int64, error) {
	return s.skills.List(ctx, repository.SkillFilter{}, limit, offset)
}

func (s *Service) DeleteSkill(ctx context.Context, skillID int64) error {
	if _, err := s.skills.GetByID(ctx, skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return err
	}
	return s.skills.Delete(ctx, skillID)
}

func (s *Service) ListSwaps(ctx context.Context, limit, offset int) ([]domain.SwapRequest, int64, error) {
	return s.swaps.ListAll(ctx, limit, offset)
}
