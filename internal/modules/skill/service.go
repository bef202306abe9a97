package skill

import (
	"context"
	"errors"

	"skillswap/internal/domain"
	"skillswap/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	skills SkillStore
}

func NewService(skills SkillStore) *Service {
	return &Service{skills: skills}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateSkillRequest) (*domain.Skill, error) {
	if req.CategoryID != nil {
		ok, err := s.skills.CategoryExists(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCategoryNotFound
		}
	}

	sk := &domain.Skill{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		SkillName:   req.SkillName,
		Description: req.Description,
		Type:        domain.SkillType(req.Type),
		Level:       domain.LevelIntermediate,
	}
	if req.Level != "" {
		sk.Level = domain.SkillLevel(req.Level)
	}
	if err := s.skills.Create(ctx, sk); err != nil {
		return nil, err
	}
	return s.skills.GetByID(ctx, sk.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Skill, error) {
	sk, err := s.skills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sk, nil
}

// Update applies the provided fields. Owner only.
func (s *Service) Update(ctx context.Context, userID, skillID int64, req UpdateSkillRequest) (*domain.Skill, error) {
	sk, err := s.Get(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if sk.UserID != userID {
		return nil, ErrForbidden
	}

	if req.CategoryID != nil {
		ok, err := s.skills.CategoryExists(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCategoryNotFound
		}
		sk.CategoryID = req.CategoryID
	}
	if req.SkillName != nil {
		sk.SkillName = *req.SkillName
	}
	if req.Description != nil {
		sk.Description = *req.Description
	}
	if req.Type != nil {
		sk.Type = domain.SkillType(*req.Type)
	}
	if req.Level != nil {
		sk.Level = domain.SkillLevel(*req.Level)
	}

	if err := s.skills.Update(ctx, sk); err != nil {
		return nil, err
	}
	return s.skills.GetByID(ctx, skillID)
}

// Delete removes a skill. The owner may delete their own skill, an
// admin may delete any.
func (s *Service) Delete(ctx context.Context, userID int64, isAdmin bool, skillID int64) error {
	sk, err := s.Get(ctx, skillID)
	if err != nil {
		return err
	}
	if sk.UserID != userID && !isAdmin {
		return ErrForbidden
	}
	return s.skills.Delete(ctx, skillID)
}

func (s *Service) List(ctx context.Context, f repository.SkillFilter, limit, offset int) ([]domain.Skill, int64, error) {
	return s.skills.List(ctx, f, limit, offset)
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Skill, error) {
	return s.skills.GetByUser(ctx, userID)
}

// Match finds other users' offers whose names equal the caller's
// requested skill names.
func (s *Service) Match(ctx context.Context, userID int64) ([]domain.Skill, error) {
	wanted, err := s.skills.GetByUserAndType(ctx, userID, domain.SkillRequest)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(wanted))
	for _, w := range wanted {
		names = append(names, w.SkillName)
	}
	return s.skills.MatchOffers(ctx, names, userID)
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.skills.Categories(ctx)
}
