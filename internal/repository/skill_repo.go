package repository

import (
	"context"

	"skillswap/internal/domain"

	"gorm.io/gorm"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) DB() *gorm.DB {
	return r.db
}

// SkillFilter narrows the public catalog listing.
type SkillFilter struct {
	Type       string
	CategoryID int64
	Search     string
	Level      string
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SkillRepository) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	var s domain.Skill
	tx := r.db.WithContext(ctx).
		Preload("User").Preload("User.Profile").Preload("Category").
		First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *SkillRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Skill{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// GetOwnerID returns the owning user of a skill without loading the row.
func (r *SkillRepository) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	var ownerID int64
	err := r.db.WithContext(ctx).Model(&domain.Skill{}).
		Where("id = ?", id).
		Pluck("user_id", &ownerID).Error
	return ownerID, err
}

func (r *SkillRepository) Update(ctx context.Context, s *domain.Skill) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SkillRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Skill{}, id).Error
}

func (r *SkillRepository) List(ctx context.Context, f SkillFilter, limit, offset int) ([]domain.Skill, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Skill{})

	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.CategoryID > 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.Level != "" {
		q = q.Where("level = ?", f.Level)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("skill_name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var skills []domain.Skill
	err := q.Preload("User").Preload("User.Profile").Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&skills).Error
	if err != nil {
		return nil, 0, err
	}
	return skills, total, nil
}

func (r *SkillRepository) GetByUser(ctx context.Context, userID int64) ([]domain.Skill, error) {
	var skills []domain.Skill
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) GetByUserAndType(ctx context.Context, userID int64, t domain.SkillType) ([]domain.Skill, error) {
	var skills []domain.Skill
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND type = ?", userID, t).
		Find(&skills).Error
	return skills, err
}

// MatchOffers finds other users' offered skills whose names match what
// the given user is requesting.
func (r *SkillRepository) MatchOffers(ctx context.Context, wantedNames []string, excludeUserID int64) ([]domain.Skill, error) {
	if len(wantedNames) == 0 {
		return []domain.Skill{}, nil
	}

	var skills []domain.Skill
	err := r.db.WithContext(ctx).
		Preload("User").Preload("User.Profile").Preload("Category").
		Where("skill_name IN ?", wantedNames).
		Where("type = ?", domain.SkillOffer).
		Where("user_id <> ?", excludeUserID).
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	err := r.db.WithContext(ctx).Order("id").Find(&cats).Error
	return cats, err
}

func (r *SkillRepository) CategoryExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Category{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
