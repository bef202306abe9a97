package repository

import (
	"context"

	"skillswap/internal/domain"

	"gorm.io/gorm"
)

type SwapRepository struct {
	db *gorm.DB
}

func NewSwapRepository(db *gorm.DB) *SwapRepository {
	return &SwapRepository{db: db}
}

func (r *SwapRepository) DB() *gorm.DB {
	return r.db
}

func (r *SwapRepository) Create(ctx context.Context, s *domain.SwapRequest) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SwapRepository) GetByID(ctx context.Context, id int64) (*domain.SwapRequest, error) {
	var s domain.SwapRequest
	tx := r.db.WithContext(ctx).First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

// GetExpanded loads the swap together with both participants (and their
// profiles), both skills and any ratings already left on it.
func (r *SwapRepository) GetExpanded(ctx context.Context, id int64) (*domain.SwapRequest, error) {
	var s domain.SwapRequest
	tx := r.db.WithContext(ctx).
		Preload("Sender").Preload("Sender.Profile").
		Preload("Receiver").Preload("Receiver.Profile").
		Preload("OfferedSkill").Preload("RequestedSkill").
		Preload("Ratings").
		First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

// HasPendingBetween reports whether the ordered (sender, receiver) pair
// already has a pending request open.
func (r *SwapRepository) HasPendingBetween(ctx context.Context, senderID, receiverID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.SwapRequest{}).
		Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, domain.SwapPending).
		Count(&count).Error
	return count > 0, err
}

func (r *SwapRepository) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.SwapRequest, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.SwapRequest{}).
		Where("sender_id = ? OR receiver_id = ?", userID, userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var swaps []domain.SwapRequest
	err := q.
		Preload("Sender").Preload("Sender.Profile").
		Preload("Receiver").Preload("Receiver.Profile").
		Preload("OfferedSkill").Preload("RequestedSkill").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&swaps).Error
	if err != nil {
		return nil, 0, err
	}
	return swaps, total, nil
}

// ListAll is the admin view over every swap request.
func (r *SwapRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.SwapRequest, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.SwapRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var swaps []domain.SwapRequest
	err := r.db.WithContext(ctx).
		Preload("Sender").Preload("Receiver").
		Preload("OfferedSkill").Preload("RequestedSkill").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&swaps).Error
	if err != nil {
		return nil, 0, err
	}
	return swaps, total, nil
}

// UpdateStatus is a plain row update: no version check, concurrent
// transitions race and the last write wins.
func (r *SwapRepository) UpdateStatus(ctx context.Context, id int64, status domain.SwapStatus) error {
	return r.db.WithContext(ctx).Model(&domain.SwapRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *SwapRepository) CountCompletedForUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.SwapRequest{}).
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?", userID, userID, domain.SwapCompleted).
		Count(&count).Error
	return count, err
}
