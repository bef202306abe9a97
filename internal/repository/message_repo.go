package repository

import (
	"context"

	"skillswap/internal/domain"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// Thread returns the full two-way conversation in chronological order.
func (r *MessageRepository) Thread(ctx context.Context, userID, partnerID int64) ([]domain.Message, error) {
	var msgs []domain.Message
	err := r.db.WithContext(ctx).
		Preload("Sender").Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

// MarkThreadRead marks everything the partner sent to userID as read.
func (r *MessageRepository) MarkThreadRead(ctx context.Context, userID, partnerID int64) error {
	return r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", partnerID, userID, false).
		Update("is_read", true).Error
}

// PartnerIDs returns every distinct user this user has exchanged at
// least one message with.
func (r *MessageRepository) PartnerIDs(ctx context.Context, userID int64) ([]int64, error) {
	var sent []int64
	if err := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("sender_id = ?", userID).
		Distinct().
		Pluck("receiver_id", &sent).Error; err != nil {
		return nil, err
	}

	var received []int64
	if err := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("receiver_id = ?", userID).
		Distinct().
		Pluck("sender_id", &received).Error; err != nil {
		return nil, err
	}

	seen := make(map[int64]bool, len(sent)+len(received))
	out := make([]int64, 0, len(sent)+len(received))
	for _, id := range append(sent, received...) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *MessageRepository) LastBetween(ctx context.Context, userID, partnerID int64) (*domain.Message, error) {
	var m domain.Message
	tx := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at DESC").
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &m, nil
}

func (r *MessageRepository) CountUnreadFrom(ctx context.Context, userID, partnerID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", partnerID, userID, false).
		Count(&count).Error
	return count, err
}
