package message

import (
	"context"

	"skillswap/internal/domain"
)

type MessageStore interface {
	Create(ctx context.Context, m *domain.Message) error
	Thread(ctx context.Context, userID, partnerID int64) ([]domain.Message, error)
	MarkThreadRead(ctx context.Context, userID, partnerID int64) error
	PartnerIDs(ctx context.Context, userID int64) ([]int64, error)
	LastBetween(ctx context.Context, userID, partnerID int64) (*domain.Message, error)
	CountUnreadFrom(ctx context.Context, userID, partnerID int64) (int64, error)
}

type UserReader interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type NotificationSender interface {
	NotifyNewMessage(ctx context.Context, receiverID, messageID int64, senderName string) error
}
