package swap

import (
	"context"

	"skillswap/internal/domain"
)

// SwapStore is the slice of the swap repository this service needs.
type SwapStore interface {
	Create(ctx context.Context, s *domain.SwapRequest) error
	GetByID(ctx context.Context, id int64) (*domain.SwapRequest, error)
	GetExpanded(ctx context.Context, id int64) (*domain.SwapRequest, error)
	HasPendingBetween(ctx context.Context, senderID, receiverID int64) (bool, error)
	ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.SwapRequest, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SwapStatus) error
}

// SkillReader resolves skill existence and ownership from the catalog.
type SkillReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
	GetOwnerID(ctx context.Context, id int64) (int64, error)
}

// UserReader resolves users for validation and notification text.
type UserReader interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// RatingReader answers "has this user already rated this swap".
type RatingReader interface {
	ExistsForSwapAndRater(ctx context.Context, swapID, raterID int64) (bool, error)
}

// NotificationSender delivers swap events to the counterparty.
// Calls are best effort: a failed insert never fails the swap operation.
type NotificationSender interface {
	NotifySwapRequest(ctx context.Context, receiverID, swapID int64, senderName string) error
	NotifySwapStatus(ctx context.Context, userID, swapID int64, status domain.SwapStatus) error
}
