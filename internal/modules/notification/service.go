package notification

import (
	"context"
	"errors"
	"fmt"

	"skillswap/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	notifs NotificationStore
}

func NewService(notifs NotificationStore) *Service {
	return &Service{notifs: notifs}
}

// NotifySwapRequest tells the receiver a new swap request arrived.
func (s *Service) NotifySwapRequest(ctx context.Context, receiverID, swapID int64, senderName string) error {
	return s.notifs.Create(ctx, &domain.Notification{
		UserID:  receiverID,
		Type:    domain.NotifSwapRequest,
		Message: fmt.Sprintf("%s sent you a swap request", senderName),
		Data:    map[string]any{"swap_id": swapID},
	})
}

// NotifySwapStatus tells the counterparty the swap changed status.
func (s *Service) NotifySwapStatus(ctx context.Context, userID, swapID int64, status domain.SwapStatus) error {
	var typ domain.NotificationType
	switch status {
	case domain.SwapAccepted:
		typ = domain.NotifSwapAccepted
	case domain.SwapRejected:
		typ = domain.NotifSwapRejected
	case domain.SwapCompleted:
		typ = domain.NotifSwapCompleted
	default:
		return fmt.Errorf("no notification for status %q", status)
	}
	return s.notifs.Create(ctx, &domain.Notification{
		UserID:  userID,
		Type:    typ,
		Message: fmt.Sprintf("Your swap request was %s", status),
		Data:    map[string]any{"swap_id": swapID},
	})
}

// NotifyNewMessage tells the receiver a direct message arrived.
func (s *Service) NotifyNewMessage(ctx context.Context, receiverID, messageID int64, senderName string) error {
	return s.notifs.Create(ctx, &domain.Notification{
		UserID:  receiverID,
		Type:    domain.NotifMessage,
		Message: fmt.Sprintf("%s sent you a message", senderName),
		Data:    map[string]any{"message_id": messageID},
	})
}

func (s *Service) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, int64, error) {
	return s.notifs.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.notifs.CountUnread(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	err := s.notifs.MarkRead(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.notifs.MarkAllRead(ctx, userID)
}
