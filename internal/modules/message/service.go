package message

import (
	"context"

	"skillswap/internal/domain"
)

type Service struct {
	messages MessageStore
	users    UserReader
	notifs   NotificationSender
}

func NewService(messages MessageStore, users UserReader, notifs NotificationSender) *Service {
	return &Service{
		messages: messages,
		users:    users,
		notifs:   notifs,
	}
}

// Send stores a direct message and notifies the receiver.
func (s *Service) Send(ctx context.Context, senderID int64, req SendMessageRequest) (*domain.Message, error) {
	if req.ReceiverID == senderID {
		return nil, ErrSelfMessage
	}

	exists, err := s.users.ExistsByID(ctx, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrReceiverNotFound
	}

	msg := &domain.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		senderName := ""
		if sender, err := s.users.GetByID(ctx, senderID); err == nil {
			senderName = sender.Name
		}
		_ = s.notifs.NotifyNewMessage(ctx, msg.ReceiverID, msg.ID, senderName)
	}

	return msg, nil
}

// Conversations lists one entry per chat partner with the latest
// message and the count of unread messages from that partner.
func (s *Service) Conversations(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	partnerIDs, err := s.messages.PartnerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	conversations := make([]domain.Conversation, 0, len(partnerIDs))
	for _, pid := range partnerIDs {
		partner, err := s.users.GetByID(ctx, pid)
		if err != nil {
			continue // partner account deleted
		}
		last, err := s.messages.LastBetween(ctx, userID, pid)
		if err != nil {
			return nil, err
		}
		unread, err := s.messages.CountUnreadFrom(ctx, userID, pid)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, domain.Conversation{
			Partner:     partner,
			LastMessage: last,
			UnreadCount: unread,
		})
	}
	return conversations, nil
}

// Thread returns the full two-way history with a partner, oldest
// first, and marks the partner's messages as read.
func (s *Service) Thread(ctx context.Context, userID, partnerID int64) ([]domain.Message, error) {
	if err := s.messages.MarkThreadRead(ctx, userID, partnerID); err != nil {
		return nil, err
	}
	return s.messages.Thread(ctx, userID, partnerID)
}
