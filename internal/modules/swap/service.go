package swap

import (
	"context"
	"errors"

	"skillswap/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	swaps   SwapStore
	skills  SkillReader
	users   UserReader
	ratings RatingReader
	notifs  NotificationSender
}

func NewService(
	swaps SwapStore,
	skills SkillReader,
	users UserReader,
	ratings RatingReader,
	notifs NotificationSender,
) *Service {
	return &Service{
		swaps:   swaps,
		skills:  skills,
		users:   users,
		ratings: ratings,
		notifs:  notifs,
	}
}

// Propose creates a new swap request in status "pending" and notifies
// the receiver. At most one pending request may exist per ordered
// (sender, receiver) pair.
func (s *Service) Propose(ctx context.Context, senderID int64, req ProposeSwapRequest) (*domain.SwapRequest, error) {
	if req.ReceiverID == senderID {
		return nil, ErrSelfSwap
	}

	ok, err := s.users.ExistsByID(ctx, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrReceiverNotFound
	}

	for _, skillID := range []int64{req.OfferedSkillID, req.RequestedSkillID} {
		ok, err := s.skills.Exists(ctx, skillID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrSkillNotFound
		}
	}

	ownerID, err := s.skills.GetOwnerID(ctx, req.OfferedSkillID)
	if err != nil {
		return nil, err
	}
	if ownerID != senderID {
		return nil, ErrNotSkillOwner
	}

	exists, err := s.swaps.HasPendingBetween(ctx, senderID, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePending
	}

	sw := &domain.SwapRequest{
		SenderID:         senderID,
		ReceiverID:       req.ReceiverID,
		OfferedSkillID:   req.OfferedSkillID,
		RequestedSkillID: req.RequestedSkillID,
		Status:           domain.SwapPending,
		Message:          req.Message,
	}
	if err := s.swaps.Create(ctx, sw); err != nil {
		return nil, err
	}

	// notification is a separate best-effort write, not part of the insert
	if s.notifs != nil {
		senderName := ""
		if sender, err := s.users.GetByID(ctx, senderID); err == nil {
			senderName = sender.Name
		}
		_ = s.notifs.NotifySwapRequest(ctx, sw.ReceiverID, sw.ID, senderName)
	}

	return s.swaps.GetExpanded(ctx, sw.ID)
}

// TransitionStatus applies one state change to an existing swap.
// Accept/reject are receiver-only and require the swap to still be
// pending. Completed is allowed for either participant from any status.
func (s *Service) TransitionStatus(ctx context.Context, actorID, swapID int64, newStatus domain.SwapStatus) (*domain.SwapRequest, error) {
	sw, err := s.swaps.GetByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch newStatus {
	case domain.SwapAccepted, domain.SwapRejected:
		if sw.ReceiverID != actorID {
			return nil, ErrForbidden
		}
		if sw.Status != domain.SwapPending {
			return nil, ErrInvalidTransition
		}
	case domain.SwapCompleted:
		if !sw.IsParticipant(actorID) {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrInvalidStatus
	}

	// plain row update; concurrent transitions race, last write wins
	if err := s.swaps.UpdateStatus(ctx, swapID, newStatus); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifySwapStatus(ctx, sw.Counterparty(actorID), sw.ID, newStatus)
	}

	return s.swaps.GetExpanded(ctx, swapID)
}

func (s *Service) ListForUser(ctx context.Context, userID int64, limit, offset int) ([]domain.SwapRequest, int64, error) {
	return s.swaps.ListForUser(ctx, userID, limit, offset)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.SwapRequest, error) {
	sw, err := s.swaps.GetExpanded(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sw, nil
}

// CanRate reports whether userID may still leave a rating on the swap:
// the swap is completed, the user took part in it and has not rated yet.
func (s *Service) CanRate(ctx context.Context, userID, swapID int64) (bool, error) {
	sw, err := s.swaps.GetByID(ctx, swapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	if sw.Status != domain.SwapCompleted || !sw.IsParticipant(userID) {
		return false, nil
	}

	rated, err := s.ratings.ExistsForSwapAndRater(ctx, swapID, userID)
	if err != nil {
		return false, err
	}
	return !rated, nil
}
