package swap

import "errors"

var (
	ErrSelfSwap          = errors.New("cannot send a swap request to yourself")
	ErrReceiverNotFound  = errors.New("receiver not found")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrNotSkillOwner     = errors.New("offered skill does not belong to sender")
	ErrDuplicatePending  = errors.New("pending request already exists for this pair")
	ErrNotFound          = errors.New("swap request not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidTransition = errors.New("invalid status transition")
)
