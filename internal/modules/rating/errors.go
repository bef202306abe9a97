package rating

import "errors"

var (
	ErrSwapNotFound     = errors.New("swap not found")
	ErrSwapNotCompleted = errors.New("only completed swaps can be rated")
	ErrNotParticipant   = errors.New("user is not a participant of this swap")
	ErrRatedNotFound    = errors.New("rated user not found")
	ErrAlreadyRated     = errors.New("swap already rated by this user")
)
