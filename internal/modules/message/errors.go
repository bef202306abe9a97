package message

import "errors"

var (
	ErrSelfMessage      = errors.New("cannot message yourself")
	ErrReceiverNotFound = errors.New("receiver not found")
)
