package admin

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrSkillNotFound = errors.New("skill not found")
	ErrProtectedUser = errors.New("admin accounts cannot be modified")
)
