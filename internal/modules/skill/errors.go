package skill

import "errors"

var (
	ErrNotFound         = errors.New("skill not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrForbidden        = errors.New("not the skill owner")
)
