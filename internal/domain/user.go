package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email" validate:"required,email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role" gorm:"default:'user'"`
	IsBlocked    bool      `json:"is_blocked" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Profile carries the public-facing part of a user account.
// ReputationScore is the mean of all ratings received, rounded to
// 2 decimals; it is recomputed by the rating module on every new rating.
type Profile struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	UserID          int64     `json:"user_id" gorm:"uniqueIndex"`
	Bio             string    `json:"bio,omitempty" gorm:"type:text"`
	Location        string    `json:"location,omitempty"`
	Photo           string    `json:"photo,omitempty"`
	ReputationScore float64   `json:"reputation_score"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
