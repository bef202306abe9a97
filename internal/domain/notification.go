package domain

import "time"

type NotificationType string

const (
	NotifSwapRequest   NotificationType = "swap_request"
	NotifSwapAccepted  NotificationType = "swap_accepted"
	NotifSwapRejected  NotificationType = "swap_rejected"
	NotifSwapCompleted NotificationType = "swap_completed"
	NotifMessage       NotificationType = "message"
)

type Notification struct {
	ID        int64            `json:"id" gorm:"primaryKey"`
	UserID    int64            `json:"user_id" gorm:"index"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message,omitempty"`
	IsRead    bool             `json:"is_read" gorm:"default:false"`
	Data      any              `json:"data,omitempty" gorm:"serializer:json"`
	CreatedAt time.Time        `json:"created_at"`
}
