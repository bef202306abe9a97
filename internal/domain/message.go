package domain

import "time"

// Message is one direct message between two users. Threads are implicit:
// the pair (sender_id, receiver_id) in either direction forms a conversation.
type Message struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	SenderID   int64     `json:"sender_id" gorm:"index"`
	ReceiverID int64     `json:"receiver_id" gorm:"index"`
	Message    string    `json:"message" gorm:"type:text"`
	IsRead     bool      `json:"is_read" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`

	Sender   *User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Receiver *User `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
}

// Conversation is a read model for the conversation list: one row per
// distinct partner, with the latest message and the unread count.
type Conversation struct {
	Partner     *User    `json:"partner"`
	LastMessage *Message `json:"last_message,omitempty"`
	UnreadCount int64    `json:"unread_count"`
}
