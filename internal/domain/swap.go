package domain

import "time"

type SwapStatus string

const (
	SwapPending   SwapStatus = "pending"
	SwapAccepted  SwapStatus = "accepted"
	SwapRejected  SwapStatus = "rejected"
	SwapCompleted SwapStatus = "completed"
)

// ParseSwapStatus accepts only the statuses a caller may transition into.
func ParseSwapStatus(s string) (SwapStatus, bool) {
	switch SwapStatus(s) {
	case SwapAccepted, SwapRejected, SwapCompleted:
		return SwapStatus(s), true
	}
	return "", false
}

// SwapRequest is a proposed bilateral exchange of one offered skill for
// one requested skill between two users. Rows are never deleted; status
// moves pending -> accepted/rejected, and either participant may mark
// the swap completed from any status.
type SwapRequest struct {
	ID               int64      `json:"id" gorm:"primaryKey"`
	SenderID         int64      `json:"sender_id" gorm:"index"`
	ReceiverID       int64      `json:"receiver_id" gorm:"index"`
	OfferedSkillID   int64      `json:"offered_skill_id"`
	RequestedSkillID int64      `json:"requested_skill_id"`
	Status           SwapStatus `json:"status" gorm:"default:'pending'"`
	Message          string     `json:"message,omitempty" gorm:"type:text"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Sender         *User    `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Receiver       *User    `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
	OfferedSkill   *Skill   `json:"offered_skill,omitempty" gorm:"foreignKey:OfferedSkillID"`
	RequestedSkill *Skill   `json:"requested_skill,omitempty" gorm:"foreignKey:RequestedSkillID"`
	Ratings        []Rating `json:"ratings,omitempty" gorm:"foreignKey:SwapID"`
}

func (SwapRequest) TableName() string { return "swap_requests" }

// IsParticipant reports whether userID is the sender or receiver.
func (s *SwapRequest) IsParticipant(userID int64) bool {
	return s.SenderID == userID || s.ReceiverID == userID
}

// Counterparty returns the other participant relative to userID.
func (s *SwapRequest) Counterparty(userID int64) int64 {
	if userID == s.SenderID {
		return s.ReceiverID
	}
	return s.SenderID
}
