package swap

type ProposeSwapRequest struct {
	ReceiverID       int64  `json:"receiver_id" binding:"required"`
	OfferedSkillID   int64  `json:"offered_skill_id" binding:"required"`
	RequestedSkillID int64  `json:"requested_skill_id" binding:"required"`
	Message          string `json:"message,omitempty" binding:"max=500"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
