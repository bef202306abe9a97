package message

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" binding:"required"`
	Message    string `json:"message" binding:"required,max=2000"`
}
