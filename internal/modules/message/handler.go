package message

import (
	"net/http"
	"strconv"

	"skillswap/internal/pkg/response"
	"skillswap/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/conversations", h.Conversations)
	messages := rg.Group("/messages")
	{
		messages.POST("", h.SendMessage)
		messages.GET("/:partnerId", h.Thread)
	}
}

func (h *Handler) Conversations(c *gin.Context) {
	userID := c.GetInt64("user_id")

	conversations, err := h.service.Conversations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list conversations")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"conversations": conversations})
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Fields(err))
		return
	}

	userID := c.GetInt64("user_id")

	msg, err := h.service.Send(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case ErrSelfMessage:
			response.ValidationFailed(c, map[string]string{"receiver_id": "not self"})
		case ErrReceiverNotFound:
			response.ValidationFailed(c, map[string]string{"receiver_id": "exists"})
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to send message")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

func (h *Handler) Thread(c *gin.Context) {
	partnerID, err := strconv.ParseInt(c.Param("partnerId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	userID := c.GetInt64("user_id")

	thread, err := h.service.Thread(c.Request.Context(), userID, partnerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load messages")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": thread})
}
