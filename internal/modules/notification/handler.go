package notification

import (
	"net/http"
	"strconv"

	"skillswap/internal/pkg/pagination"
	"skillswap/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	notifs := rg.Group("/notifications")
	{
		notifs.GET("", h.List)
		notifs.GET("/unread-count", h.UnreadCount)
		notifs.PATCH("/:id/read", h.MarkRead)
		notifs.PATCH("/read-all", h.MarkAllRead)
	}
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	p := pagination.FromQuery(c, 20)

	list, total, err := h.service.ListForUser(c.Request.Context(), userID, p.Limit, p.Offset())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": list,
		"meta":          pagination.NewMeta(p, total),
	})
}

func (h *Handler) UnreadCount(c *gin.Context) {
	userID := c.GetInt64("user_id")

	count, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to count notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unread_count": count})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid notification id")
		return
	}

	userID := c.GetInt64("user_id")

	if err := h.service.MarkRead(c.Request.Context(), id, userID); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update notification")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": true})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	userID := c.GetInt64("user_id")

	if err := h.service.MarkAllRead(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": true})
}
