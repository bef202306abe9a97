package swap

import (
	"net/http"
	"strconv"

	"skillswap/internal/domain"
	"skillswap/internal/pkg/pagination"
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
	swaps := rg.Group("/swaps")
	{
		swaps.GET("", h.ListMySwaps)
		swaps.POST("", h.ProposeSwap)
		swaps.GET("/:id", h.GetSwap)
		swaps.GET("/:id/can-rate", h.CanRate)
		swaps.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *Handler) ListMySwaps(c *gin.Context) {
	userID := c.GetInt64("user_id")
	p := pagination.FromQuery(c, 10)

	swaps, total, err := h.service.ListForUser(c.Request.Context(), userID, p.Limit, p.Offset())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list swap requests")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"swaps": swaps,
		"meta":  pagination.NewMeta(p, total),
	})
}

func (h *Handler) ProposeSwap(c *gin.Context) {
	var req ProposeSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Fields(err))
		return
	}

	userID := c.GetInt64("user_id")

	sw, err := h.service.Propose(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case ErrSelfSwap:
			response.Error(c, http.StatusUnprocessableEntity, "SELF_SWAP", "Cannot send request to yourself")
		case ErrReceiverNotFound:
			response.ValidationFailed(c, map[string]string{"receiver_id": "exists"})
		case ErrSkillNotFound:
			response.ValidationFailed(c, map[string]string{"skill_id": "exists"})
		case ErrNotSkillOwner:
			response.ValidationFailed(c, map[string]string{"offered_skill_id": "owned"})
		case ErrDuplicatePending:
			response.Error(c, http.StatusUnprocessableEntity, "CONFLICT", "You already have a pending request with this user")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create swap request")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"swap": sw})
}

func (h *Handler) GetSwap(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid swap id")
		return
	}

	sw, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Swap request not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load swap request")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"swap": sw})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid swap id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Fields(err))
		return
	}

	status, ok := domain.ParseSwapStatus(req.Status)
	if !ok {
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Status must be accepted, rejected or completed")
		return
	}

	userID := c.GetInt64("user_id")

	sw, err := h.service.TransitionStatus(c.Request.Context(), userID, id, status)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Swap request not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not allowed to change this swap")
		case ErrInvalidTransition:
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", "Swap is no longer pending")
		case ErrInvalidStatus:
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATUS", "Status must be accepted, rejected or completed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update swap status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"swap": sw})
}

func (h *Handler) CanRate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid swap id")
		return
	}

	userID := c.GetInt64("user_id")

	ok, err := h.service.CanRate(c.Request.Context(), userID, id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Swap request not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to check rating eligibility")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"can_rate": ok})
}
