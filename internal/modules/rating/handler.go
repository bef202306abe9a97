package rating

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

// RegisterRoutes mounts the authenticated rating endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ratings", h.SubmitRating)
}

// RegisterPublicRoutes mounts the public per-user listing.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/ratings/:userId", h.UserRatings)
}

func (h *Handler) SubmitRating(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Fields(err))
		return
	}

	userID := c.GetInt64("user_id")

	rating, err := h.service.Submit(c.Request.Context(), userID, req)
	if err != nil {
		switch err {
		case ErrSwapNotFound:
			response.ValidationFailed(c, map[string]string{"swap_id": "exists"})
		case ErrSwapNotCompleted:
			response.Error(c, http.StatusUnprocessableEntity, "SWAP_NOT_COMPLETED", "Only completed swaps can be rated")
		case ErrNotParticipant:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not a participant of this swap")
		case ErrRatedNotFound:
			response.ValidationFailed(c, map[string]string{"rated_id": "exists"})
		case ErrAlreadyRated:
			response.Error(c, http.StatusUnprocessableEntity, "CONFLICT", "You have already rated this swap")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to submit rating")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"rating": rating})
}

func (h *Handler) UserRatings(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	result, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load ratings")
		return
	}

	response.Success(c, http.StatusOK, result)
}
