package admin

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

// RegisterRoutes mounts the admin panel; the group must already be
// gated by the admin role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Stats)
	rg.GET("/users", h.ListUsers)
	rg.PATCH("/users/:id/block", h.ToggleBlock)
	rg.DELETE("/users/:id", h.DeleteUser)
	rg.GET("/skills", h.ListSkills)
	rg.DELETE("/skills/:id", h.DeleteSkill)
	rg.GET("/swaps", h.ListSwaps)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) ListUsers(c *gin.Context) {
	p := pagination.FromQuery(c, 15)

	users, total, err := h.service.ListUsers(c.Request.Context(), p.Limit, p.Offset())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list users")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"meta":  pagination.NewMeta(p, total),
	})
}

func (h *Handler) ToggleBlock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	user, err := h.service.ToggleBlock(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case ErrProtectedUser:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cannot block an admin account")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update user")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		switch err {
		case ErrUserNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		case ErrProtectedUser:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cannot delete an admin account")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete user")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListSkills(c *gin.Context) {
	p := pagination.FromQuery(c, 15)

	skills, total, err := h.service.ListSkills(c.Request.Context(), p.Limit, p.Offset())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list skills")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"skills": skills,
		"meta":   pagination.NewMeta(p, total),
	})
}

func (h *Handler) DeleteSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid skill id")
		return
	}

	if err := h.service.DeleteSkill(c.Request.Context(), id); err != nil {
		if err == ErrSkillNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Skill not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete skill")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListSwaps(c *gin.Context) {
	p := pagination.FromQuery(c, 15)

	swaps, total, err := h.service.ListSwaps(c.Request.Context(), p.Limit, p.Offset())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list swaps")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"swaps": swaps,
		"meta":  pagination.NewMeta(p, total),
	})
}
