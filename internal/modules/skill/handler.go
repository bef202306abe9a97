package skill

import (
	"net/http"
	"strconv"

	"skillswap/internal/domain"
	"skillswap/internal/pkg/pagination"
	"skillswap/internal/pkg/response"
	"skillswap/internal/pkg/validator"
	"skillswap/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the read-only catalog endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/skills", h.ListSkills)
	rg.GET("/skills/:id", h.GetSkill)
	rg.GET("/categories", h.ListCategories)
}

// RegisterRoutes mounts the authenticated catalog endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/skills", h.CreateSkill)
	rg.PUT("/skills/:id", h.UpdateSkill)
	rg.DELETE("/skills/:id", h.DeleteSkill)
	rg.GET("/my-skills", h.MySkills)
	rg.GET("/skills-match", h.MatchSkills)
}

func (h *Handler) ListSkills(c *gin.Context) {
	p := pagination.FromQuery(c, 12)

	filter := repository.SkillFilter{
		Type:   c.Query("type"),
		Search: c.Query("search"),
		Level:  c.Query("level"),
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.CategoryID = id
		}
	}

	skills, total, err := h.service.List(c.Request.Context(), filter, p.Limit, p.Offset())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list skills")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"skills": skills,
		"meta":   pagination.NewMeta(p, total),
	})
}

func (h *Handler) GetSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid skill id")
		return
	}

	sk, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Skill not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load skill")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"skill": sk})
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list categories")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) CreateSkill(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Fields(err))
		return
	}

	userID := c.GetInt64("user_id")

	sk, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		if err == ErrCategoryNotFound {
			response.ValidationFailed(c, map[string]string{"category_id": "exists"})
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create skill")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"skill": sk})
}

func (h *Handler) UpdateSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid skill id")
		return
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Fields(err))
		return
	}

	userID := c.GetInt64("user_id")

	sk, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Skill not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only edit your own skills")
		case ErrCategoryNotFound:
			response.ValidationFailed(c, map[string]string{"category_id": "exists"})
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update skill")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"skill": sk})
}

func (h *Handler) DeleteSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid skill id")
		return
	}

	userID := c.GetInt64("user_id")
	isAdmin := c.GetString("role") == string(domain.RoleAdmin)

	if err := h.service.Delete(c.Request.Context(), userID, isAdmin, id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Skill not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only delete your own skills")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete skill")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) MySkills(c *gin.Context) {
	userID := c.GetInt64("user_id")

	skills, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to list skills")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"skills": skills})
}

func (h *Handler) MatchSkills(c *gin.Context) {
	userID := c.GetInt64("user_id")

	matches, err := h.service.Match(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to match skills")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"matches": matches})
}
