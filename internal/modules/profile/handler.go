package profile

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"skillswap/internal/pkg/response"
	"skillswap/internal/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const uploadDir = "./uploads/profiles"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the public profile page.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile/:userId", h.PublicProfile)
}

// RegisterRoutes mounts the authenticated profile editor.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/profile", h.UpdateProfile)
}

func (h *Handler) PublicProfile(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid user id")
		return
	}

	view, err := h.service.PublicView(c.Request.Context(), userID)
	if err != nil {
		if err == ErrUserNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, view)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationFailed(c, validator.Fields(err))
		return
	}

	if file, err := c.FormFile("photo"); err == nil {
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to store photo")
			return
		}
		path := filepath.Join(uploadDir, fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename)))
		if err := c.SaveUploadedFile(file, path); err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to store photo")
			return
		}
		req.PhotoPath = &path
	}

	userID := c.GetInt64("user_id")

	prof, err := h.service.Update(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": prof})
}
