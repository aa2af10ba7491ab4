package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/punitsirse123/TempCall/internal/httperr"
	"github.com/punitsirse123/TempCall/internal/middleware"
	"github.com/punitsirse123/TempCall/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "profile_not_found", "Profile not found.")
		return
	}

	var userRoles []models.UserRole
	h.db.Preload("Role").Where("user_id = ?", userID).Find(&userRoles)

	roles := make([]string, 0, len(userRoles))
	for _, ur := range userRoles {
		roles = append(roles, ur.Role.Name)
	}

	c.JSON(200, gin.H{
		"id":        profile.ID,
		"email":     profile.Email,
		"full_name": profile.FullName,
		"roles":     roles,
	})
}
