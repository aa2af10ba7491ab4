package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/punitsirse123/TempCall/internal/auth"
	"github.com/punitsirse123/TempCall/internal/config"
	"github.com/punitsirse123/TempCall/internal/httperr"
	"github.com/punitsirse123/TempCall/internal/middleware"
	"github.com/punitsirse123/TempCall/internal/models"
	"github.com/punitsirse123/TempCall/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	denylist *auth.Denylist
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, denylist *auth.Denylist) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, denylist: denylist}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	profile := models.Profile{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
	}

	if err := h.db.Create(&profile).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "email_already_registered", "That email is already registered.")
			return
		}
		httperr.Internal(c, "failed_to_create_profile", "Could not create account.")
		return
	}

	token, err := auth.GenerateToken(h.config.JWTSecret, profile.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not sign you in.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":        profile.ID,
			"email":     profile.Email,
			"full_name": profile.FullName,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var profile models.Profile
	if err := h.db.Where("email = ?", email).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Wrong email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not sign you in.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Wrong email or password.")
		return
	}

	token, err := auth.GenerateToken(h.config.JWTSecret, profile.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not sign you in.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        profile.ID,
			"email":     profile.Email,
			"full_name": profile.FullName,
		},
		"token": token,
	})
}

// Logout revokes the presented token until it would have expired
// anyway. Runs behind the auth middleware.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.MustGet(middleware.ContextTokenID).(string)
	expiresAt := c.MustGet(middleware.ContextTokenExpiry).(time.Time)

	if err := h.denylist.Revoke(c.Request.Context(), tokenID, expiresAt); err != nil {
		httperr.Internal(c, "failed_to_sign_out", "Could not sign you out.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}
