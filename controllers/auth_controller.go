package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lectioapp/lectio/config"
	"github.com/lectioapp/lectio/models"
	"github.com/lectioapp/lectio/utils"
)

const tokenLifetime = 72 * time.Hour

// AuthController handles account endpoints: register, login, logout, profile.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates a new controller instance.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// Register creates an account and returns a session token.
func (a *AuthController) Register(ctx *gin.Context) {
	type request struct {
		Username          string `json:"username" binding:"required,min=3,max=64"`
		Email             string `json:"email"`
		Password          string `json:"password" binding:"required,min=6,max=64"`
		Timezone          string `json:"timezone"`
		TargetDaysPerWeek int    `json:"target_days_per_week"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if !validUsername(req.Username) {
		utils.Error(ctx, http.StatusBadRequest, 40002, "username may contain letters, digits and '-' only")
		return
	}
	if req.Timezone != "" && !validTimezone(req.Timezone) {
		utils.Error(ctx, http.StatusBadRequest, 40003, "unknown timezone identifier")
		return
	}

	var existing models.User
	if err := a.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		utils.Error(ctx, http.StatusConflict, 40901, "username already exists")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to hash password")
		return
	}

	target := req.TargetDaysPerWeek
	if target < 1 || target > 7 {
		target = config.Get().DefaultTargetDaysPerWeek
	}

	user := models.User{
		Username:          req.Username,
		Email:             strings.TrimSpace(req.Email),
		PasswordHash:      hash,
		Timezone:          req.Timezone,
		TargetDaysPerWeek: target,
		IsAdmin:           config.IsAdminUsername(req.Username),
	}

	if err := a.db.Create(&user).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50002, "failed to create user")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, tokenLifetime)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50003, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{
		"token": token,
		"user":  userResponse(&user),
	})
}

// Login verifies credentials and returns a session token.
func (a *AuthController) Login(ctx *gin.Context) {
	type request struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	var user models.User
	if err := a.db.Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error; err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40120, "invalid username or password")
		return
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Error(ctx, http.StatusUnauthorized, 40120, "invalid username or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, tokenLifetime)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50003, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{
		"token": token,
		"user":  userResponse(&user),
	})
}

// Logout revokes the presented token until its natural expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Error(ctx, http.StatusBadRequest, 40004, "missing bearer token")
		return
	}
	token := strings.TrimSpace(parts[1])
	if claims, err := utils.ParseToken(token); err == nil && claims.ExpiresAt != nil {
		utils.BlacklistToken(token, claims.ExpiresAt.Time)
	}
	utils.Success(ctx, gin.H{"message": "logged out"})
}

// Me returns the authenticated user's profile.
func (a *AuthController) Me(ctx *gin.Context) {
	user, ok := currentUser(ctx, a.db)
	if !ok {
		return
	}
	utils.Success(ctx, userResponse(user))
}

// UpdateProfile changes reading configuration and display fields.
func (a *AuthController) UpdateProfile(ctx *gin.Context) {
	user, ok := currentUser(ctx, a.db)
	if !ok {
		return
	}

	type request struct {
		Email             *string `json:"email"`
		AvatarURL         *string `json:"avatar_url"`
		Timezone          *string `json:"timezone"`
		TargetDaysPerWeek *int    `json:"target_days_per_week"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*req.AvatarURL)
	}
	if req.Timezone != nil {
		tz := strings.TrimSpace(*req.Timezone)
		if tz != "" && !validTimezone(tz) {
			utils.Error(ctx, http.StatusBadRequest, 40003, "unknown timezone identifier")
			return
		}
		user.Timezone = tz
	}
	if req.TargetDaysPerWeek != nil {
		if *req.TargetDaysPerWeek < 1 || *req.TargetDaysPerWeek > 7 {
			utils.Error(ctx, http.StatusBadRequest, 40005, "target_days_per_week must be 1-7")
			return
		}
		user.TargetDaysPerWeek = *req.TargetDaysPerWeek
	}

	if err := a.db.Save(user).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50004, "failed to update profile")
		return
	}

	utils.Success(ctx, userResponse(user))
}

func validUsername(s string) bool {
	if l := len([]rune(s)); l < 3 || l > 64 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return true
}

func validTimezone(tz string) bool {
	_, err := time.LoadLocation(tz)
	return err == nil
}
