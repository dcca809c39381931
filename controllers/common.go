package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lectioapp/lectio/middleware"
	"github.com/lectioapp/lectio/models"
	"github.com/lectioapp/lectio/utils"
)

// getUserID extracts the authenticated user ID placed by the auth middleware.
func getUserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(middleware.ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// currentUser loads the authenticated user or writes the error response itself.
func currentUser(ctx *gin.Context, db *gorm.DB) (*models.User, bool) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return nil, false
	}
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
		} else {
			utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to load user")
		}
		return nil, false
	}
	return &user, true
}

// userToday resolves "today" as a YYYY-MM-DD string in the user's effective
// timezone. The engine never reads the clock itself; this is the single
// place where wall time becomes a calendar day. An unknown or empty
// timezone falls back to UTC.
func userToday(user *models.User) string {
	loc := time.UTC
	if user.Timezone != "" {
		if l, err := time.LoadLocation(user.Timezone); err == nil {
			loc = l
		}
	}
	return time.Now().In(loc).Format("2006-01-02")
}

// userResponse shapes the user payload for API responses.
func userResponse(user *models.User) gin.H {
	return gin.H{
		"id":                   user.ID,
		"username":             user.Username,
		"email":                user.Email,
		"avatar_url":           user.AvatarURL,
		"timezone":             user.Timezone,
		"target_days_per_week": user.TargetDaysPerWeek,
		"start_date":           user.StartDate,
		"created_at":           user.CreatedAt,
	}
}
