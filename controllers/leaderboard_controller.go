package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lectioapp/lectio/config"
	"github.com/lectioapp/lectio/utils"
)

const leaderboardCacheKey = "cache:leaderboard"

// LeaderboardEntry is one row of the public ranking.
type LeaderboardEntry struct {
	UserID        uint   `json:"user_id"`
	Username      string `json:"username"`
	AvatarURL     string `json:"avatar_url"`
	TotalPoints   int    `json:"total_points"`
	TotalReadings int    `json:"total_readings"`
}

// LeaderboardController serves the points ranking. Totals are aggregated
// in SQL over the immutable points_earned values and memoized in Redis;
// a scheduled job refreshes the snapshot so the public endpoint stays warm.
type LeaderboardController struct {
	db *gorm.DB
}

// NewLeaderboardController creates a new controller instance.
func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{db: db}
}

// Get returns the top readers by total points.
func (l *LeaderboardController) Get(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(leaderboardCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	entries, err := l.query()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to build leaderboard")
		return
	}

	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: gin.H{"items": entries}}
	utils.CacheSetJSON(leaderboardCacheKey, wrapper, l.cacheTTL())
	utils.Success(ctx, gin.H{"items": entries})
}

// RefreshLeaderboard rebuilds the cached snapshot. Called by the scheduler.
func (l *LeaderboardController) RefreshLeaderboard() error {
	entries, err := l.query()
	if err != nil {
		return err
	}
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: gin.H{"items": entries}}
	utils.CacheSetJSON(leaderboardCacheKey, wrapper, l.cacheTTL())
	return nil
}

func (l *LeaderboardController) query() ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := l.db.Table("users").
		Select(`users.id AS user_id,
			users.username,
			users.avatar_url,
			COALESCE(SUM(reading_logs.points_earned), 0) AS total_points,
			COUNT(reading_logs.id) AS total_readings`).
		Joins("LEFT JOIN reading_logs ON reading_logs.user_id = users.id AND reading_logs.completed = 1").
		Where("users.deleted_at IS NULL").
		Group("users.id, users.username, users.avatar_url").
		Order("total_points DESC, total_readings DESC").
		Limit(config.Get().LeaderboardSize).
		Scan(&entries).Error
	return entries, err
}

func (l *LeaderboardController) cacheTTL() time.Duration {
	return time.Duration(config.Get().LeaderboardCacheTTLSec) * time.Second
}
