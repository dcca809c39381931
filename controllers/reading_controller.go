package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lectioapp/lectio/config"
	"github.com/lectioapp/lectio/models"
	"github.com/lectioapp/lectio/progress"
	"github.com/lectioapp/lectio/utils"
)

// ReadingController handles completion submissions and the derived views:
// log history, missed-day backlog, and the stats snapshot.
type ReadingController struct {
	db *gorm.DB
}

// NewReadingController creates a new controller instance.
func NewReadingController(db *gorm.DB) *ReadingController {
	return &ReadingController{db: db}
}

// Complete records a reading completion for a day. Submitting a date that
// is already completed answers success with already_completed=true, so
// double-submitted forms and network retries stay idempotent.
func (r *ReadingController) Complete(ctx *gin.Context) {
	user, ok := currentUser(ctx, r.db)
	if !ok {
		return
	}

	type request struct {
		Date       string   `json:"date"`
		Mode       string   `json:"mode" binding:"required"`
		SectionIDs []string `json:"section_ids"`
		Notes      string   `json:"notes"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	today := userToday(user)
	if req.Date == "" {
		req.Date = today
	}

	// The engine's math functions are total; every shape and plausibility
	// check happens here at the edge.
	if _, err := progress.ParseDate(req.Date); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "date must be YYYY-MM-DD")
		return
	}
	switch req.Mode {
	case models.ModeToday:
		if req.Date != today {
			utils.Error(ctx, http.StatusBadRequest, 40031, "today-mode readings must be dated today")
			return
		}
	case models.ModeMakeup:
		if req.Date >= today {
			utils.Error(ctx, http.StatusBadRequest, 40032, "makeup readings must backfill a past day")
			return
		}
	default:
		utils.Error(ctx, http.StatusBadRequest, 40033, "mode must be today or makeup")
		return
	}
	if user.StartDate != "" && req.Date < user.StartDate {
		utils.Error(ctx, http.StatusBadRequest, 40034, "date precedes account start date")
		return
	}

	history, err := r.fetchLogs(user.ID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load reading history")
		return
	}

	draft := progress.CompletionDraft{
		Date:       req.Date,
		Mode:       req.Mode,
		SectionIDs: req.SectionIDs,
		Notes:      utils.Sanitize(req.Notes),
	}
	plan, err := progress.PlanCompletion(history, draft, user.TargetDaysPerWeek, time.Now())
	if err != nil {
		if errors.Is(err, progress.ErrAlreadyCompleted) {
			r.respondAlreadyCompleted(ctx, req.Date)
			return
		}
		utils.Error(ctx, http.StatusBadRequest, 40030, "date must be YYYY-MM-DD")
		return
	}

	record := plan.Log
	record.UserID = user.ID
	if err := r.db.Create(&record).Error; err != nil {
		// The unique (user_id, date) index is the atomic guard against a
		// concurrent submission that raced past the history preview.
		if isDuplicateKey(err) {
			r.respondAlreadyCompleted(ctx, req.Date)
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to record reading")
		return
	}

	utils.InvalidateByPrefix(statsCacheKey(user.ID, ""))

	utils.Success(ctx, gin.H{
		"log":            record,
		"points_awarded": plan.Points,
		"bonuses":        plan.Bonuses,
		"streak":         plan.Streak,
	})
}

// List returns the user's reading logs, most recent calendar day first.
func (r *ReadingController) List(ctx *gin.Context) {
	user, ok := currentUser(ctx, r.db)
	if !ok {
		return
	}

	page, pageSize := 1, 30
	if v := strings.TrimSpace(ctx.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := strings.TrimSpace(ctx.Query("page_size")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}

	var total int64
	if err := r.db.Model(&models.ReadingLog{}).Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to count readings")
		return
	}

	var logs []models.ReadingLog
	if err := r.db.Where("user_id = ?", user.ID).
		Order("date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50033, "failed to list readings")
		return
	}

	utils.Success(ctx, gin.H{
		"items": logs,
		"pagination": gin.H{
			"page":      page,
			"page_size": pageSize,
			"total":     total,
		},
	})
}

// Missed returns the makeup backlog: expected days with no completed log,
// most recent first. Re-derived from the full history on every call, so a
// makeup completion disappears from the list immediately.
func (r *ReadingController) Missed(ctx *gin.Context) {
	user, ok := currentUser(ctx, r.db)
	if !ok {
		return
	}

	cfg := config.Get()
	lookback := cfg.MissedLookbackDays
	if v := strings.TrimSpace(ctx.Query("lookback")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= cfg.MissedLookbackDays {
			lookback = n
		}
	}

	logs, err := r.fetchLogs(user.ID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load reading history")
		return
	}

	missed := progress.MissedDays(logs, progress.MissedQuery{
		Today:             userToday(user),
		StartDate:         user.StartDate,
		LookbackDays:      lookback,
		TargetDaysPerWeek: user.TargetDaysPerWeek,
	})

	utils.Success(ctx, gin.H{
		"items":             missed,
		"lookback_days":     lookback,
		"expected_weekdays": progress.ExpectedWeekdays(user.TargetDaysPerWeek),
	})
}

// Stats returns the consolidated snapshot used by the home, ranking and
// history screens. Memoized per user and day at the request boundary; the
// engine itself stays cache-free.
func (r *ReadingController) Stats(ctx *gin.Context) {
	user, ok := currentUser(ctx, r.db)
	if !ok {
		return
	}

	today := userToday(user)
	key := statsCacheKey(user.ID, today)
	if b, ok := utils.CacheGetBytes(key); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	logs, err := r.fetchLogs(user.ID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to load reading history")
		return
	}

	stats := progress.ComputeUserStats(logs, today)
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: stats}
	utils.CacheSetJSON(key, wrapper, time.Minute)
	utils.Success(ctx, stats)
}

// fetchLogs loads the user's entire log history; the engine is always fed
// the full set, never an incremental slice.
func (r *ReadingController) fetchLogs(userID uint) ([]models.ReadingLog, error) {
	var logs []models.ReadingLog
	err := r.db.Where("user_id = ?", userID).Find(&logs).Error
	return logs, err
}

func (r *ReadingController) respondAlreadyCompleted(ctx *gin.Context, date string) {
	utils.Success(ctx, gin.H{
		"already_completed": true,
		"date":              date,
		"points_awarded":    0,
	})
}

func statsCacheKey(userID uint, today string) string {
	return "cache:stats:" + strconv.FormatUint(uint64(userID), 10) + ":" + today
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}
