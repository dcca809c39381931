package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lectioapp/lectio/importer"
	"github.com/lectioapp/lectio/models"
	"github.com/lectioapp/lectio/utils"
)

// PlanController serves the weekly reading-plan sections and the admin
// workbook import.
type PlanController struct {
	db *gorm.DB
}

// NewPlanController creates a new controller instance.
func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{db: db}
}

// Week returns the plan sections of one week in day order.
func (p *PlanController) Week(ctx *gin.Context) {
	week, err := strconv.Atoi(ctx.Param("week"))
	if err != nil || week < 1 {
		utils.Error(ctx, http.StatusBadRequest, 40060, "invalid week number")
		return
	}

	key := "cache:plan:week:" + strconv.Itoa(week)
	if b, ok := utils.CacheGetBytes(key); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	var sections []models.Section
	if err := p.db.Where("week = ?", week).Order("day_order ASC").Find(&sections).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to load plan sections")
		return
	}

	payload := gin.H{"week": week, "sections": sections}
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	utils.CacheSetJSON(key, wrapper, time.Hour)
	utils.Success(ctx, payload)
}

// Import replaces plan content from an uploaded .xlsx workbook. Admin only.
func (p *PlanController) Import(ctx *gin.Context) {
	user, ok := currentUser(ctx, p.db)
	if !ok {
		return
	}
	if !user.IsAdmin {
		utils.Error(ctx, http.StatusForbidden, 40310, "admin privileges required")
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40061, "missing workbook file")
		return
	}
	if filepath.Ext(file.Filename) != ".xlsx" {
		utils.Error(ctx, http.StatusBadRequest, 40062, "workbook must be .xlsx")
		return
	}

	tmp, err := os.CreateTemp("", "plan-*.xlsx")
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to stage upload")
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to stage upload")
		return
	}

	result, err := importer.ImportSections(p.db, tmpPath, importer.DefaultImportConfig())
	if err != nil {
		utils.Sugar.Errorf("plan import failed: %v", err)
		utils.Error(ctx, http.StatusBadRequest, 40063, "failed to parse workbook")
		return
	}

	utils.InvalidateByPrefix("cache:plan:week:")
	utils.Sugar.Infof("plan import by %s: %d created, %d updated, %d skipped",
		user.Username, result.Created, result.Updated, result.Skipped)

	utils.Success(ctx, result)
}
