// Package importer loads the weekly reading plan from a spreadsheet into
// the sections table. Expected layout: one section per row with week
// number, day order, scripture reference and an optional title.
package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/lectioapp/lectio/models"
)

// ImportConfig defines where section fields live in the workbook.
type ImportConfig struct {
	SheetName       string
	WeekColumn      int // 0-based column index of the week number
	DayColumn       int // day order within the week
	ReferenceColumn int
	TitleColumn     int
	StartRow        int // 1-based row to start importing from
}

// DefaultImportConfig matches the plan workbook layout: header row, then
// week / day / reference / title columns.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName:       "Sheet1",
		WeekColumn:      0,
		DayColumn:       1,
		ReferenceColumn: 2,
		TitleColumn:     3,
		StartRow:        2,
	}
}

// ImportResult holds the outcome of an import operation.
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	Created        int      `json:"created"`
	Updated        int      `json:"updated"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors,omitempty"`
}

// ImportSections reads the workbook and upserts plan sections keyed by
// (week, day order). Existing rows keep their external ID so reading logs
// that reference them stay valid.
func ImportSections(db *gorm.DB, path string, cfg ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(cfg.SheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", cfg.SheetName, err)
	}

	result := &ImportResult{}
	for i, row := range rows {
		if i < cfg.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		section, err := parseRow(row, cfg)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			result.Skipped++
			continue
		}

		var existing models.Section
		err = db.Where("week = ? AND day_order = ?", section.Week, section.DayOrder).First(&existing).Error
		switch {
		case err == nil:
			existing.Reference = section.Reference
			existing.Title = section.Title
			if err := db.Save(&existing).Error; err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
				result.Skipped++
				continue
			}
			result.Updated++
		case err == gorm.ErrRecordNotFound:
			section.ExternalID = uuid.NewString()
			if err := db.Create(section).Error; err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
				result.Skipped++
				continue
			}
			result.Created++
		default:
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			result.Skipped++
		}
	}

	return result, nil
}

func parseRow(row []string, cfg ImportConfig) (*models.Section, error) {
	cell := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	week, err := strconv.Atoi(cell(cfg.WeekColumn))
	if err != nil || week < 1 {
		return nil, fmt.Errorf("invalid week number %q", cell(cfg.WeekColumn))
	}
	day, err := strconv.Atoi(cell(cfg.DayColumn))
	if err != nil || day < 1 || day > 7 {
		return nil, fmt.Errorf("invalid day order %q", cell(cfg.DayColumn))
	}
	ref := cell(cfg.ReferenceColumn)
	if ref == "" {
		return nil, fmt.Errorf("empty reference")
	}

	return &models.Section{
		Week:      week,
		DayOrder:  day,
		Reference: ref,
		Title:     cell(cfg.TitleColumn),
	}, nil
}
