package models

import "time"

// Section is one content segment of the weekly reading plan, e.g.
// week 12, day 3, "Psalms 46-50". Rows are loaded from the plan
// workbook by the importer and referenced from logs by ExternalID.
type Section struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ExternalID string `gorm:"size:36;uniqueIndex" json:"external_id"`
	Week       int    `gorm:"index;not null" json:"week"`
	// DayOrder is the 1-based position of the section within its week.
	DayOrder  int       `gorm:"not null" json:"day_order"`
	Reference string    `gorm:"size:255;not null" json:"reference"`
	Title     string    `gorm:"size:255" json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
