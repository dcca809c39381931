package models

import (
	"encoding/json"
	"time"
)

// Reading modes. A "today" reading is logged for the day it was due,
// a "makeup" reading backfills an earlier missed day.
const (
	ModeToday  = "today"
	ModeMakeup = "makeup"
)

// ReadingLog stores one completion record per user per calendar day.
// The composite unique index is the atomic guard behind the
// one-log-per-(user,date) invariant; duplicate submissions must surface
// as a key conflict, never as a second row.
type ReadingLog struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex:idx_user_date;not null" json:"user_id"`
	// Date is the calendar day the reading counts for (YYYY-MM-DD),
	// not the day it was submitted.
	Date    string `gorm:"size:10;uniqueIndex:idx_user_date;not null" json:"date"`
	Weekday string `gorm:"size:10" json:"weekday"`
	Mode    string `gorm:"size:10;not null" json:"mode"`
	// Completed is stored for forward compatibility with draft logs;
	// streak and point math only ever considers completed rows.
	Completed bool `gorm:"default:true" json:"completed"`
	// PointsEarned is assigned once when the log is created and never
	// recomputed retroactively.
	PointsEarned int       `json:"points_earned"`
	CompletedAt  time.Time `json:"completed_at"`
	// SectionIDs is a JSON array of plan-section external IDs, provenance only.
	SectionIDs string    `gorm:"size:1024" json:"-"`
	Notes      string    `gorm:"size:512" json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Sections decodes the stored section ID list.
func (l *ReadingLog) Sections() []string {
	if l.SectionIDs == "" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(l.SectionIDs), &ids); err != nil {
		return nil
	}
	return ids
}

// SetSections encodes the section ID list for storage.
func (l *ReadingLog) SetSections(ids []string) {
	if len(ids) == 0 {
		l.SectionIDs = ""
		return
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return
	}
	l.SectionIDs = string(b)
}
