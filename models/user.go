package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a reader account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email        string `gorm:"size:255" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	AvatarURL    string `gorm:"size:512" json:"avatar_url"`
	// Timezone is an IANA identifier reported by the client, e.g. "Europe/Istanbul".
	// It decides what "today" means for this user; empty falls back to UTC.
	Timezone string `gorm:"size:64" json:"timezone"`
	// TargetDaysPerWeek is how many reading days per week the user committed to (1-7).
	TargetDaysPerWeek int `gorm:"default:7" json:"target_days_per_week"`
	// StartDate is the user's first accountable reading day (YYYY-MM-DD).
	// Days before it are never reported as missed.
	StartDate string         `gorm:"size:10" json:"start_date"`
	IsAdmin   bool           `gorm:"default:false" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	if u.StartDate == "" {
		u.StartDate = now.UTC().Format("2006-01-02")
	}
	if u.TargetDaysPerWeek < 1 || u.TargetDaysPerWeek > 7 {
		u.TargetDaysPerWeek = 7
	}
	return nil
}

// BeforeUpdate ensures the UpdatedAt timestamp is refreshed.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
