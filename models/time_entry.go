package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeEntry is one calendar day's attendance record: up to two sessions
// (AM and PM), each with an in/out punch pair, plus the derived total.
// At most one entry exists per user per date.
type TimeEntry struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_entries_user_date" json:"-"`

	// Naive local date, "YYYY-MM-DD". Never timezone-converted.
	Date string `gorm:"size:10;not null;uniqueIndex:idx_entries_user_date" json:"date"`

	AmIn  *string `gorm:"size:5" json:"am_in"`
	AmOut *string `gorm:"size:5" json:"am_out"`
	PmIn  *string `gorm:"size:5" json:"pm_in"`
	PmOut *string `gorm:"size:5" json:"pm_out"`

	// Always recomputed from the punches, never hand-edited.
	Hours float64 `json:"hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (e *TimeEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
