package models

import "time"

// Settings is one row per user, upserted as a whole on every change.
type Settings struct {
	ID                 uint    `gorm:"primaryKey" json:"-"`
	UserID             uint    `gorm:"uniqueIndex;not null" json:"-"`
	CompanyName        string  `json:"company_name"`
	CompanyLocation    string  `json:"company_location"`
	TotalRequiredHours float64 `json:"total_required_hours"`

	// JSON-encoded ordered list of dashboard card ids.
	CardOrder string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}
