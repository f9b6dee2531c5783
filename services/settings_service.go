package services

import (
	"encoding/json"
	"errors"

	"github.com/yansanity1998/ojt-hours-tracker/config"
	"github.com/yansanity1998/ojt-hours-tracker/models"

	"gorm.io/gorm"
)

// Defaults applied when a user has no settings row yet.
const (
	DefaultCompanyName   = "My Company"
	DefaultRequiredHours = 500
)

var defaultCardOrder = []string{"company-input", "hours-progress", "daily-notes"}

// UserSettings is the settings row with the card order decoded.
type UserSettings struct {
	CompanyName        string   `json:"company_name"`
	CompanyLocation    string   `json:"company_location"`
	TotalRequiredHours float64  `json:"total_required_hours"`
	CardOrder          []string `json:"card_order"`
}

// GetSettings returns the user's settings, falling back to defaults when
// no row exists. A saved card order predating the daily-notes card gets
// it appended so the client always renders every section.
func GetSettings(userID uint) (*UserSettings, error) {
	var row models.Settings
	err := config.DB.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &UserSettings{
			CompanyName:        DefaultCompanyName,
			TotalRequiredHours: DefaultRequiredHours,
			CardOrder:          append([]string(nil), defaultCardOrder...),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	out := &UserSettings{
		CompanyName:        row.CompanyName,
		CompanyLocation:    row.CompanyLocation,
		TotalRequiredHours: row.TotalRequiredHours,
	}
	if row.CardOrder != "" {
		_ = json.Unmarshal([]byte(row.CardOrder), &out.CardOrder)
	}
	if len(out.CardOrder) == 0 {
		out.CardOrder = append([]string(nil), defaultCardOrder...)
	} else if !contains(out.CardOrder, "daily-notes") {
		out.CardOrder = append(out.CardOrder, "daily-notes")
	}
	return out, nil
}

// SettingsInput carries a partial update; nil fields are left untouched.
type SettingsInput struct {
	CompanyName        *string  `json:"company_name"`
	CompanyLocation    *string  `json:"company_location"`
	TotalRequiredHours *float64 `json:"total_required_hours"`
	CardOrder          []string `json:"card_order"`
}

// UpsertSettings merges the partial input into the stored row, creating
// it on first write.
func UpsertSettings(userID uint, in SettingsInput) (*UserSettings, error) {
	var row models.Settings
	err := config.DB.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = models.Settings{
			UserID:             userID,
			CompanyName:        DefaultCompanyName,
			TotalRequiredHours: DefaultRequiredHours,
		}
	} else if err != nil {
		return nil, err
	}

	if in.CompanyName != nil {
		row.CompanyName = *in.CompanyName
	}
	if in.CompanyLocation != nil {
		row.CompanyLocation = *in.CompanyLocation
	}
	if in.TotalRequiredHours != nil {
		row.TotalRequiredHours = *in.TotalRequiredHours
	}
	if in.CardOrder != nil {
		encoded, err := json.Marshal(in.CardOrder)
		if err != nil {
			return nil, err
		}
		row.CardOrder = string(encoded)
	}

	if err := config.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return GetSettings(userID)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
