package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yansanity1998/ojt-hours-tracker/config"
	"github.com/yansanity1998/ojt-hours-tracker/models"
	"github.com/yansanity1998/ojt-hours-tracker/utils"

	"gorm.io/gorm"
)

var (
	ErrDuplicateDate = errors.New("an entry already exists for that date")
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidField  = errors.New("unknown entry field")
)

// EntryField names the directly editable columns of a time entry.
type EntryField string

const (
	FieldDate  EntryField = "date"
	FieldAmIn  EntryField = "amIn"
	FieldAmOut EntryField = "amOut"
	FieldPmIn  EntryField = "pmIn"
	FieldPmOut EntryField = "pmOut"
)

var entryColumns = map[EntryField]string{
	FieldDate:  "date",
	FieldAmIn:  "am_in",
	FieldAmOut: "am_out",
	FieldPmIn:  "pm_in",
	FieldPmOut: "pm_out",
}

// ListEntries returns all of a user's entries, newest date first.
func ListEntries(userID uint) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&entries).Error
	return entries, err
}

// AddEntryInput carries the optional overrides for a manual entry; an
// unset date defaults to today and unset punches to a standard full day.
type AddEntryInput struct {
	Date  string  `json:"date"`
	AmIn  *string `json:"am_in"`
	AmOut *string `json:"am_out"`
	PmIn  *string `json:"pm_in"`
	PmOut *string `json:"pm_out"`
}

func strPtr(s string) *string { return &s }

// AddEntry creates a manual entry. The duplicate-date check runs before
// the insert so the unique index is a backstop, not the primary guard.
func AddEntry(userID uint, in AddEntryInput, now time.Time) (*models.TimeEntry, error) {
	date := in.Date
	if date == "" {
		date = DateString(now)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}

	var count int64
	if err := config.DB.Model(&models.TimeEntry{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateDate
	}

	entry := models.TimeEntry{
		UserID: userID,
		Date:   date,
		AmIn:   in.AmIn,
		AmOut:  in.AmOut,
		PmIn:   in.PmIn,
		PmOut:  in.PmOut,
	}
	// Manual adds default to a standard full day.
	if entry.AmIn == nil && entry.AmOut == nil && entry.PmIn == nil && entry.PmOut == nil {
		entry.AmIn, entry.AmOut = strPtr("08:00"), strPtr("12:00")
		entry.PmIn, entry.PmOut = strPtr("13:00"), strPtr("17:00")
	}
	entry.Hours = utils.ComputeHours(entry.AmIn, entry.AmOut, entry.PmIn, entry.PmOut)

	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	Notify(userID, models.NotifEntryAdded, fmt.Sprintf("Entry added for %s.", entry.Date))
	return &entry, nil
}

// UpdateEntryField applies one manual edit to an entry, recomputes the
// derived hours for punch fields, persists, and reconciles the session
// pointer against today's data. The returned pointer reflects the edit,
// including a date change that moves the entry into or out of today.
func UpdateEntryField(userID uint, id string, field EntryField, value string, now time.Time) (*models.TimeEntry, SessionPointer, error) {
	column, ok := entryColumns[field]
	if !ok {
		return nil, SessionPointer{}, ErrInvalidField
	}

	var entry models.TimeEntry
	err := config.DB.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, SessionPointer{}, ErrEntryNotFound
	}
	if err != nil {
		return nil, SessionPointer{}, err
	}

	updates := map[string]interface{}{}
	if field == FieldDate {
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return nil, SessionPointer{}, fmt.Errorf("invalid date format, use YYYY-MM-DD")
		}
		var count int64
		if err := config.DB.Model(&models.TimeEntry{}).
			Where("user_id = ? AND date = ? AND id <> ?", userID, value, id).
			Count(&count).Error; err != nil {
			return nil, SessionPointer{}, err
		}
		if count > 0 {
			return nil, SessionPointer{}, ErrDuplicateDate
		}
		entry.Date = value
		updates[column] = value
	} else {
		// An empty value clears the punch.
		var punch *string
		if value != "" {
			if _, err := time.Parse(utils.ClockLayout, value); err != nil {
				return nil, SessionPointer{}, fmt.Errorf("invalid time format, use HH:MM")
			}
			punch = &value
		}
		switch field {
		case FieldAmIn:
			entry.AmIn = punch
		case FieldAmOut:
			entry.AmOut = punch
		case FieldPmIn:
			entry.PmIn = punch
		case FieldPmOut:
			entry.PmOut = punch
		}
		entry.Hours = utils.ComputeHours(entry.AmIn, entry.AmOut, entry.PmIn, entry.PmOut)
		updates[column] = punch
		updates["hours"] = entry.Hours
	}

	if err := config.DB.Model(&models.TimeEntry{}).
		Where("id = ?", entry.ID).
		Updates(updates).Error; err != nil {
		return nil, SessionPointer{}, err
	}

	ptr, err := ResolveSession(userID, now)
	if err != nil {
		return nil, SessionPointer{}, err
	}
	return &entry, ptr, nil
}

// DeleteEntry removes an entry and reconciles the pointer: deleting the
// active entry drops the state back to idle.
func DeleteEntry(userID uint, id string, now time.Time) (SessionPointer, error) {
	res := config.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.TimeEntry{})
	if res.Error != nil {
		return SessionPointer{}, res.Error
	}
	if res.RowsAffected == 0 {
		return SessionPointer{}, ErrEntryNotFound
	}
	return ResolveSession(userID, now)
}
