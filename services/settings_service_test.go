package services

import (
	"encoding/json"
	"testing"

	"github.com/yansanity1998/ojt-hours-tracker/config"
	"github.com/yansanity1998/ojt-hours-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettingsDefaults(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	s, err := GetSettings(user.ID)
	require.NoError(t, err)
	assert.Equal(t, DefaultCompanyName, s.CompanyName)
	assert.Equal(t, float64(DefaultRequiredHours), s.TotalRequiredHours)
	assert.Equal(t, []string{"company-input", "hours-progress", "daily-notes"}, s.CardOrder)
}

func TestUpsertSettingsPartialMerge(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	name := "Acme Corp"
	_, err := UpsertSettings(user.ID, SettingsInput{CompanyName: &name})
	require.NoError(t, err)

	hours := 486.0
	s, err := UpsertSettings(user.ID, SettingsInput{TotalRequiredHours: &hours})
	require.NoError(t, err)

	// the earlier field survives the later partial write
	assert.Equal(t, "Acme Corp", s.CompanyName)
	assert.Equal(t, 486.0, s.TotalRequiredHours)
}

func TestUpsertSettingsCardOrder(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	order := []string{"hours-progress", "company-input", "daily-notes"}
	s, err := UpsertSettings(user.ID, SettingsInput{CardOrder: order})
	require.NoError(t, err)
	assert.Equal(t, order, s.CardOrder)
}

func TestSavedCardOrderGainsDailyNotes(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	// A row saved before the daily-notes card existed.
	legacy, _ := json.Marshal([]string{"company-input", "hours-progress"})
	row := models.Settings{UserID: user.ID, CompanyName: "Acme", CardOrder: string(legacy)}
	require.NoError(t, config.DB.Create(&row).Error)

	s, err := GetSettings(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"company-input", "hours-progress", "daily-notes"}, s.CardOrder)
}
