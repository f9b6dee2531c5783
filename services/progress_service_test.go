package services

import (
	"testing"

	"github.com/yansanity1998/ojt-hours-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entriesWithHours(hours ...float64) []models.TimeEntry {
	out := make([]models.TimeEntry, len(hours))
	for i, h := range hours {
		out[i] = models.TimeEntry{Hours: h}
	}
	return out
}

func unlockedThresholds(p Progress) []float64 {
	var out []float64
	for _, b := range p.Badges {
		if b.Unlocked {
			out = append(out, b.Threshold)
		}
	}
	return out
}

func TestProjectBoundary(t *testing.T) {
	p := Project(entriesWithHours(250, 250), 500)
	assert.Equal(t, 500.0, p.Completed)
	assert.Equal(t, 0.0, p.Left)
	assert.Equal(t, 100.0, p.Percentage)
}

func TestProjectOverCompletion(t *testing.T) {
	// completed is uncapped; left and percentage are clamped
	p := Project(entriesWithHours(400, 200), 500)
	assert.Equal(t, 600.0, p.Completed)
	assert.Equal(t, 0.0, p.Left)
	assert.Equal(t, 100.0, p.Percentage)
}

func TestProjectZeroTarget(t *testing.T) {
	p := Project(entriesWithHours(40), 0)
	assert.Equal(t, 0.0, p.Percentage)
	assert.Empty(t, unlockedThresholds(p))
}

func TestBadgeSetAtHalfway(t *testing.T) {
	p := Project(entriesWithHours(250), 500)
	assert.Equal(t, 50.0, p.Percentage)
	assert.Equal(t, []float64{25, 50}, unlockedThresholds(p))
}

func TestBadgeSetJustUnderThreshold(t *testing.T) {
	p := Project(entriesWithHours(124.9), 500)
	assert.Empty(t, unlockedThresholds(p))
}

func TestCelebrationFiresOnce(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	required := 8.0
	_, err := UpsertSettings(user.ID, SettingsInput{TotalRequiredHours: &required})
	require.NoError(t, err)
	_, err = AddEntry(user.ID, AddEntryInput{Date: "2025-03-03"}, at(10, 0))
	require.NoError(t, err)

	p, err := ProjectForUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Left)
	assert.True(t, p.Celebrate)

	// repeated projection while left stays 0 does not re-fire
	p, err = ProjectForUser(user.ID)
	require.NoError(t, err)
	assert.False(t, p.Celebrate)
}

func TestCelebrationReArmsWhenTargetRaised(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	required := 8.0
	_, err := UpsertSettings(user.ID, SettingsInput{TotalRequiredHours: &required})
	require.NoError(t, err)
	_, err = AddEntry(user.ID, AddEntryInput{Date: "2025-03-03"}, at(10, 0))
	require.NoError(t, err)

	p, err := ProjectForUser(user.ID)
	require.NoError(t, err)
	require.True(t, p.Celebrate)

	// raising the target re-arms the latch
	raised := 500.0
	_, err = UpsertSettings(user.ID, SettingsInput{TotalRequiredHours: &raised})
	require.NoError(t, err)

	p, err = ProjectForUser(user.ID)
	require.NoError(t, err)
	assert.Greater(t, p.Left, 0.0)
	assert.False(t, p.Celebrate)

	// meeting it again fires again
	_, err = UpsertSettings(user.ID, SettingsInput{TotalRequiredHours: &required})
	require.NoError(t, err)
	p, err = ProjectForUser(user.ID)
	require.NoError(t, err)
	assert.True(t, p.Celebrate)
}

func TestCelebrationNeedsPositiveTarget(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	zero := 0.0
	_, err := UpsertSettings(user.ID, SettingsInput{TotalRequiredHours: &zero})
	require.NoError(t, err)

	p, err := ProjectForUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Left)
	assert.False(t, p.Celebrate)
}
