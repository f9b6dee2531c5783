package services

import (
	"testing"

	"github.com/yansanity1998/ojt-hours-tracker/config"
	"github.com/yansanity1998/ojt-hours-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEntryDefaultsToFullDay(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	entry, err := AddEntry(user.ID, AddEntryInput{Date: "2025-03-03"}, at(10, 0))
	require.NoError(t, err)

	assert.Equal(t, "08:00", *entry.AmIn)
	assert.Equal(t, "12:00", *entry.AmOut)
	assert.Equal(t, "13:00", *entry.PmIn)
	assert.Equal(t, "17:00", *entry.PmOut)
	assert.Equal(t, 8.0, entry.Hours)
	assert.NotEmpty(t, entry.ID)
}

func TestAddEntryRejectsDuplicateDate(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	_, err := AddEntry(user.ID, AddEntryInput{Date: "2025-03-03"}, at(10, 0))
	require.NoError(t, err)

	_, err = AddEntry(user.ID, AddEntryInput{Date: "2025-03-03"}, at(10, 0))
	assert.ErrorIs(t, err, ErrDuplicateDate)

	entries, err := ListEntries(user.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestListEntriesNewestFirst(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	for _, d := range []string{"2025-03-01", "2025-03-05", "2025-03-03"} {
		_, err := AddEntry(user.ID, AddEntryInput{Date: d}, at(10, 0))
		require.NoError(t, err)
	}

	entries, err := ListEntries(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2025-03-05", entries[0].Date)
	assert.Equal(t, "2025-03-03", entries[1].Date)
	assert.Equal(t, "2025-03-01", entries[2].Date)
}

func TestUpdatePunchRecomputesHours(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	entry, err := AddEntry(user.ID, AddEntryInput{Date: "2025-03-03"}, at(10, 0))
	require.NoError(t, err)

	updated, _, err := UpdateEntryField(user.ID, entry.ID, FieldPmOut, "18:00", at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, 9.0, updated.Hours)

	// clearing a punch drops that session's credit
	updated, _, err = UpdateEntryField(user.ID, entry.ID, FieldAmOut, "", at(10, 0))
	require.NoError(t, err)
	assert.Nil(t, updated.AmOut)
	assert.Equal(t, 5.0, updated.Hours)
}

func TestManualEditOfTodayReconcilesPointer(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	now := at(10, 0)

	res, err := ClockToggle(user.ID, at(9, 0))
	require.NoError(t, err)
	require.True(t, res.Pointer.TimedIn)
	entryID := res.Entry.ID

	// Manually closing the open AM session must drop the pointer to idle.
	_, ptr, err := UpdateEntryField(user.ID, entryID, FieldAmOut, "09:45", now)
	require.NoError(t, err)
	assert.False(t, ptr.TimedIn)

	// And manually clearing the out punch re-opens it.
	_, ptr, err = UpdateEntryField(user.ID, entryID, FieldAmOut, "", now)
	require.NoError(t, err)
	assert.True(t, ptr.TimedIn)
	assert.Equal(t, SessionAM, ptr.Session)
	assert.Equal(t, entryID, ptr.EntryID)
}

func TestDateEditIntoTodayActivatesEntry(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	now := at(10, 0)

	amIn := "08:00"
	entry := models.TimeEntry{UserID: user.ID, Date: "2025-03-01", AmIn: &amIn}
	require.NoError(t, config.DB.Create(&entry).Error)

	ptr, err := ResolveSession(user.ID, now)
	require.NoError(t, err)
	assert.False(t, ptr.TimedIn)

	_, ptr, err = UpdateEntryField(user.ID, entry.ID, FieldDate, DateString(now), now)
	require.NoError(t, err)
	assert.True(t, ptr.TimedIn)
	assert.Equal(t, SessionAM, ptr.Session)
	assert.Equal(t, entry.ID, ptr.EntryID)
}

func TestDateEditOutOfTodayDeactivatesEntry(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	now := at(10, 0)

	res, err := ClockToggle(user.ID, at(9, 0))
	require.NoError(t, err)
	require.True(t, res.Pointer.TimedIn)

	_, ptr, err := UpdateEntryField(user.ID, res.Entry.ID, FieldDate, "2025-03-01", now)
	require.NoError(t, err)
	assert.False(t, ptr.TimedIn)
	assert.Empty(t, ptr.EntryID)
}

func TestDeleteActiveEntryResetsPointer(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)
	now := at(10, 0)

	res, err := ClockToggle(user.ID, at(9, 0))
	require.NoError(t, err)
	require.True(t, res.Pointer.TimedIn)

	ptr, err := DeleteEntry(user.ID, res.Entry.ID, now)
	require.NoError(t, err)
	assert.False(t, ptr.TimedIn)
	assert.Empty(t, ptr.EntryID)

	entries, err := ListEntries(user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteEntryUnknownID(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	_, err := DeleteEntry(user.ID, "no-such-id", at(10, 0))
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestUpdateEntryScopedToOwner(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t)
	other := createTestUser(t)

	entry, err := AddEntry(owner.ID, AddEntryInput{Date: "2025-03-03"}, at(10, 0))
	require.NoError(t, err)

	_, _, err = UpdateEntryField(other.ID, entry.ID, FieldAmIn, "07:00", at(10, 0))
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
