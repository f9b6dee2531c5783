package services

import (
	"testing"

	"github.com/yansanity1998/ojt-hours-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndListNotes(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	note, err := AddNote(user.ID, "2025-03-03", "Shadowed the QA team today.", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.Empty(t, note.ImageURLs)

	_, err = AddNote(user.ID, "2025-03-04", "Deployed my first fix.", nil)
	require.NoError(t, err)

	notes, err := ListNotes(user.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "2025-03-04", notes[0].Date)
	assert.Equal(t, "2025-03-03", notes[1].Date)
}

func TestAddNoteRejectsDuplicateDate(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	_, err := AddNote(user.ID, "2025-03-03", "first", nil)
	require.NoError(t, err)

	_, err = AddNote(user.ID, "2025-03-03", "second", nil)
	assert.ErrorIs(t, err, ErrDuplicateNoteDate)
}

func TestAddNoteRejectsTooManyImages(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	images := []string{"a", "b", "c", "d"}
	_, err := AddNote(user.ID, "2025-03-03", "too many", images)
	assert.ErrorIs(t, err, ErrTooManyImages)
}

func TestUpdateNoteContentAndDate(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	note, err := AddNote(user.ID, "2025-03-03", "draft", nil)
	require.NoError(t, err)

	updated, err := UpdateNote(user.ID, note.ID, UpdateNoteInput{
		Date:    "2025-03-04",
		Content: "final",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-04", updated.Date)
	assert.Equal(t, "final", updated.Content)
}

func TestUpdateNoteDateCollision(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	_, err := AddNote(user.ID, "2025-03-03", "first", nil)
	require.NoError(t, err)
	second, err := AddNote(user.ID, "2025-03-04", "second", nil)
	require.NoError(t, err)

	_, err = UpdateNote(user.ID, second.ID, UpdateNoteInput{Date: "2025-03-03", Content: "second"})
	assert.ErrorIs(t, err, ErrDuplicateNoteDate)
}

func TestDeleteNoteEmitsNotification(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	note, err := AddNote(user.ID, "2025-03-03", "to be removed", nil)
	require.NoError(t, err)
	require.NoError(t, DeleteNote(user.ID, note.ID))

	notes, err := ListNotes(user.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)

	items, err := ListNotifications(user.ID)
	require.NoError(t, err)
	var sawDeleted bool
	for _, n := range items {
		if n.Type == models.NotifNoteDeleted {
			sawDeleted = true
		}
	}
	assert.True(t, sawDeleted)
}

func TestDeleteNoteUnknownID(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	assert.ErrorIs(t, DeleteNote(user.ID, "no-such-id"), ErrNoteNotFound)
}
