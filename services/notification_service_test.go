package services

import (
	"fmt"
	"testing"

	"github.com/yansanity1998/ojt-hours-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyAppendsToLog(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	Notify(user.ID, models.NotifTimeIn, "You timed in for the AM session.")

	items, err := ListNotifications(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.NotifTimeIn, items[0].Type)
	assert.NotEmpty(t, items[0].ID)
	assert.False(t, items[0].CreatedAt.IsZero())
}

func TestNotificationLogIsCapped(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	for i := 0; i < NotificationCap+10; i++ {
		Notify(user.ID, models.NotifEntryAdded, fmt.Sprintf("Entry added #%d", i))
	}

	items, err := ListNotifications(user.ID)
	require.NoError(t, err)
	assert.Len(t, items, NotificationCap)
}

func TestNotificationLogScopedByUser(t *testing.T) {
	setupTestDB(t)
	a := createTestUser(t)
	b := createTestUser(t)

	Notify(a.ID, models.NotifNoteAdded, "Note added for 2025-03-03.")

	items, err := ListNotifications(b.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClearNotifications(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t)

	Notify(user.ID, models.NotifNoteDeleted, "Note for 2025-03-03 deleted.")
	require.NoError(t, ClearNotifications(user.ID))

	items, err := ListNotifications(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
