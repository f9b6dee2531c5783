package services

import (
	"time"

	"github.com/yansanity1998/ojt-hours-tracker/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationCap bounds the per-user log to the most recent entries.
// The log is append-only from the caller's view; older rows are evicted
// after every append.
const NotificationCap = 50

type notifierDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _notifier notifierDeps

func InitNotifier(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_notifier = notifierDeps{db: db, rt: rt, ps: ps}
}

// Notify appends to the user's notification log and fans out to any live
// websocket clients and registered push devices. Safe to call anywhere;
// a failed append never blocks the action that produced it.
func Notify(userID uint, typ models.NotificationType, message string) {
	if _notifier.db == nil {
		return // not initialized (tests exercise services without fan-out)
	}

	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := _notifier.db.Create(n).Error; err != nil {
		return
	}
	trimNotifications(userID)

	if _notifier.rt != nil {
		_notifier.rt.Broadcast(userID, map[string]any{
			"kind":         "notification.created",
			"notification": n,
		})
	}
	if _notifier.ps != nil {
		_notifier.ps.PushToUser(userID, "OJT Hours", message, map[string]string{
			"type": string(typ), "notificationId": n.ID,
		})
	}
}

func trimNotifications(userID uint) {
	var stale []models.Notification
	_notifier.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(NotificationCap).
		Find(&stale)
	if len(stale) > 0 {
		_notifier.db.Delete(&stale)
	}
}

// ListNotifications returns the user's log, newest first.
func ListNotifications(userID uint) ([]models.Notification, error) {
	if _notifier.db == nil {
		return nil, nil
	}
	var items []models.Notification
	err := _notifier.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error
	return items, err
}

func ClearNotifications(userID uint) error {
	if _notifier.db == nil {
		return nil
	}
	return _notifier.db.
		Where("user_id = ?", userID).
		Delete(&models.Notification{}).Error
}
