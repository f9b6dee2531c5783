package models

import "time"

type NotificationType string

const (
	NotifTimeIn      NotificationType = "time-in"
	NotifTimeOut     NotificationType = "time-out"
	NotifEntryAdded  NotificationType = "entry-added"
	NotifNoteAdded   NotificationType = "note-added"
	NotifNoteUpdated NotificationType = "note-updated"
	NotifNoteDeleted NotificationType = "note-deleted"
)

type Notification struct {
	ID        string           `gorm:"primaryKey;size:36" json:"id"`
	UserID    uint             `gorm:"index" json:"-"`
	Type      NotificationType `gorm:"size:20" json:"type"`
	Message   string           `gorm:"type:text" json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}
