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

type Session string

const (
	SessionAM Session = "AM"
	SessionPM Session = "PM"
)

// ErrSessionsFilled is returned when a clock-in is attempted but both the
// AM and PM slots of today's entry already hold an in punch.
var ErrSessionsFilled = errors.New("all sessions for today are already filled")

// SessionPointer is the derived active-session state. It is a projection
// of today's entry, recomputed from stored punches on every read — never
// persisted, never incrementally patched.
type SessionPointer struct {
	TimedIn bool    `json:"timed_in"`
	Session Session `json:"session,omitempty"`
	EntryID string  `json:"entry_id,omitempty"`
}

// ClockResult describes one completed clock transition.
type ClockResult struct {
	Action  models.NotificationType `json:"action"` // time-in | time-out
	Session Session                 `json:"session"`
	Entry   *models.TimeEntry       `json:"entry"`
	Pointer SessionPointer          `json:"pointer"`

	// The client focuses the logs view after every successful toggle.
	ActiveView string `json:"active_view"`
}

// DateString renders a naive local calendar date, "YYYY-MM-DD".
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// ClockString renders a time-of-day punch, "HH:MM".
func ClockString(t time.Time) string {
	return t.Format(utils.ClockLayout)
}

// PreferredSession is the AM/PM slot heuristic: before 12:30 local time
// a clock-in targets the AM session, afterwards PM. A deliberate policy
// simplification, kept isolated so it can be swapped.
func PreferredSession(now time.Time) Session {
	if now.Hour() < 12 || (now.Hour() == 12 && now.Minute() < 30) {
		return SessionAM
	}
	return SessionPM
}

func punchSet(p *string) bool {
	return p != nil && *p != ""
}

// pointerFor derives the session pointer from a single entry's punches.
// An open AM session takes precedence over an open PM session.
func pointerFor(e *models.TimeEntry) SessionPointer {
	switch {
	case punchSet(e.AmIn) && !punchSet(e.AmOut):
		return SessionPointer{TimedIn: true, Session: SessionAM, EntryID: e.ID}
	case punchSet(e.PmIn) && !punchSet(e.PmOut):
		return SessionPointer{TimedIn: true, Session: SessionPM, EntryID: e.ID}
	default:
		return SessionPointer{}
	}
}

// ResolveSession recomputes the pointer from scratch by locating today's
// entry. This is the reconciliation entry point: callers invoke it after
// every mutation path, not just the clock toggle.
func ResolveSession(userID uint, now time.Time) (SessionPointer, error) {
	var entry models.TimeEntry
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, DateString(now)).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SessionPointer{}, nil
	}
	if err != nil {
		return SessionPointer{}, err
	}
	return pointerFor(&entry), nil
}

// ClockToggle performs the single-control clock transition for userID at
// the given wall time. Timed out → clock in (creating today's entry if
// needed); timed in → clock out of the open session and recompute hours.
// Local state is only reported after the store acknowledges the write.
func ClockToggle(userID uint, now time.Time) (*ClockResult, error) {
	today := DateString(now)
	punch := ClockString(now)

	var entry models.TimeEntry
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, today).
		First(&entry).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return clockInNew(userID, today, punch, now)
	}

	if ptr := pointerFor(&entry); ptr.TimedIn {
		return clockOut(&entry, ptr, punch)
	}
	return clockInExisting(&entry, now, punch)
}

// clockInNew creates today's entry with the preferred slot's in punch set
// and everything else absent.
func clockInNew(userID uint, today, punch string, now time.Time) (*ClockResult, error) {
	target := PreferredSession(now)

	entry := models.TimeEntry{UserID: userID, Date: today, Hours: 0}
	if target == SessionAM {
		entry.AmIn = &punch
	} else {
		entry.PmIn = &punch
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	Notify(userID, models.NotifTimeIn, fmt.Sprintf("You timed in for the %s session.", target))
	return &ClockResult{
		Action:     models.NotifTimeIn,
		Session:    target,
		Entry:      &entry,
		Pointer:    pointerFor(&entry),
		ActiveView: "logs",
	}, nil
}

// clockInExisting fills an open in slot on today's entry: the preferred
// slot when free, otherwise whichever slot still has no in punch.
func clockInExisting(entry *models.TimeEntry, now time.Time, punch string) (*ClockResult, error) {
	preferAM := PreferredSession(now) == SessionAM

	var target Session
	switch {
	case preferAM && !punchSet(entry.AmIn):
		target = SessionAM
	case !preferAM && !punchSet(entry.PmIn):
		target = SessionPM
	case !punchSet(entry.AmIn):
		target = SessionAM
	case !punchSet(entry.PmIn):
		target = SessionPM
	default:
		return nil, ErrSessionsFilled
	}

	var column string
	if target == SessionAM {
		column = "am_in"
	} else {
		column = "pm_in"
	}
	if err := config.DB.Model(entry).Update(column, punch).Error; err != nil {
		return nil, err
	}
	if target == SessionAM {
		entry.AmIn = &punch
	} else {
		entry.PmIn = &punch
	}

	Notify(entry.UserID, models.NotifTimeIn, fmt.Sprintf("You timed in for the %s session.", target))
	return &ClockResult{
		Action:     models.NotifTimeIn,
		Session:    target,
		Entry:      entry,
		Pointer:    pointerFor(entry),
		ActiveView: "logs",
	}, nil
}

// clockOut closes the open session and recomputes the day's hours from
// the full punch set.
func clockOut(entry *models.TimeEntry, ptr SessionPointer, punch string) (*ClockResult, error) {
	updates := map[string]interface{}{}
	var hours float64

	if ptr.Session == SessionAM {
		hours = utils.ComputeHours(entry.AmIn, &punch, entry.PmIn, entry.PmOut)
		updates["am_out"] = punch
	} else {
		hours = utils.ComputeHours(entry.AmIn, entry.AmOut, entry.PmIn, &punch)
		updates["pm_out"] = punch
	}
	updates["hours"] = hours

	if err := config.DB.Model(entry).Updates(updates).Error; err != nil {
		return nil, err
	}
	if ptr.Session == SessionAM {
		entry.AmOut = &punch
	} else {
		entry.PmOut = &punch
	}
	entry.Hours = hours

	Notify(entry.UserID, models.NotifTimeOut, fmt.Sprintf("You timed out. Total hours today: %v", hours))
	return &ClockResult{
		Action:     models.NotifTimeOut,
		Session:    ptr.Session,
		Entry:      entry,
		Pointer:    pointerFor(entry),
		ActiveView: "logs",
	}, nil
}
