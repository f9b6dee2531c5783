package services

import (
	"math"
	"sync"

	"github.com/yansanity1998/ojt-hours-tracker/models"
)

// Badge thresholds are fixed percentages; unlock state is always derived,
// never persisted.
type Badge struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Threshold   float64 `json:"threshold"`
	Unlocked    bool    `json:"unlocked"`
}

var badgeSet = []Badge{
	{ID: 1, Title: "First Steps", Description: "25% Complete", Threshold: 25},
	{ID: 2, Title: "Halfway Hero", Description: "50% Complete", Threshold: 50},
	{ID: 3, Title: "Almost There", Description: "75% Complete", Threshold: 75},
	{ID: 4, Title: "Goal Crusher", Description: "100% Complete", Threshold: 100},
}

type Progress struct {
	Completed  float64 `json:"completed"`
	Left       float64 `json:"left"`
	Percentage float64 `json:"percentage"`
	Badges     []Badge `json:"badges"`

	// True exactly once when the requirement is first met; re-armed if
	// hours left becomes positive again.
	Celebrate bool `json:"celebrate"`
}

// Project derives the display state from the entry list and the required
// total. Completed hours are uncapped; percentage is clamped to [0,100]
// and is 0 while no positive target is set.
func Project(entries []models.TimeEntry, totalRequired float64) Progress {
	var completed float64
	for _, e := range entries {
		completed += e.Hours
	}

	left := math.Max(0, totalRequired-completed)

	var percentage float64
	if totalRequired > 0 {
		percentage = math.Min(100, completed/totalRequired*100)
	}

	badges := make([]Badge, len(badgeSet))
	copy(badges, badgeSet)
	for i := range badges {
		badges[i].Unlocked = percentage >= badges[i].Threshold
	}

	return Progress{
		Completed:  completed,
		Left:       left,
		Percentage: percentage,
		Badges:     badges,
	}
}

// celebrationLatch makes the goal-met celebration a one-shot per user:
// repeated projections while left stays 0 fire it once, and dropping back
// below the target re-arms it.
type celebrationLatch struct {
	mu    sync.Mutex
	fired map[uint]bool
}

var celebrations = celebrationLatch{fired: make(map[uint]bool)}

func (l *celebrationLatch) observe(userID uint, met bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !met {
		l.fired[userID] = false
		return false
	}
	if l.fired[userID] {
		return false
	}
	l.fired[userID] = true
	return true
}

// ProjectForUser loads the user's entries and target and projects the
// full progress state, including the one-shot celebration flag.
func ProjectForUser(userID uint) (*Progress, error) {
	entries, err := ListEntries(userID)
	if err != nil {
		return nil, err
	}
	settings, err := GetSettings(userID)
	if err != nil {
		return nil, err
	}

	p := Project(entries, settings.TotalRequiredHours)
	p.Celebrate = celebrations.observe(userID, p.Left <= 0 && settings.TotalRequiredHours > 0)
	return &p, nil
}
