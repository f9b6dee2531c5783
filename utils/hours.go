package utils

import (
	"math"
	"time"
)

// ClockLayout is the wire format for punch times ("HH:MM", 24h).
const ClockLayout = "15:04"

// ComputeHours returns the total hours for one day's punch set, rounded
// to the nearest 0.1. A session with a missing in or out contributes
// nothing, and an out earlier than its in contributes zero rather than a
// negative amount. Overnight sessions are not supported.
func ComputeHours(amIn, amOut, pmIn, pmOut *string) float64 {
	total := sessionHours(amIn, amOut) + sessionHours(pmIn, pmOut)
	return math.Round(total*10) / 10
}

func sessionHours(in, out *string) float64 {
	if in == nil || out == nil || *in == "" || *out == "" {
		return 0
	}
	tIn, err := time.Parse(ClockLayout, *in)
	if err != nil {
		return 0
	}
	tOut, err := time.Parse(ClockLayout, *out)
	if err != nil {
		return 0
	}
	return math.Max(0, tOut.Sub(tIn).Hours())
}
