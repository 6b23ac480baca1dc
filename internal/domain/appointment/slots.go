package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const (
	DefaultOpenTime        = "08:00"
	DefaultCloseTime       = "17:00"
	DefaultStepMinutes     = 30
	DefaultServiceDuration = 30

	labelLayout = "15:04"
)

var ErrInvalidRange = httperr.ErrBusiness(httperr.CodeInvalidRange)

// ParseLabel converts an "HH:MM" wall-clock label into minutes since midnight.
func ParseLabel(label string) (int, error) {
	if len(label) != len(labelLayout) {
		return 0, fmt.Errorf("invalid time label %q", label)
	}
	t, err := time.Parse(labelLayout, label)
	if err != nil {
		return 0, fmt.Errorf("invalid time label %q: %w", label, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateSlots returns every step-spaced label in [openTime, closeTime).
// It fails with ErrInvalidRange unless openTime < closeTime and step > 0.
func GenerateSlots(openTime, closeTime string, stepMinutes int) ([]string, error) {
	open, err := ParseLabel(openTime)
	if err != nil {
		return nil, err
	}
	closing, err := ParseLabel(closeTime)
	if err != nil {
		return nil, err
	}
	if open >= closing || stepMinutes <= 0 {
		return nil, ErrInvalidRange
	}

	slots := make([]string, 0, (closing-open+stepMinutes-1)/stepMinutes)
	for m := open; m < closing; m += stepMinutes {
		slots = append(slots, FormatLabel(m))
	}
	return slots, nil
}

// SlotsNeeded is ceil(durationMinutes / stepMinutes), never less than one.
func SlotsNeeded(durationMinutes, stepMinutes int) int {
	if durationMinutes <= 0 || stepMinutes <= 0 {
		return 1
	}
	return (durationMinutes + stepMinutes - 1) / stepMinutes
}

// Run lists the n consecutive labels starting at start.
func Run(start string, n, stepMinutes int) ([]string, error) {
	m, err := ParseLabel(start)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, n)
	for k := 0; k < n; k++ {
		out = append(out, FormatLabel(m+k*stepMinutes))
	}
	return out, nil
}
