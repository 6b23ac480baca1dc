package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Hours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Settings is the salon-wide grid every availability computation runs on.
type Settings struct {
	Location    *time.Location
	Hours       Hours
	StepMinutes int
	Policy      OccupancyPolicy
}

func DefaultSettings() Settings {
	return Settings{
		Location:    time.UTC,
		Hours:       Hours{Open: DefaultOpenTime, Close: DefaultCloseTime},
		StepMinutes: DefaultStepMinutes,
		Policy:      PolicyAllStatuses,
	}
}

type ClosureScope string

const (
	ScopeNone   ClosureScope = ""
	ScopeGlobal ClosureScope = "global"
	ScopeWorker ClosureScope = "worker"
)

// DayStatus is the Closure Resolver verdict for one worker and date.
type DayStatus struct {
	Blocked bool
	Scope   ClosureScope
	Reason  *string
	Hours   *Hours
}

type AvailabilityInput struct {
	Date        string
	WorkerID    string
	DurationMin int
}

type AvailableDates struct {
	Date           string   `json:"date"`
	AvailableTimes []string `json:"availableTimes"`
	IsClosed       bool     `json:"isClosed"`
}

// HoursFor resolves the working window of a special day, each bound falling
// back to the defaults independently.
func HoursFor(sd *models.SpecialDay, defaults Hours) Hours {
	h := defaults
	if sd == nil {
		return h
	}
	if sd.OpenTime != nil && *sd.OpenTime != "" {
		h.Open = *sd.OpenTime
	}
	if sd.CloseTime != nil && *sd.CloseTime != "" {
		h.Close = *sd.CloseTime
	}
	return h
}

// FilterAvailable keeps the grid slots where a booking needing requestedSlots
// consecutive slots fits: every slot of the run must be on the grid and free.
func FilterAvailable(grid []string, occupied map[string]struct{}, requestedSlots, stepMinutes int) []string {
	onGrid := make(map[string]struct{}, len(grid))
	for _, s := range grid {
		onGrid[s] = struct{}{}
	}

	available := make([]string, 0, len(grid))
	for _, slot := range grid {
		if _, taken := occupied[slot]; taken {
			continue
		}
		start, err := ParseLabel(slot)
		if err != nil {
			continue
		}

		fits := true
		for k := 1; k < requestedSlots; k++ {
			next := FormatLabel(start + k*stepMinutes)
			if _, ok := onGrid[next]; !ok {
				fits = false
				break
			}
			if _, taken := occupied[next]; taken {
				fits = false
				break
			}
		}
		if fits {
			available = append(available, slot)
		}
	}
	return available
}
