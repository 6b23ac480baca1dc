package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// OccupancyPolicy decides which appointment statuses hold their slots.
type OccupancyPolicy string

const (
	PolicyAllStatuses      OccupancyPolicy = "all_statuses"
	PolicyExcludeCancelled OccupancyPolicy = "exclude_cancelled"
)

func ParseOccupancyPolicy(s string) (OccupancyPolicy, error) {
	switch OccupancyPolicy(s) {
	case "", PolicyAllStatuses:
		return PolicyAllStatuses, nil
	case PolicyExcludeCancelled:
		return PolicyExcludeCancelled, nil
	}
	return "", fmt.Errorf("unknown occupancy policy %q", s)
}

func (p OccupancyPolicy) Occupies(status Status) bool {
	if p == PolicyExcludeCancelled {
		return status != StatusCancelled
	}
	return true
}

// ServiceDuration is the appointment's service length, 30 minutes when the
// service could not be resolved.
func ServiceDuration(ap models.Appointment) int {
	if ap.Service == nil || ap.Service.DurationMin <= 0 {
		return DefaultServiceDuration
	}
	return ap.Service.DurationMin
}

// OccupiedSlots expands each appointment into the run of local slot labels
// its service duration consumes.
func OccupiedSlots(appointments []models.Appointment, s Settings) map[string]struct{} {
	occupied := make(map[string]struct{})
	for _, ap := range appointments {
		if !s.Policy.Occupies(Status(ap.Status)) {
			continue
		}

		start := LocalTimeLabel(ap.StartTime, s.Location)
		run, err := Run(start, SlotsNeeded(ServiceDuration(ap), s.StepMinutes), s.StepMinutes)
		if err != nil {
			continue
		}
		for _, label := range run {
			occupied[label] = struct{}{}
		}
	}
	return occupied
}
