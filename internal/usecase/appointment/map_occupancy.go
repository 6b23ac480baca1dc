package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

type OccupancyMapper struct {
	repo     domain.Repository
	settings domain.Settings
}

func NewOccupancyMapper(repo domain.Repository, settings domain.Settings) *OccupancyMapper {
	return &OccupancyMapper{repo: repo, settings: settings}
}

// Map fetches the worker's appointments inside the UTC window and returns
// the local slot labels they occupy.
func (m *OccupancyMapper) Map(
	ctx context.Context,
	workerID string,
	window domain.DateWindow,
) (map[string]struct{}, error) {

	appointments, err := m.repo.ListAppointments(ctx, workerID, window)
	if err != nil {
		return nil, err
	}

	return domain.OccupiedSlots(appointments, m.settings), nil
}
