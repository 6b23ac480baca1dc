package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

// DayResolver decides whether a worker's date is closed or which hours apply.
type DayResolver struct {
	repo     domain.Repository
	defaults domain.Hours
}

func NewDayResolver(repo domain.Repository, defaults domain.Hours) *DayResolver {
	return &DayResolver{repo: repo, defaults: defaults}
}

// Resolve checks, in order and short-circuiting: global closure, worker
// closure, special day, defaults.
func (r *DayResolver) Resolve(
	ctx context.Context,
	workerID string,
	window domain.DateWindow,
) (domain.DayStatus, error) {

	global, err := r.repo.FindGlobalClosedDay(ctx, window)
	if err != nil {
		return domain.DayStatus{}, err
	}
	if global != nil {
		return domain.DayStatus{Blocked: true, Scope: domain.ScopeGlobal, Reason: global.Reason}, nil
	}

	closed, err := r.repo.FindWorkerClosedDay(ctx, workerID, window)
	if err != nil {
		return domain.DayStatus{}, err
	}
	if closed != nil {
		return domain.DayStatus{Blocked: true, Scope: domain.ScopeWorker, Reason: closed.Reason}, nil
	}

	special, err := r.repo.FindSpecialDay(ctx, workerID, window)
	if err != nil {
		return domain.DayStatus{}, err
	}

	hours := domain.HoursFor(special, r.defaults)
	return domain.DayStatus{Hours: &hours}, nil
}
