package appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
)

type GetAvailability struct {
	resolver *DayResolver
	mapper   *OccupancyMapper
	settings domain.Settings
}

func NewGetAvailability(repo domain.Repository, settings domain.Settings) *GetAvailability {
	return &GetAvailability{
		resolver: NewDayResolver(repo, settings.Hours),
		mapper:   NewOccupancyMapper(repo, settings),
		settings: settings,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) httpresp.Response[domain.AvailableDates] {

	if strings.TrimSpace(in.Date) == "" {
		return httpresp.Failure[domain.AvailableDates](httperr.CodeValidation, msgDateRequired)
	}
	window, err := domain.CalendarWindowUTC(in.Date)
	if err != nil {
		return httpresp.Failure[domain.AvailableDates](httperr.CodeValidation, msgDateInvalid)
	}
	if strings.TrimSpace(in.WorkerID) == "" {
		return httpresp.Failure[domain.AvailableDates](httperr.CodeValidation, msgWorkerRequired)
	}

	result, day, err := uc.compute(ctx, in, window)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidRange) {
			return httpresp.Failure[domain.AvailableDates](httperr.CodeInvalidRange, msgInvalidHours)
		}
		zerolog.Ctx(ctx).Error().Err(err).
			Str("op", "get_available_dates").
			Str("worker_id", in.WorkerID).
			Str("date", in.Date).
			Msg("availability lookup failed")
		return httpresp.Failure[domain.AvailableDates](httperr.CodePersistence, msgAvailableFailed)
	}

	if day.Blocked {
		msg := msgGloballyClosed
		if day.Scope == domain.ScopeWorker {
			msg = msgWorkerClosed
		}
		return httpresp.FailureWith(httperr.CodeClosedDay, msg, result)
	}

	return httpresp.Success(msgAvailableOK, result)
}

// compute runs resolver -> grid -> occupancy -> filter for an already
// validated input.
func (uc *GetAvailability) compute(
	ctx context.Context,
	in domain.AvailabilityInput,
	window domain.DateWindow,
) (domain.AvailableDates, domain.DayStatus, error) {

	out := domain.AvailableDates{Date: in.Date, AvailableTimes: []string{}}

	day, err := uc.resolver.Resolve(ctx, in.WorkerID, window)
	if err != nil {
		return out, day, err
	}
	if day.Blocked {
		out.IsClosed = true
		return out, day, nil
	}

	step := uc.settings.StepMinutes
	grid, err := domain.GenerateSlots(day.Hours.Open, day.Hours.Close, step)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidRange) {
			return out, day, err
		}
		return out, day, fmt.Errorf("%w: %v", domain.ErrInvalidRange, err)
	}

	occupied, err := uc.mapper.Map(ctx, in.WorkerID, window)
	if err != nil {
		return out, day, err
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = domain.DefaultServiceDuration
	}

	out.AvailableTimes = domain.FilterAvailable(grid, occupied, domain.SlotsNeeded(duration, step), step)
	return out, day, nil
}
