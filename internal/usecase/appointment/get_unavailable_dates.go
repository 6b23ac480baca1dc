package appointment

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
)

type GetUnavailableDates struct {
	repo domain.Repository
}

func NewGetUnavailableDates(repo domain.Repository) *GetUnavailableDates {
	return &GetUnavailableDates{repo: repo}
}

// Execute lists the worker's closures followed by every global closure as
// UTC YYYY-MM-DD strings. Dates present in both sources appear twice.
func (uc *GetUnavailableDates) Execute(
	ctx context.Context,
	workerID string,
) httpresp.Response[[]string] {

	if strings.TrimSpace(workerID) == "" {
		return httpresp.Failure[[]string](httperr.CodeValidation, msgWorkerRequired)
	}

	workerDays, err := uc.repo.ListWorkerClosedDays(ctx, workerID)
	if err != nil {
		return uc.fail(ctx, workerID, err)
	}

	globalDays, err := uc.repo.ListGlobalClosedDays(ctx)
	if err != nil {
		return uc.fail(ctx, workerID, err)
	}

	dates := make([]string, 0, len(workerDays)+len(globalDays))
	for _, d := range workerDays {
		dates = append(dates, domain.UTCDateString(d.Date))
	}
	for _, d := range globalDays {
		dates = append(dates, domain.UTCDateString(d.Date))
	}

	return httpresp.Success(msgUnavailableOK, dates)
}

func (uc *GetUnavailableDates) fail(ctx context.Context, workerID string, err error) httpresp.Response[[]string] {
	zerolog.Ctx(ctx).Error().Err(err).
		Str("op", "get_unavailable_dates").
		Str("worker_id", workerID).
		Msg("closure listing failed")
	return httpresp.Failure[[]string](httperr.CodePersistence, msgUnavailableFailed)
}
