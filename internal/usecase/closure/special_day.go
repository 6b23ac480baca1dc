package closure

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domainAppointment "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/closure"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SpecialDayInput struct {
	Date      string
	OpenTime  *string
	CloseTime *string
}

// SpecialDays manages per-worker working-hour overrides.
type SpecialDays struct {
	repo     domain.Repository
	defaults domainAppointment.Hours
	step     int
	audit    *audit.Dispatcher
}

func NewSpecialDays(
	repo domain.Repository,
	settings domainAppointment.Settings,
	audit *audit.Dispatcher,
) *SpecialDays {
	return &SpecialDays{
		repo:     repo,
		defaults: settings.Hours,
		step:     settings.StepMinutes,
		audit:    audit,
	}
}

// Save creates or replaces the worker's override for the date.
func (uc *SpecialDays) Save(
	ctx context.Context,
	actorID string,
	workerID string,
	in SpecialDayInput,
) httpresp.Response[models.SpecialDay] {

	fail := httpresp.Failure[models.SpecialDay]

	date, err := domainAppointment.CalendarDateUTC(strings.TrimSpace(in.Date))
	if err != nil {
		return fail(httperr.CodeValidation, msgDateInvalid)
	}

	day := &models.SpecialDay{
		WorkerID:  workerID,
		Date:      date,
		OpenTime:  normalizeReason(in.OpenTime),
		CloseTime: normalizeReason(in.CloseTime),
	}

	hours := domainAppointment.HoursFor(day, uc.defaults)
	if _, err := domainAppointment.GenerateSlots(hours.Open, hours.Close, uc.step); err != nil {
		return fail(httperr.CodeInvalidRange, msgHoursInvalid)
	}

	if resp, ok := checkWorker[models.SpecialDay](ctx, uc.repo, workerID, msgSpecialFailed); !ok {
		return resp
	}

	if err := uc.repo.UpsertSpecialDay(ctx, day); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "save_special_day").Msg("upsert failed")
		return fail(httperr.CodePersistence, msgSpecialFailed)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionSpecialDaySaved,
		Entity:   "special_day",
		EntityID: day.ID,
		Metadata: map[string]any{"worker_id": workerID, "open": hours.Open, "close": hours.Close},
	})

	return httpresp.Success(msgSpecialOK, *day)
}

func (uc *SpecialDays) List(ctx context.Context, workerID string) httpresp.Response[[]models.SpecialDay] {
	days, err := uc.repo.ListSpecialDays(ctx, workerID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "list_special_days").Msg("listing failed")
		return httpresp.Failure[[]models.SpecialDay](httperr.CodePersistence, msgSpecialFailed)
	}
	return httpresp.Success(msgSpecialListOK, days)
}

func (uc *SpecialDays) Delete(ctx context.Context, actorID, id string) httpresp.Response[string] {
	return deleteByID(ctx, id, "delete_special_day", msgSpecialNotFound, msgSpecialDeleted, msgSpecialFailed,
		uc.repo.DeleteSpecialDay,
		func() {
			uc.audit.Dispatch(audit.Event{
				ActorID:  actorID,
				Action:   audit.ActionSpecialDayDeleted,
				Entity:   "special_day",
				EntityID: id,
			})
		})
}
