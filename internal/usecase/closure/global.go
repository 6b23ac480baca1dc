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

type ClosedDayInput struct {
	Date   string
	Reason *string
}

// GlobalClosedDays manages the salon-wide closures.
type GlobalClosedDays struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewGlobalClosedDays(repo domain.Repository, audit *audit.Dispatcher) *GlobalClosedDays {
	return &GlobalClosedDays{repo: repo, audit: audit}
}

func (uc *GlobalClosedDays) Create(
	ctx context.Context,
	actorID string,
	in ClosedDayInput,
) httpresp.Response[models.GlobalClosedDay] {

	date, err := domainAppointment.CalendarDateUTC(strings.TrimSpace(in.Date))
	if err != nil {
		return httpresp.Failure[models.GlobalClosedDay](httperr.CodeValidation, msgDateInvalid)
	}

	day := &models.GlobalClosedDay{Date: date, Reason: normalizeReason(in.Reason)}
	if err := uc.repo.CreateGlobalClosedDay(ctx, day); err != nil {
		if httperr.IsConstraintViolation(err) {
			return httpresp.Failure[models.GlobalClosedDay](httperr.CodeConstraintViolation, msgAlreadyBlocked)
		}
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "create_global_closed_day").Msg("insert failed")
		return httpresp.Failure[models.GlobalClosedDay](httperr.CodePersistence, msgBlockFailed)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionClosedDayCreated,
		Entity:   "global_closed_day",
		EntityID: day.ID,
		Metadata: map[string]any{"date": domainAppointment.UTCDateString(day.Date)},
	})

	return httpresp.Success(msgBlockOK, *day)
}

func (uc *GlobalClosedDays) List(ctx context.Context) httpresp.Response[[]models.GlobalClosedDay] {
	days, err := uc.repo.ListGlobalClosedDays(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "list_global_closed_days").Msg("listing failed")
		return httpresp.Failure[[]models.GlobalClosedDay](httperr.CodePersistence, msgListFailed)
	}
	return httpresp.Success(msgListOK, days)
}

func (uc *GlobalClosedDays) Delete(
	ctx context.Context,
	actorID string,
	id string,
) httpresp.Response[string] {
	return deleteByID(ctx, id, "delete_global_closed_day", msgClosedDayNotFound, msgDeleteOK, msgDeleteFailed,
		uc.repo.DeleteGlobalClosedDay,
		func() {
			uc.audit.Dispatch(audit.Event{
				ActorID:  actorID,
				Action:   audit.ActionClosedDayDeleted,
				Entity:   "global_closed_day",
				EntityID: id,
			})
		})
}

func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	r := strings.TrimSpace(*reason)
	if r == "" {
		return nil
	}
	return &r
}

func deleteByID(
	ctx context.Context,
	id string,
	op string,
	notFoundMsg, okMsg, failMsg string,
	del func(context.Context, string) (bool, error),
	onDeleted func(),
) httpresp.Response[string] {

	if id == "" {
		return httpresp.Failure[string](httperr.CodeValidation, notFoundMsg)
	}

	deleted, err := del(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("op", op).Msg("delete failed")
		return httpresp.Failure[string](httperr.CodePersistence, failMsg)
	}
	if !deleted {
		return httpresp.Failure[string](httperr.CodeNotFound, notFoundMsg)
	}

	onDeleted()
	return httpresp.Success(okMsg, id)
}
