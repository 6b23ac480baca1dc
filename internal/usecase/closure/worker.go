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

// WorkerClosedDays manages per-worker closures.
type WorkerClosedDays struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewWorkerClosedDays(repo domain.Repository, audit *audit.Dispatcher) *WorkerClosedDays {
	return &WorkerClosedDays{repo: repo, audit: audit}
}

func (uc *WorkerClosedDays) Create(
	ctx context.Context,
	actorID string,
	workerID string,
	in ClosedDayInput,
) httpresp.Response[models.WorkerClosedDay] {

	fail := httpresp.Failure[models.WorkerClosedDay]

	date, err := domainAppointment.CalendarDateUTC(strings.TrimSpace(in.Date))
	if err != nil {
		return fail(httperr.CodeValidation, msgDateInvalid)
	}

	if resp, ok := checkWorker[models.WorkerClosedDay](ctx, uc.repo, workerID, msgBlockFailed); !ok {
		return resp
	}

	day := &models.WorkerClosedDay{WorkerID: workerID, Date: date, Reason: normalizeReason(in.Reason)}
	if err := uc.repo.CreateWorkerClosedDay(ctx, day); err != nil {
		if httperr.IsConstraintViolation(err) {
			return fail(httperr.CodeConstraintViolation, msgAlreadyBlocked)
		}
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "create_worker_closed_day").Msg("insert failed")
		return fail(httperr.CodePersistence, msgBlockFailed)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionClosedDayCreated,
		Entity:   "worker_closed_day",
		EntityID: day.ID,
		Metadata: map[string]any{"worker_id": workerID, "date": domainAppointment.UTCDateString(day.Date)},
	})

	return httpresp.Success(msgBlockOK, *day)
}

func (uc *WorkerClosedDays) List(ctx context.Context, workerID string) httpresp.Response[[]models.WorkerClosedDay] {
	days, err := uc.repo.ListWorkerClosedDays(ctx, workerID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "list_worker_closed_days").Msg("listing failed")
		return httpresp.Failure[[]models.WorkerClosedDay](httperr.CodePersistence, msgListFailed)
	}
	return httpresp.Success(msgListOK, days)
}

func (uc *WorkerClosedDays) Delete(ctx context.Context, actorID, id string) httpresp.Response[string] {
	return deleteByID(ctx, id, "delete_worker_closed_day", msgClosedDayNotFound, msgDeleteOK, msgDeleteFailed,
		uc.repo.DeleteWorkerClosedDay,
		func() {
			uc.audit.Dispatch(audit.Event{
				ActorID:  actorID,
				Action:   audit.ActionClosedDayDeleted,
				Entity:   "worker_closed_day",
				EntityID: id,
			})
		})
}

func checkWorker[T any](
	ctx context.Context,
	repo domain.Repository,
	workerID string,
	failMsg string,
) (httpresp.Response[T], bool) {

	if workerID == "" {
		return httpresp.Failure[T](httperr.CodeValidation, msgWorkerNotFound), false
	}
	exists, err := repo.WorkerExists(ctx, workerID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "worker_exists").Msg("worker lookup failed")
		return httpresp.Failure[T](httperr.CodePersistence, failMsg), false
	}
	if !exists {
		return httpresp.Failure[T](httperr.CodeNotFound, msgWorkerNotFound), false
	}
	return httpresp.Response[T]{}, true
}
