package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// CancelAppointment lets a client cancel one of their own appointments.
type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	clientID string,
	appointmentID string,
) httpresp.Response[models.Appointment] {

	ap, resp, ok := loadAppointment(ctx, uc.repo, appointmentID, "cancel_appointment", msgCancelFailed)
	if !ok {
		return resp
	}

	// Someone else's appointment is reported as missing.
	if ap.ClientID != clientID {
		return httpresp.Failure[models.Appointment](httperr.CodeNotFound, msgAppointmentNotFound)
	}

	if err := domain.Cancel(ap, uc.now().UTC()); err != nil {
		return httpresp.Failure[models.Appointment](httperr.CodeInvalidState, msgInvalidTransition)
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "cancel_appointment").Msg("update failed")
		return httpresp.Failure[models.Appointment](httperr.CodePersistence, msgCancelFailed)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  clientID,
		Action:   audit.ActionAppointmentCancelled,
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return httpresp.Success(msgCancelOK, *ap)
}
