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

// UpdateAppointmentStatus is the admin status change.
type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	actorID string,
	appointmentID string,
	status string,
) httpresp.Response[models.Appointment] {

	next := domain.Status(status)
	if !next.Valid() {
		return httpresp.Failure[models.Appointment](httperr.CodeValidation, msgInvalidStatus)
	}

	ap, resp, ok := loadAppointment(ctx, uc.repo, appointmentID, "update_appointment_status", msgStatusFailed)
	if !ok {
		return resp
	}

	previous := ap.Status
	if err := domain.Transition(ap, next, uc.now().UTC()); err != nil {
		return httpresp.Failure[models.Appointment](httperr.CodeInvalidState, msgInvalidTransition)
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "update_appointment_status").Msg("update failed")
		return httpresp.Failure[models.Appointment](httperr.CodePersistence, msgStatusFailed)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   audit.ActionAppointmentStatusChanged,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"from": previous, "to": ap.Status},
	})

	return httpresp.Success(msgStatusOK, *ap)
}

// loadAppointment fetches an appointment, converting failures to envelopes.
func loadAppointment(
	ctx context.Context,
	repo domain.Repository,
	appointmentID string,
	op string,
	failMsg string,
) (*models.Appointment, httpresp.Response[models.Appointment], bool) {

	if appointmentID == "" {
		return nil, httpresp.Failure[models.Appointment](httperr.CodeValidation, msgAppointmentNotFound), false
	}

	ap, err := repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httpresp.Failure[models.Appointment](httperr.CodeNotFound, msgAppointmentNotFound), false
		}
		zerolog.Ctx(ctx).Error().Err(err).Str("op", op).Msg("appointment lookup failed")
		return nil, httpresp.Failure[models.Appointment](httperr.CodePersistence, failMsg), false
	}
	return ap, httpresp.Response[models.Appointment]{}, true
}
