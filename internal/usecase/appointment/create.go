package appointment

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// CreateAppointmentInput takes either StartAt (RFC3339) or Date + Time in
// the salon's timezone.
type CreateAppointmentInput struct {
	WorkerID  string
	ServiceID string
	ClientID  string

	StartAt string
	Date    string
	Time    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo         domain.Repository
	availability *GetAvailability
	settings     domain.Settings
	audit        *audit.Dispatcher
	now          func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	availability *GetAvailability,
	settings domain.Settings,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:         repo,
		availability: availability,
		settings:     settings,
		audit:        audit,
		now:          time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) httpresp.Response[models.Appointment] {

	log := zerolog.Ctx(ctx)
	fail := httpresp.Failure[models.Appointment]

	// --------------------------------------------------
	// 1. Input
	// --------------------------------------------------
	if in.WorkerID == "" || in.ServiceID == "" || strings.TrimSpace(in.ClientID) == "" {
		return fail(httperr.CodeValidation, msgBookingInvalid)
	}

	start, err := uc.parseStart(in)
	if err != nil {
		return fail(httperr.CodeValidation, msgBookingInvalid)
	}
	if start.Before(uc.now()) {
		return fail(httperr.CodeValidation, msgBookingPast)
	}

	// --------------------------------------------------
	// 2. Catalog
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return fail(httperr.CodeNotFound, msgServiceNotFound)
		}
		log.Error().Err(err).Str("op", "create_appointment").Msg("service lookup failed")
		return fail(httperr.CodePersistence, msgBookingFailed)
	}

	worker, err := uc.repo.GetWorker(ctx, in.WorkerID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return fail(httperr.CodeNotFound, msgWorkerNotFound)
		}
		log.Error().Err(err).Str("op", "create_appointment").Msg("worker lookup failed")
		return fail(httperr.CodePersistence, msgBookingFailed)
	}

	if !slices.ContainsFunc(worker.Services, func(s models.Service) bool { return s.ID == service.ID }) {
		return fail(httperr.CodeValidation, msgWorkerNotQualified)
	}

	// --------------------------------------------------
	// 3. Availability on the start's local calendar date
	// --------------------------------------------------
	date := domain.LocalDate(start, uc.settings.Location)
	label := domain.LocalTimeLabel(start, uc.settings.Location)

	avail := uc.availability.Execute(ctx, domain.AvailabilityInput{
		Date:        date,
		WorkerID:    worker.ID,
		DurationMin: service.DurationMin,
	})
	if !avail.Success {
		switch avail.Code {
		case httperr.CodePersistence:
			return fail(httperr.CodePersistence, msgBookingFailed)
		case httperr.CodeClosedDay:
			return fail(httperr.CodeSlotUnavailable, avail.Message)
		}
		return fail(avail.Code, avail.Message)
	}
	if !slices.Contains(avail.Data.AvailableTimes, label) {
		return fail(httperr.CodeSlotUnavailable, msgSlotUnavailable)
	}

	// --------------------------------------------------
	// 4. Create (status centralized in the domain)
	// --------------------------------------------------
	ap := &models.Appointment{
		WorkerID:  worker.ID,
		ServiceID: service.ID,
		ClientID:  in.ClientID,
		StartTime: start.UTC(),
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsConstraintViolation(err) {
			log.Warn().Str("worker_id", worker.ID).Time("start", start).Msg("double booking rejected by storage")
			return fail(httperr.CodeConstraintViolation, msgSlotUnavailable)
		}
		log.Error().Err(err).Str("op", "create_appointment").Msg("insert failed")
		return fail(httperr.CodePersistence, msgBookingFailed)
	}
	ap.Worker = worker
	ap.Service = service

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ClientID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"worker_id": worker.ID, "date": date, "time": label},
	})

	return httpresp.Success(msgBookingOK, *ap)
}

func (uc *CreateAppointment) parseStart(in CreateAppointmentInput) (time.Time, error) {
	if in.StartAt != "" {
		return time.Parse(time.RFC3339, in.StartAt)
	}
	return time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.settings.Location,
	)
}
