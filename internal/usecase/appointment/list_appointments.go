package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ListAppointments is the admin listing, optionally narrowed to one date.
type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(repo domain.Repository, loc *time.Location) *ListAppointments {
	return &ListAppointments{repo: repo, loc: loc}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	date string,
) httpresp.Response[[]dto.AppointmentListDTO] {

	var window *domain.DateWindow
	if date != "" {
		w, err := domain.CalendarWindowUTC(date)
		if err != nil {
			return httpresp.Failure[[]dto.AppointmentListDTO](httperr.CodeValidation, msgDateInvalid)
		}
		window = &w
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, window)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "list_appointments").Msg("listing failed")
		return httpresp.Failure[[]dto.AppointmentListDTO](httperr.CodePersistence, msgListFailed)
	}

	return httpresp.Success(msgListOK, toListDTO(appointments, uc.loc))
}

// ListClientAppointments returns a client's own appointments.
type ListClientAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListClientAppointments(repo domain.Repository, loc *time.Location) *ListClientAppointments {
	return &ListClientAppointments{repo: repo, loc: loc}
}

func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	clientID string,
) httpresp.Response[[]dto.AppointmentListDTO] {

	if clientID == "" {
		return httpresp.Failure[[]dto.AppointmentListDTO](httperr.CodeValidation, msgBookingInvalid)
	}

	appointments, err := uc.repo.ListAppointmentsForClient(ctx, clientID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("op", "list_client_appointments").Msg("listing failed")
		return httpresp.Failure[[]dto.AppointmentListDTO](httperr.CodePersistence, msgListFailed)
	}

	return httpresp.Success(msgListOK, toListDTO(appointments, uc.loc))
}

func toListDTO(appointments []models.Appointment, loc *time.Location) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			Date:        domain.LocalDate(ap.StartTime, loc),
			Time:        domain.LocalTimeLabel(ap.StartTime, loc),
			DurationMin: domain.ServiceDuration(ap),
			Status:      ap.Status,
			ClientID:    ap.ClientID,
			WorkerID:    ap.WorkerID,
		}
		if ap.Worker != nil {
			item.WorkerName = ap.Worker.Name
		}
		if ap.Service != nil {
			item.ServiceName = ap.Service.Name
		}
		out = append(out, item)
	}
	return out
}
