package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Repository is the persistence collaborator of the booking core.
// The Find* lookups return (nil, nil) when no record matches.
type Repository interface {
	// -------- Closures --------
	FindGlobalClosedDay(
		ctx context.Context,
		window DateWindow,
	) (*models.GlobalClosedDay, error)

	FindWorkerClosedDay(
		ctx context.Context,
		workerID string,
		window DateWindow,
	) (*models.WorkerClosedDay, error)

	FindSpecialDay(
		ctx context.Context,
		workerID string,
		window DateWindow,
	) (*models.SpecialDay, error)

	ListGlobalClosedDays(
		ctx context.Context,
	) ([]models.GlobalClosedDay, error)

	ListWorkerClosedDays(
		ctx context.Context,
		workerID string,
	) ([]models.WorkerClosedDay, error)

	// -------- Catalog --------
	GetWorker(
		ctx context.Context,
		workerID string,
	) (*models.Worker, error)

	GetService(
		ctx context.Context,
		serviceID string,
	) (*models.Service, error)

	// -------- Appointment --------
	ListAppointments(
		ctx context.Context,
		workerID string,
		window DateWindow,
	) ([]models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		appointmentID string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsForClient(
		ctx context.Context,
		clientID string,
	) ([]models.Appointment, error)

	// A nil window lists every appointment.
	ListAppointmentsForPeriod(
		ctx context.Context,
		window *DateWindow,
	) ([]models.Appointment, error)
}
