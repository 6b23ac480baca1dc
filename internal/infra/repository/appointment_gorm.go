package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// findOne returns the first matching row, or (nil, nil) when none does.
func findOne[T any](q *gorm.DB) (*T, error) {
	var out T
	res := q.Limit(1).Find(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &out, nil
}

// --------------------------------------------------
// Closures
// --------------------------------------------------

func (r *AppointmentGormRepository) FindGlobalClosedDay(
	ctx context.Context,
	window domain.DateWindow,
) (*models.GlobalClosedDay, error) {

	return findOne[models.GlobalClosedDay](r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", window.Start, window.End))
}

func (r *AppointmentGormRepository) FindWorkerClosedDay(
	ctx context.Context,
	workerID string,
	window domain.DateWindow,
) (*models.WorkerClosedDay, error) {

	return findOne[models.WorkerClosedDay](r.db.WithContext(ctx).
		Where("worker_id = ? AND date >= ? AND date < ?", workerID, window.Start, window.End))
}

func (r *AppointmentGormRepository) FindSpecialDay(
	ctx context.Context,
	workerID string,
	window domain.DateWindow,
) (*models.SpecialDay, error) {

	return findOne[models.SpecialDay](r.db.WithContext(ctx).
		Where("worker_id = ? AND date >= ? AND date < ?", workerID, window.Start, window.End))
}

func (r *AppointmentGormRepository) ListGlobalClosedDays(
	ctx context.Context,
) ([]models.GlobalClosedDay, error) {

	var days []models.GlobalClosedDay
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (r *AppointmentGormRepository) ListWorkerClosedDays(
	ctx context.Context,
	workerID string,
) ([]models.WorkerClosedDay, error) {

	var days []models.WorkerClosedDay
	if err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("date ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorker(
	ctx context.Context,
	workerID string,
) (*models.Worker, error) {

	var worker models.Worker
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("id = ?", workerID).
		First(&worker).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	serviceID string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", serviceID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	workerID string,
	window domain.DateWindow,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"worker_id = ? AND start_time >= ? AND start_time < ?",
			workerID, window.Start, window.End,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit("Worker", "Service").Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Service").
		Where("id = ?", appointmentID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit("Worker", "Service").Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	window *domain.DateWindow,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Service")

	if window != nil {
		q = q.Where("start_time >= ? AND start_time < ?", window.Start, window.End)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
