package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/closure"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ClosureGormRepository struct {
	*AppointmentGormRepository
}

func NewClosureGormRepository(db *gorm.DB) *ClosureGormRepository {
	return &ClosureGormRepository{AppointmentGormRepository: NewAppointmentGormRepository(db)}
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id string) (bool, error) {
	var model T
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Global
// --------------------------------------------------

func (r *ClosureGormRepository) CreateGlobalClosedDay(ctx context.Context, d *models.GlobalClosedDay) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *ClosureGormRepository) DeleteGlobalClosedDay(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.GlobalClosedDay](ctx, r.db, id)
}

// --------------------------------------------------
// Worker
// --------------------------------------------------

func (r *ClosureGormRepository) WorkerExists(ctx context.Context, workerID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Worker{}).
		Where("id = ?", workerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ClosureGormRepository) CreateWorkerClosedDay(ctx context.Context, d *models.WorkerClosedDay) error {
	return r.db.WithContext(ctx).Omit("Worker").Create(d).Error
}

func (r *ClosureGormRepository) DeleteWorkerClosedDay(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.WorkerClosedDay](ctx, r.db, id)
}

// --------------------------------------------------
// Special days
// --------------------------------------------------

func (r *ClosureGormRepository) UpsertSpecialDay(ctx context.Context, d *models.SpecialDay) error {
	return r.db.WithContext(ctx).
		Omit("Worker").
		Clauses(clause.Returning{}, clause.OnConflict{
			Columns:   []clause.Column{{Name: "worker_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"open_time", "close_time", "updated_at"}),
		}).
		Create(d).Error
}

func (r *ClosureGormRepository) ListSpecialDays(ctx context.Context, workerID string) ([]models.SpecialDay, error) {
	var days []models.SpecialDay
	if err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("date ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (r *ClosureGormRepository) DeleteSpecialDay(ctx context.Context, id string) (bool, error) {
	return deleteByID[models.SpecialDay](ctx, r.db, id)
}

// Compile-time check
var _ domain.Repository = (*ClosureGormRepository)(nil)
