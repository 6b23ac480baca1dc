package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

var cot = time.FixedZone("COT", -5*3600)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.Worker, models.Service) {
	t.Helper()

	service := models.Service{Name: "Corte", DurationMin: 60}
	require.NoError(t, db.Create(&service).Error)

	worker := models.Worker{Name: "Ana", Active: true, Services: []models.Service{service}}
	require.NoError(t, db.Create(&worker).Error)
	return worker, service
}

func TestFindersReturnNilOnMiss(t *testing.T) {
	repo := repository.NewAppointmentGormRepository(newTestDB(t))
	ctx := context.Background()

	window, err := domain.CalendarWindowUTC("2030-06-14")
	require.NoError(t, err)

	global, err := repo.FindGlobalClosedDay(ctx, window)
	assert.NoError(t, err)
	assert.Nil(t, global)

	worker, err := repo.FindWorkerClosedDay(ctx, "w1", window)
	assert.NoError(t, err)
	assert.Nil(t, worker)

	special, err := repo.FindSpecialDay(ctx, "w1", window)
	assert.NoError(t, err)
	assert.Nil(t, special)
}

func TestFindGlobalClosedDayMatchesWindow(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewAppointmentGormRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.GlobalClosedDay{
		Date: time.Date(2030, 6, 14, 0, 0, 0, 0, time.UTC),
	}).Error)

	inside, err := domain.CalendarWindowUTC("2030-06-14")
	require.NoError(t, err)
	found, err := repo.FindGlobalClosedDay(ctx, inside)
	require.NoError(t, err)
	require.NotNil(t, found)

	outside, err := domain.CalendarWindowUTC("2030-06-15")
	require.NoError(t, err)
	found, err = repo.FindGlobalClosedDay(ctx, outside)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSlotIndexRejectsSecondActiveBooking(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewAppointmentGormRepository(db)
	worker, service := seedCatalog(t, db)
	ctx := context.Background()

	start := time.Date(2030, 6, 14, 14, 0, 0, 0, time.UTC)
	first := &models.Appointment{WorkerID: worker.ID, ServiceID: service.ID, ClientID: "client-1", StartTime: start, Status: "PENDING"}
	require.NoError(t, repo.CreateAppointment(ctx, first))

	second := &models.Appointment{WorkerID: worker.ID, ServiceID: service.ID, ClientID: "client-2", StartTime: start, Status: "PENDING"}
	err := repo.CreateAppointment(ctx, second)
	require.Error(t, err)
	assert.True(t, httperr.IsConstraintViolation(err))
}

func TestSlotIndexIgnoresCancelledBookings(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewAppointmentGormRepository(db)
	worker, service := seedCatalog(t, db)
	ctx := context.Background()

	start := time.Date(2030, 6, 14, 14, 0, 0, 0, time.UTC)
	cancelled := &models.Appointment{WorkerID: worker.ID, ServiceID: service.ID, ClientID: "client-1", StartTime: start, Status: "CANCELLED"}
	require.NoError(t, repo.CreateAppointment(ctx, cancelled))

	fresh := &models.Appointment{WorkerID: worker.ID, ServiceID: service.ID, ClientID: "client-2", StartTime: start, Status: "PENDING"}
	assert.NoError(t, repo.CreateAppointment(ctx, fresh))
}

func TestRebookCancelledSlotWhenCancelledDoesNotOccupy(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewAppointmentGormRepository(db)
	worker, service := seedCatalog(t, db)
	ctx := context.Background()

	settings := domain.DefaultSettings()
	settings.Location = cot
	settings.Policy = domain.PolicyExcludeCancelled

	availability := ucAppointment.NewGetAvailability(repo, settings)
	create := ucAppointment.NewCreateAppointment(repo, availability, settings, nil)
	cancel := ucAppointment.NewCancelAppointment(repo, nil)

	in := ucAppointment.CreateAppointmentInput{
		WorkerID:  worker.ID,
		ServiceID: service.ID,
		ClientID:  "client-1",
		Date:      "2030-06-14",
		Time:      "09:00",
	}

	booked := create.Execute(ctx, in)
	require.True(t, booked.Success, booked.Message)

	cancelled := cancel.Execute(ctx, "client-1", booked.Data.ID)
	require.True(t, cancelled.Success, cancelled.Message)

	slots := availability.Execute(ctx, domain.AvailabilityInput{
		Date:        "2030-06-14",
		WorkerID:    worker.ID,
		DurationMin: service.DurationMin,
	})
	require.True(t, slots.Success, slots.Message)
	assert.Contains(t, slots.Data.AvailableTimes, "09:00")

	in.ClientID = "client-2"
	rebooked := create.Execute(ctx, in)
	require.True(t, rebooked.Success, rebooked.Message)
	assert.NotEqual(t, booked.Data.ID, rebooked.Data.ID)
	assert.Equal(t, string(domain.StatusPending), rebooked.Data.Status)
}

func TestWorkerWithAppointmentsCannotBeDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewAppointmentGormRepository(db)
	worker, service := seedCatalog(t, db)

	require.NoError(t, repo.CreateAppointment(context.Background(), &models.Appointment{
		WorkerID:  worker.ID,
		ServiceID: service.ID,
		ClientID:  "client-1",
		StartTime: time.Date(2030, 6, 14, 14, 0, 0, 0, time.UTC),
		Status:    "COMPLETED",
	}))

	require.NoError(t, db.Model(&worker).Association("Services").Clear())
	assert.Error(t, db.Delete(&worker).Error)

	var count int64
	require.NoError(t, db.Model(&models.Appointment{}).Where("worker_id = ?", worker.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
