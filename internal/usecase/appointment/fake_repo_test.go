package appointment

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var (
	errDB        = errors.New("connection reset")
	errDuplicate = &pgconn.PgError{Code: "23505"}
)

// fakeRepo is an in-memory domain.Repository. err, when set, fails every call.
type fakeRepo struct {
	globalClosed []models.GlobalClosedDay
	workerClosed []models.WorkerClosedDay
	specialDays  []models.SpecialDay
	workers      map[string]*models.Worker
	services     map[string]*models.Service
	appointments []models.Appointment

	err       error
	createErr error

	calls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		workers:  map[string]*models.Worker{},
		services: map[string]*models.Service{},
	}
}

func (r *fakeRepo) addService(id string, duration int) *models.Service {
	s := &models.Service{ID: id, Name: "svc-" + id, DurationMin: duration}
	r.services[id] = s
	return s
}

func (r *fakeRepo) addWorker(id string, services ...*models.Service) *models.Worker {
	w := &models.Worker{ID: id, Name: "worker-" + id, Active: true}
	for _, s := range services {
		w.Services = append(w.Services, *s)
	}
	r.workers[id] = w
	return w
}

func (r *fakeRepo) book(workerID, serviceID string, start time.Time, status domain.Status) {
	r.appointments = append(r.appointments, models.Appointment{
		ID:        "ap-" + start.Format(time.RFC3339),
		WorkerID:  workerID,
		ServiceID: serviceID,
		ClientID:  "client-1",
		StartTime: start,
		Status:    string(status),
	})
}

func (r *fakeRepo) FindGlobalClosedDay(_ context.Context, w domain.DateWindow) (*models.GlobalClosedDay, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.globalClosed {
		if w.Contains(r.globalClosed[i].Date) {
			d := r.globalClosed[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) FindWorkerClosedDay(_ context.Context, workerID string, w domain.DateWindow) (*models.WorkerClosedDay, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.workerClosed {
		if r.workerClosed[i].WorkerID == workerID && w.Contains(r.workerClosed[i].Date) {
			d := r.workerClosed[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) FindSpecialDay(_ context.Context, workerID string, w domain.DateWindow) (*models.SpecialDay, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.specialDays {
		if r.specialDays[i].WorkerID == workerID && w.Contains(r.specialDays[i].Date) {
			d := r.specialDays[i]
			return &d, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) ListGlobalClosedDays(context.Context) ([]models.GlobalClosedDay, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.globalClosed, nil
}

func (r *fakeRepo) ListWorkerClosedDays(_ context.Context, workerID string) ([]models.WorkerClosedDay, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []models.WorkerClosedDay
	for _, d := range r.workerClosed {
		if d.WorkerID == workerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetWorker(_ context.Context, id string) (*models.Worker, error) {
	if r.err != nil {
		return nil, r.err
	}
	w, ok := r.workers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return w, nil
}

func (r *fakeRepo) GetService(_ context.Context, id string) (*models.Service, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeRepo) withRelations(ap models.Appointment) models.Appointment {
	ap.Service = r.services[ap.ServiceID]
	ap.Worker = r.workers[ap.WorkerID]
	return ap
}

func (r *fakeRepo) ListAppointments(_ context.Context, workerID string, w domain.DateWindow) ([]models.Appointment, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.WorkerID == workerID && w.Contains(ap.StartTime) {
			out = append(out, r.withRelations(ap))
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.appointments {
		if existing.WorkerID == ap.WorkerID && existing.StartTime.Equal(ap.StartTime) {
			return gorm.ErrDuplicatedKey
		}
	}
	if ap.ID == "" {
		ap.ID = "ap-new"
	}
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, ap := range r.appointments {
		if ap.ID == id {
			out := r.withRelations(ap)
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			updated := *ap
			updated.Worker, updated.Service = nil, nil
			r.appointments[i] = updated
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListAppointmentsForClient(_ context.Context, clientID string) ([]models.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ClientID == clientID {
			out = append(out, r.withRelations(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, w *domain.DateWindow) ([]models.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Appointment
	for _, ap := range r.appointments {
		if w == nil || w.Contains(ap.StartTime) {
			out = append(out, r.withRelations(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
