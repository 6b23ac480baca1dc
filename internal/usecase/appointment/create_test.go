package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var bookingNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func newCreateUC(repo *fakeRepo) *CreateAppointment {
	settings := salonSettings()
	uc := NewCreateAppointment(repo, NewGetAvailability(repo, settings), settings, nil)
	uc.now = func() time.Time { return bookingNow }
	return uc
}

func bookingRepo() *fakeRepo {
	repo := newFakeRepo()
	cut := repo.addService("cut", 60)
	repo.addService("nails", 30)
	repo.addWorker("w1", cut)
	return repo
}

func TestCreateAppointmentFromLocalDateAndTime(t *testing.T) {
	repo := bookingRepo()

	resp := newCreateUC(repo).Execute(context.Background(), CreateAppointmentInput{
		WorkerID:  "w1",
		ServiceID: "cut",
		ClientID:  "client-9",
		Date:      "2030-06-14",
		Time:      "09:00",
	})

	require.True(t, resp.Success, resp.Message)
	ap := resp.Data
	assert.Equal(t, time.Date(2030, 6, 14, 14, 0, 0, 0, time.UTC), ap.StartTime)
	assert.Equal(t, time.UTC, ap.StartTime.Location())
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, "client-9", ap.ClientID)
	require.NotNil(t, ap.Service)
	assert.Equal(t, "cut", ap.Service.ID)
	assert.Len(t, repo.appointments, 1)
}

func TestCreateAppointmentFromRFC3339(t *testing.T) {
	repo := bookingRepo()

	resp := newCreateUC(repo).Execute(context.Background(), CreateAppointmentInput{
		WorkerID:  "w1",
		ServiceID: "cut",
		ClientID:  "client-9",
		StartAt:   "2030-06-14T15:30:00Z",
	})

	require.True(t, resp.Success, resp.Message)
	assert.Equal(t, time.Date(2030, 6, 14, 15, 30, 0, 0, time.UTC), resp.Data.StartTime)
}

func TestCreateAppointmentRejectsOccupiedSlot(t *testing.T) {
	repo := bookingRepo()
	repo.book("w1", "cut", time.Date(2030, 6, 14, 14, 0, 0, 0, time.UTC), domain.StatusConfirmed)

	// 09:30 local is the second half of the existing 60-minute booking.
	resp := newCreateUC(repo).Execute(context.Background(), CreateAppointmentInput{
		WorkerID: "w1", ServiceID: "cut", ClientID: "c", Date: "2030-06-14", Time: "09:30",
	})

	assert.False(t, resp.Success)
	assert.Equal(t, httperr.CodeSlotUnavailable, resp.Code)
	assert.Equal(t, msgSlotUnavailable, resp.Message)
}

func TestCreateAppointmentRejectsRunPastClosing(t *testing.T) {
	resp := newCreateUC(bookingRepo()).Execute(context.Background(), CreateAppointmentInput{
		WorkerID: "w1", ServiceID: "cut", ClientID: "c", Date: "2030-06-14", Time: "16:30",
	})

	assert.Equal(t, httperr.CodeSlotUnavailable, resp.Code)
}

func TestCreateAppointmentRejectsOffGridTime(t *testing.T) {
	resp := newCreateUC(bookingRepo()).Execute(context.Background(), CreateAppointmentInput{
		WorkerID: "w1", ServiceID: "cut", ClientID: "c", Date: "2030-06-14", Time: "09:10",
	})

	assert.Equal(t, httperr.CodeSlotUnavailable, resp.Code)
}

func TestCreateAppointmentOnClosedDayIsSlotUnavailable(t *testing.T) {
	repo := bookingRepo()
	repo.globalClosed = []models.GlobalClosedDay{{Date: utcDate(2030, 6, 14)}}

	resp := newCreateUC(repo).Execute(context.Background(), CreateAppointmentInput{
		WorkerID: "w1", ServiceID: "cut", ClientID: "c", Date: "2030-06-14", Time: "09:00",
	})

	assert.False(t, resp.Success)
	assert.Equal(t, httperr.CodeSlotUnavailable, resp.Code)
	assert.Equal(t, msgGloballyClosed, resp.Message)
	assert.Empty(t, repo.appointments)
}

func TestCreateAppointmentStorageConflict(t *testing.T) {
	repo := bookingRepo()
	repo.createErr = errDuplicate

	resp := newCreateUC(repo).Execute(context.Background(), CreateAppointmentInput{
		WorkerID: "w1", ServiceID: "cut", ClientID: "c", Date: "2030-06-14", Time: "09:00",
	})

	assert.Equal(t, httperr.CodeConstraintViolation, resp.Code)
	assert.Equal(t, msgSlotUnavailable, resp.Message)
}

func TestCreateAppointmentInputFailures(t *testing.T) {
	cases := []struct {
		name string
		in   CreateAppointmentInput
		code string
		msg  string
	}{
		{
			name: "missing client",
			in:   CreateAppointmentInput{WorkerID: "w1", ServiceID: "cut", Date: "2030-06-14", Time: "09:00"},
			code: httperr.CodeValidation,
			msg:  msgBookingInvalid,
		},
		{
			name: "bad time",
			in:   CreateAppointmentInput{WorkerID: "w1", ServiceID: "cut", ClientID: "c", Date: "2030-06-14", Time: "9am"},
			code: httperr.CodeValidation,
			msg:  msgBookingInvalid,
		},
		{
			name: "past",
			in:   CreateAppointmentInput{WorkerID: "w1", ServiceID: "cut", ClientID: "c", Date: "2030-05-20", Time: "09:00"},
			code: httperr.CodeValidation,
			msg:  msgBookingPast,
		},
		{
			name: "unknown service",
			in:   CreateAppointmentInput{WorkerID: "w1", ServiceID: "massage", ClientID: "c", Date: "2030-06-14", Time: "09:00"},
			code: httperr.CodeNotFound,
			msg:  msgServiceNotFound,
		},
		{
			name: "unknown worker",
			in:   CreateAppointmentInput{WorkerID: "w9", ServiceID: "cut", ClientID: "c", Date: "2030-06-14", Time: "09:00"},
			code: httperr.CodeNotFound,
			msg:  msgWorkerNotFound,
		},
		{
			name: "worker does not offer service",
			in:   CreateAppointmentInput{WorkerID: "w1", ServiceID: "nails", ClientID: "c", Date: "2030-06-14", Time: "09:00"},
			code: httperr.CodeValidation,
			msg:  msgWorkerNotQualified,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := bookingRepo()
			resp := newCreateUC(repo).Execute(context.Background(), tc.in)

			assert.False(t, resp.Success)
			assert.Equal(t, tc.code, resp.Code)
			assert.Equal(t, tc.msg, resp.Message)
			assert.Empty(t, repo.appointments)
		})
	}
}

func TestCreateAppointmentPersistenceFailure(t *testing.T) {
	repo := bookingRepo()
	repo.err = errDB

	resp := newCreateUC(repo).Execute(context.Background(), CreateAppointmentInput{
		WorkerID: "w1", ServiceID: "cut", ClientID: "c", Date: "2030-06-14", Time: "09:00",
	})

	assert.Equal(t, httperr.CodePersistence, resp.Code)
	assert.Equal(t, msgBookingFailed, resp.Message)
}
