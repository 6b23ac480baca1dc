package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestListAppointmentsByDateUsesLocalLabels(t *testing.T) {
	repo := bookingRepo()
	repo.book("w1", "cut", time.Date(2030, 6, 14, 14, 0, 0, 0, time.UTC), domain.StatusPending)
	repo.book("w1", "nails", time.Date(2030, 6, 15, 14, 0, 0, 0, time.UTC), domain.StatusPending)

	resp := NewListAppointments(repo, cot).Execute(context.Background(), "2030-06-14")

	require.True(t, resp.Success)
	items := *resp.Data
	require.Len(t, items, 1)
	assert.Equal(t, "2030-06-14", items[0].Date)
	assert.Equal(t, "09:00", items[0].Time)
	assert.Equal(t, 60, items[0].DurationMin)
	assert.Equal(t, "worker-w1", items[0].WorkerName)
	assert.Equal(t, "svc-cut", items[0].ServiceName)
}

func TestListAppointmentsWithoutDateListsAll(t *testing.T) {
	repo := bookingRepo()
	repo.book("w1", "cut", time.Date(2030, 6, 15, 14, 0, 0, 0, time.UTC), domain.StatusPending)
	repo.book("w1", "cut", time.Date(2030, 6, 14, 14, 0, 0, 0, time.UTC), domain.StatusPending)

	resp := NewListAppointments(repo, cot).Execute(context.Background(), "")

	require.True(t, resp.Success)
	require.Len(t, *resp.Data, 2)
	assert.Equal(t, "2030-06-14", (*resp.Data)[0].Date)

	resp = NewListAppointments(repo, cot).Execute(context.Background(), "June 14")
	assert.Equal(t, httperr.CodeValidation, resp.Code)
}

func TestListClientAppointmentsNewestFirst(t *testing.T) {
	repo := bookingRepo()
	repo.book("w1", "cut", time.Date(2030, 6, 14, 14, 0, 0, 0, time.UTC), domain.StatusPending)
	repo.book("w1", "cut", time.Date(2030, 7, 1, 14, 0, 0, 0, time.UTC), domain.StatusCancelled)

	resp := NewListClientAppointments(repo, cot).Execute(context.Background(), "client-1")

	require.True(t, resp.Success)
	require.Len(t, *resp.Data, 2)
	assert.Equal(t, "2030-07-01", (*resp.Data)[0].Date)

	empty := NewListClientAppointments(repo, cot).Execute(context.Background(), "someone-else")
	require.True(t, empty.Success)
	assert.Empty(t, *empty.Data)

	repo.err = errDB
	failed := NewListClientAppointments(repo, cot).Execute(context.Background(), "client-1")
	assert.Equal(t, httperr.CodePersistence, failed.Code)
}
