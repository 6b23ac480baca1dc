package closure

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Repository manages the closure calendar. Create calls surface unique-key
// violations unchanged so callers can recognize them.
type Repository interface {
	// -------- Global --------
	CreateGlobalClosedDay(ctx context.Context, d *models.GlobalClosedDay) error
	ListGlobalClosedDays(ctx context.Context) ([]models.GlobalClosedDay, error)
	DeleteGlobalClosedDay(ctx context.Context, id string) (bool, error)

	// -------- Worker --------
	WorkerExists(ctx context.Context, workerID string) (bool, error)
	CreateWorkerClosedDay(ctx context.Context, d *models.WorkerClosedDay) error
	ListWorkerClosedDays(ctx context.Context, workerID string) ([]models.WorkerClosedDay, error)
	DeleteWorkerClosedDay(ctx context.Context, id string) (bool, error)

	// -------- Special days --------
	UpsertSpecialDay(ctx context.Context, d *models.SpecialDay) error
	ListSpecialDays(ctx context.Context, workerID string) ([]models.SpecialDay, error)
	DeleteSpecialDay(ctx context.Context, id string) (bool, error)
}
