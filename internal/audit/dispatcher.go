package audit

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const (
	ActionAppointmentCreated       = "appointment_created"
	ActionAppointmentStatusChanged = "appointment_status_changed"
	ActionAppointmentCancelled     = "appointment_cancelled"
	ActionClosedDayCreated         = "closed_day_created"
	ActionClosedDayDeleted         = "closed_day_deleted"
	ActionSpecialDaySaved          = "special_day_saved"
	ActionSpecialDayDeleted        = "special_day_deleted"
)

type Event struct {
	ActorID  string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Dispatcher struct {
	sink   Sink
	log    zerolog.Logger
	queue  chan Event
	done   chan struct{}
	closed bool
}

func NewDispatcher(sink Sink, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.sink.Log(ctx, ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
		cancel()
	}
}

// Dispatch never blocks the request; a full queue drops the event.
// A nil Dispatcher discards everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil || d.closed {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains the queue. Dispatch must not be called concurrently with Close.
func (d *Dispatcher) Close() {
	if d == nil || d.closed {
		return
	}
	d.closed = true
	close(d.queue)
	<-d.done
}
