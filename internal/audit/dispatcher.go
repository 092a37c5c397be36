package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

const (
	ActionUserRegistered       = "user_registered"
	ActionVisitorCreated       = "visitor_created"
	ActionTaskCreated          = "task_created"
	ActionAvailabilityReplaced = "availability_replaced"
	ActionAppointmentCreated   = "appointment_created"
)

type Event struct {
	UserID   string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher writes audit events off the request path. When the queue is
// full events are dropped; auditing never fails a request.
type Dispatcher struct {
	logger *Logger
	log    zerolog.Logger
	queue  chan Event

	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		if err := d.logger.Log(context.Background(), ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains the queue and stops the worker. Dispatch must not be called
// afterwards.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}
