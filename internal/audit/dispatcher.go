package audit

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sink accepts audit events. Production uses the Dispatcher; tests
// substitute their own.
type Sink interface {
	Dispatch(ev Event)
}

type Event struct {
	UserID   *uuid.UUID
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher writes audit entries off the request path. The queue is
// bounded; when it fills, events are dropped rather than blocking the
// API.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
