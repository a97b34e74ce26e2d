package audit

import "github.com/ThriveAssessments/case-manager/internal/logging"

type Event struct {
	OrganizationID uint
	UserID         *uint
	Action         string
	Entity         string
	EntityID       *uint
	Metadata       any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.OrganizationID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logging.L().Warn("audit write failed: " + err.Error())
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// queued
	default:
		// full queue must never block the API; drop the event
		logging.L().Warn("audit queue full, dropping event")
	}
}
