package events

import (
	"context"
	"sync"

	"cvgen_backend/internal/logger"
	"cvgen_backend/internal/models"
)

// CVGenerated is emitted after a successful generation. Consumers get
// the user and the produced artifact; whatever they do with it never
// affects the generation call that published it.
type CVGenerated struct {
	User     *models.User
	Locale   string
	Filename string
	PDF      []byte
}

// Handler consumes one event. Errors are logged, never propagated.
type Handler func(event CVGenerated) error

// Dispatcher fans events out to subscribers on a single background
// goroutine. Publishing never blocks the request path: when the buffer
// is full the event is dropped with a warning.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []Handler
	events   chan CVGenerated
}

func NewDispatcher(buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 16
	}
	return &Dispatcher{
		events: make(chan CVGenerated, buffer),
	}
}

// Subscribe registers a handler. Call before Run.
func (d *Dispatcher) Subscribe(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// Publish hands an event to the dispatcher without blocking.
func (d *Dispatcher) Publish(event CVGenerated) {
	select {
	case d.events <- event:
	default:
		logger.Warn("event buffer full, dropping cv.generated event",
			"user_id", event.User.ID)
	}
}

// Run consumes events until ctx is cancelled. Start with `go d.Run(ctx)`.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			logger.Info("event dispatcher stopped")
			return
		case event := <-d.events:
			d.mu.RLock()
			handlers := d.handlers
			d.mu.RUnlock()

			for _, h := range handlers {
				if err := h(event); err != nil {
					// Delivery failures never reach the request that
					// published the event.
					logger.WithError(err).Error("cv.generated handler failed",
						"user_id", event.User.ID)
				}
			}
		}
	}
}
