package eventbus

import (
	"runtime/debug"
	"sync"

	"nbnav/internal/domain"
	"nbnav/internal/logging"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCellAdded        = domain.EventCellAdded
	EventCellRemoved      = domain.EventCellRemoved
	EventCellsCleared     = domain.EventCellsCleared
	EventCellMoved        = domain.EventCellMoved
	EventInputSubmitted   = domain.EventInputSubmitted
	EventExecutionStarted = domain.EventExecutionStarted
	EventCellExecuted     = domain.EventCellExecuted
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
	EventAppReady         = domain.EventAppReady
)

// Re-export domain event types
type CellAddedEvent = domain.CellAddedEvent
type CellRemovedEvent = domain.CellRemovedEvent
type CellsClearedEvent = domain.CellsClearedEvent
type CellMovedEvent = domain.CellMovedEvent
type InputSubmittedEvent = domain.InputSubmittedEvent
type ExecutionStartedEvent = domain.ExecutionStartedEvent
type CellExecutedEvent = domain.CellExecutedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	log       logging.Logger
}

// New creates a new event bus
func New(log logging.Logger) EventBus {
	if log == nil {
		log = logging.Nop()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
		log:       log.With(logging.F("component", "eventbus")),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.log.Debug("publishing event", logging.F("type", event.Type()))

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		b.log.Warn("event bus channel full, dropping event", logging.F("type", event.Type()))
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher; pending events are discarded
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			// Make a copy to avoid holding lock during handler execution
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				// Call handler in a goroutine to avoid blocking
				go func(h EventHandler, ev DomainEvent) {
					defer func() {
						if r := recover(); r != nil {
							b.log.Error("event handler panic",
								logging.F("type", ev.Type()),
								logging.F("panic", r),
								logging.F("stack", string(debug.Stack())))
						}
					}()
					h(ev)
				}(s.handler, event)
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
