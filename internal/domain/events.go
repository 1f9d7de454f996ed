package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCellAdded        EventType = "CellAdded"
	EventCellRemoved      EventType = "CellRemoved"
	EventCellsCleared     EventType = "CellsCleared"
	EventCellMoved        EventType = "CellMoved"
	EventInputSubmitted   EventType = "InputSubmitted"
	EventExecutionStarted EventType = "ExecutionStarted"
	EventCellExecuted     EventType = "CellExecuted"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CellAddedEvent is emitted when a cell is inserted into the document
type CellAddedEvent struct {
	Cell  Cell
	Index int
}

func (e CellAddedEvent) Type() EventType { return EventCellAdded }

// CellRemovedEvent is emitted when a cell is deleted from the document
type CellRemovedEvent struct {
	ID CellID
}

func (e CellRemovedEvent) Type() EventType { return EventCellRemoved }

// CellsClearedEvent is emitted when every cell is removed at once
type CellsClearedEvent struct {
	Count int
}

func (e CellsClearedEvent) Type() EventType { return EventCellsCleared }

// CellMovedEvent is emitted when a cell changes position in the document
type CellMovedEvent struct {
	ID   CellID
	From int
	To   int
}

func (e CellMovedEvent) Type() EventType { return EventCellMoved }

// InputSubmittedEvent is emitted when a cell's contents are handed to the execution sink
type InputSubmittedEvent struct {
	CellID  CellID
	Source  string
	Count   int
	Created bool // true when the submission created a new cell from the edit cell
}

func (e InputSubmittedEvent) Type() EventType { return EventInputSubmitted }

// ExecutionStartedEvent is emitted when the kernel picks up a submission
type ExecutionStartedEvent struct {
	CellID CellID
}

func (e ExecutionStartedEvent) Type() EventType { return EventExecutionStarted }

// CellExecutedEvent is emitted when execution of a cell finishes
type CellExecutedEvent struct {
	CellID   CellID
	Outputs  []Output
	Failed   bool
	Duration time.Duration
}

func (e CellExecutedEvent) Type() EventType { return EventCellExecuted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is written to disk
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted once the UI has finished its first layout
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
