package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDragBegan     EventType = "DragBegan"
	EventDragEnded     EventType = "DragEnded"
	EventMomentumEnded EventType = "MomentumEnded"
	EventPageSnapped   EventType = "PageSnapped"
	EventLayoutChanged EventType = "LayoutChanged"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventConfigChanged EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DragBeganEvent is emitted when the user starts dragging the page surface
type DragBeganEvent struct {
	GestureID string
	Y         float64
}

func (e DragBeganEvent) Type() EventType { return EventDragBegan }

// DragEndedEvent is emitted when the user releases a drag
type DragEndedEvent struct {
	GestureID string
	Y         float64
}

func (e DragEndedEvent) Type() EventType { return EventDragEnded }

// MomentumEndedEvent mirrors the host's terminal momentum notification.
// The paginator never scrolls in response to it.
type MomentumEndedEvent struct {
	Y float64
}

func (e MomentumEndedEvent) Type() EventType { return EventMomentumEnded }

// PageSnappedEvent is emitted after the paginator issued a snap scroll
type PageSnappedEvent struct {
	GestureID  string
	Direction  string
	FromPage   int
	ToPage     int
	TargetY    float64
	PageHeight float64
}

func (e PageSnappedEvent) Type() EventType { return EventPageSnapped }

// LayoutChangedEvent is emitted when the page height changes
type LayoutChangedEvent struct {
	Width  int
	Height int
}

func (e LayoutChangedEvent) Type() EventType { return EventLayoutChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path          string
	SnapThreshold float64
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved. Seq
// increases with every change so late deliveries can be recognised.
type ConfigChangedEvent struct {
	Seq           uint64
	SnapThreshold float64
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
