package paginator

import (
	"errors"
	"fmt"
	"time"
)

// DefaultSnapThreshold is the fraction of the page height a drag has to
// travel past a page boundary before the paginator commits to the next page.
const DefaultSnapThreshold = 0.1

var (
	// ErrNotReady is returned when no usable layout is known yet.
	ErrNotReady = errors.New("paginator: layout not ready")
	// ErrNoGesture is returned when a drag ends without a recorded drag begin.
	ErrNoGesture = errors.New("paginator: no gesture in progress")
	// ErrInvalidThreshold is returned for thresholds outside (0, 1).
	ErrInvalidThreshold = errors.New("paginator: snap threshold must be between 0 and 1")
	// ErrInvalidPageCount is returned for negative page counts.
	ErrInvalidPageCount = errors.New("paginator: page count must not be negative")
	// ErrNilScroller is returned when no scroll target is supplied.
	ErrNilScroller = errors.New("paginator: scroller is required")
)

// Offset is an absolute scroll position. Only Y is used for paging.
type Offset struct {
	X float64
	Y float64
}

// Layout is the usable vertical extent of the paging surface.
type Layout struct {
	Height float64
}

// Ready reports whether the layout can be used to resolve pages.
func (l Layout) Ready() bool {
	return l.Height > 0
}

// Sample is the offset captured when a drag begins.
type Sample struct {
	ID      string
	Start   Offset
	BeganAt time.Time
}

// Valid reports whether the sample was recorded by a drag begin.
func (s Sample) Valid() bool {
	return s.ID != ""
}

// Direction is the outcome of a snap decision
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionRollback Direction = "rollback"
)

// OffsetSource selects which offset ends a gesture.
type OffsetSource string

const (
	// OffsetFromEvent uses the offset carried by the drag end event.
	OffsetFromEvent OffsetSource = "event"
	// OffsetFromTracked uses the freshest offset seen on the scroll feed.
	OffsetFromTracked OffsetSource = "tracked"
)

// ParseOffsetSource converts a config value into an OffsetSource.
// An empty string selects OffsetFromEvent.
func ParseOffsetSource(s string) (OffsetSource, error) {
	switch OffsetSource(s) {
	case "", OffsetFromEvent:
		return OffsetFromEvent, nil
	case OffsetFromTracked:
		return OffsetFromTracked, nil
	default:
		return "", fmt.Errorf("paginator: unknown offset source %q", s)
	}
}

// Decision describes where a finished gesture settles.
type Decision struct {
	GestureID  string
	StartY     float64
	EndY       float64
	Height     float64
	Page       int // nearest page to EndY, never negative
	Direction  Direction
	TargetPage int
	TargetY    float64
	Bounded    bool // the page count bound moved the target
}

// Scroller is the host viewport the paginator drives.
type Scroller interface {
	ScrollToOffset(y float64, animated bool)
}

// ScrollerFunc adapts a function to the Scroller interface.
type ScrollerFunc func(y float64, animated bool)

// ScrollToOffset calls f(y, animated).
func (f ScrollerFunc) ScrollToOffset(y float64, animated bool) {
	f(y, animated)
}

// Hooks re-expose gesture events to the embedding application.
// Every hook is optional and runs synchronously.
type Hooks struct {
	DragBegin   func(Sample)
	DragEnd     func(s Sample, end Offset)
	MomentumEnd func(Offset)
	Snap        func(Decision)
}

// Config configures a Paginator.
type Config struct {
	// SnapThreshold is θ in (0, 1). Zero selects DefaultSnapThreshold.
	SnapThreshold float64
	// OffsetSource picks the gesture end offset. Empty means OffsetFromEvent.
	OffsetSource OffsetSource
	// PageCount bounds the target page to PageCount-1. Zero leaves it unbounded.
	PageCount int
	Hooks     Hooks
}

// State is everything a Paginator remembers between events.
type State struct {
	Layout       Layout
	Sample       Sample
	Current      Offset
	Tracked      bool // Current came from the scroll feed since the last drag begin
	LastDecision Decision
	Snaps        int
}
