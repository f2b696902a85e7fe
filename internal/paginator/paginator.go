package paginator

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
)

// Paginator turns drag gestures on a vertical scroll surface into snaps to
// whole pages. It is driven by a single event loop and is not safe for
// concurrent use.
type Paginator struct {
	cfg      Config
	scroller Scroller
	state    *State
	now      func() time.Time
}

// New creates a paginator that issues its scroll commands to scroller.
func New(scroller Scroller, cfg Config) (*Paginator, error) {
	if scroller == nil {
		return nil, ErrNilScroller
	}
	if cfg.SnapThreshold == 0 {
		cfg.SnapThreshold = DefaultSnapThreshold
	}
	if err := validateThreshold(cfg.SnapThreshold); err != nil {
		return nil, err
	}
	if cfg.PageCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageCount, cfg.PageCount)
	}
	source, err := ParseOffsetSource(string(cfg.OffsetSource))
	if err != nil {
		return nil, err
	}
	cfg.OffsetSource = source

	return &Paginator{
		cfg:      cfg,
		scroller: scroller,
		state:    &State{},
		now:      time.Now,
	}, nil
}

func validateThreshold(t float64) error {
	if math.IsNaN(t) || t <= 0 || t >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, t)
	}
	return nil
}

// OnLayout records the current page height. Negative heights are stored as
// zero, which keeps the paginator in its not-ready state.
func (p *Paginator) OnLayout(layout Layout) {
	if layout.Height < 0 || math.IsNaN(layout.Height) {
		layout.Height = 0
	}
	p.state.Layout = layout
}

// OnDragBegin records the start of a gesture, replacing any earlier one.
func (p *Paginator) OnDragBegin(offset Offset) Sample {
	s := Sample{
		ID:      uuid.NewString(),
		Start:   offset,
		BeganAt: p.now(),
	}
	p.state.Sample = s
	p.state.Current = offset
	p.state.Tracked = false

	if p.cfg.Hooks.DragBegin != nil {
		p.cfg.Hooks.DragBegin(s)
	}
	return s
}

// OnScroll tracks the latest offset reported by the host.
func (p *Paginator) OnScroll(offset Offset) {
	p.state.Current = offset
	p.state.Tracked = true
}

// OnDragEnd resolves the gesture and issues a single animated scroll to the
// chosen page. When the layout is unknown or no drag was recorded, nothing
// is scrolled and ErrNotReady or ErrNoGesture is returned.
func (p *Paginator) OnDragEnd(offset Offset) (Decision, error) {
	sample := p.state.Sample
	end := offset
	if p.cfg.OffsetSource == OffsetFromTracked && p.state.Tracked {
		end = p.state.Current
	}

	d, err := p.resolve(sample, end)
	if err == nil {
		log.Printf("Paginator: %s height=%v startY=%v endY=%v page=%d target=%v",
			d.Direction, d.Height, d.StartY, d.EndY, d.Page, d.TargetY)
		p.ScrollTo(d.TargetY, true)
		p.state.LastDecision = d
		p.state.Snaps++
	} else {
		p.state.Current = end
		log.Printf("Paginator: drag end ignored: %v", err)
	}

	if p.cfg.Hooks.DragEnd != nil {
		p.cfg.Hooks.DragEnd(sample, offset)
	}
	if err != nil {
		return Decision{}, err
	}
	if p.cfg.Hooks.Snap != nil {
		p.cfg.Hooks.Snap(d)
	}
	return d, nil
}

func (p *Paginator) resolve(sample Sample, end Offset) (Decision, error) {
	if !sample.Valid() {
		return Decision{}, ErrNoGesture
	}
	if !p.state.Layout.Ready() {
		return Decision{}, ErrNotReady
	}
	d, err := Resolve(sample.Start.Y, end.Y, p.state.Layout.Height, p.cfg.SnapThreshold)
	if err != nil {
		return Decision{}, err
	}
	d.GestureID = sample.ID
	return d.Bound(p.cfg.PageCount), nil
}

// OnMomentumEnd re-exposes the host's momentum end notification. The snap
// issued on drag end already settles the surface, so nothing is scrolled.
func (p *Paginator) OnMomentumEnd(offset Offset) {
	if p.cfg.Hooks.MomentumEnd != nil {
		p.cfg.Hooks.MomentumEnd(offset)
	}
}

// ScrollTo forwards a scroll command to the host and remembers the offset.
func (p *Paginator) ScrollTo(y float64, animated bool) {
	p.scroller.ScrollToOffset(y, animated)
	p.state.Current = Offset{X: 0, Y: y}
	p.state.Tracked = false
}

// JumpToPage positions the surface on page, clamped to the known pages.
// It returns the offset scrolled to.
func (p *Paginator) JumpToPage(page int, animated bool) (float64, error) {
	if !p.state.Layout.Ready() {
		return 0, ErrNotReady
	}
	page = p.clampPage(page)
	y := float64(page) * p.state.Layout.Height
	p.ScrollTo(y, animated)
	return y, nil
}

func (p *Paginator) clampPage(page int) int {
	if p.cfg.PageCount > 0 && page > p.cfg.PageCount-1 {
		page = p.cfg.PageCount - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}

// SetSnapThreshold changes θ for subsequent gestures.
func (p *Paginator) SetSnapThreshold(t float64) error {
	if err := validateThreshold(t); err != nil {
		return err
	}
	p.cfg.SnapThreshold = t
	return nil
}

// SetPageCount changes the page bound. Zero removes it.
func (p *Paginator) SetPageCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPageCount, n)
	}
	p.cfg.PageCount = n
	return nil
}

// Layout returns the last recorded layout.
func (p *Paginator) Layout() Layout {
	return p.state.Layout
}

// CurrentOffset returns the freshest known offset.
func (p *Paginator) CurrentOffset() Offset {
	return p.state.Current
}

// CurrentPage returns the page nearest to the current offset.
func (p *Paginator) CurrentPage() int {
	if !p.state.Layout.Ready() {
		return 0
	}
	return p.clampPage(int(math.Round(p.state.Current.Y / p.state.Layout.Height)))
}

// LastDecision returns the most recent snap and whether there was one.
func (p *Paginator) LastDecision() (Decision, bool) {
	return p.state.LastDecision, p.state.Snaps > 0
}

// SnapThreshold returns θ.
func (p *Paginator) SnapThreshold() float64 {
	return p.cfg.SnapThreshold
}

// PageCount returns the page bound, zero when unbounded.
func (p *Paginator) PageCount() int {
	return p.cfg.PageCount
}

// OffsetSource returns the configured gesture end strategy.
func (p *Paginator) OffsetSource() OffsetSource {
	return p.cfg.OffsetSource
}
