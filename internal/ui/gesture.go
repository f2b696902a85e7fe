package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vpager/internal/paginator"
)

// dragState tracks a left-button drag. rawY is the unclamped content
// offset under the pointer, which may run past either end of the content.
type dragState struct {
	active bool
	pressY int
	startY float64
	rawY   float64
}

// wheelState turns a burst of wheel events into one gesture that ends
// after the wheel has been idle for a while.
type wheelState struct {
	active bool
	rawY   float64
	gen    uint64
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		step := m.cfg.UI.WheelStep
		if msg.Button == tea.MouseButtonWheelUp {
			step = -step
		}
		return m.wheelScroll(step)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !m.insideViewport(msg.Y) {
			return nil
		}
		m.beginDrag(msg.Y)

	case msg.Action == tea.MouseActionMotion && m.drag.active:
		m.drag.rawY = m.drag.startY - float64(msg.Y-m.drag.pressY)
		m.viewport.SetYOffset(int(m.drag.rawY))
		m.pager.OnScroll(paginator.Offset{Y: m.drag.rawY})

	case msg.Action == tea.MouseActionRelease && m.drag.active:
		m.drag.rawY = m.drag.startY - float64(msg.Y-m.drag.pressY)
		m.drag.active = false
		m.endGesture(m.drag.rawY)
	}
	return nil
}

func (m *Model) insideViewport(y int) bool {
	return y >= headerHeight && y < headerHeight+m.pageHeight
}

func (m *Model) beginDrag(pointerY int) {
	m.stopAnimation()
	m.wheel.active = false

	start := float64(m.viewport.YOffset)
	m.drag = dragState{
		active: true,
		pressY: pointerY,
		startY: start,
		rawY:   start,
	}
	m.pager.OnDragBegin(paginator.Offset{Y: start})
}

func (m *Model) wheelScroll(step int) tea.Cmd {
	if m.drag.active {
		return nil
	}
	if !m.wheel.active {
		m.stopAnimation()
		m.wheel.active = true
		m.wheel.rawY = float64(m.viewport.YOffset)
		m.pager.OnDragBegin(paginator.Offset{Y: m.wheel.rawY})
	}

	m.wheel.rawY += float64(step)
	m.viewport.SetYOffset(int(m.wheel.rawY))
	m.pager.OnScroll(paginator.Offset{Y: m.wheel.rawY})

	m.wheel.gen++
	return wheelIdle(m.wheel.gen, time.Duration(m.cfg.UI.WheelIdleMS)*time.Millisecond)
}

func (m *Model) endWheelGesture(gen uint64) {
	if !m.wheel.active || gen != m.wheel.gen {
		return
	}
	m.wheel.active = false
	m.endGesture(m.wheel.rawY)
}

// endGesture hands the release offset to the paginator, which scrolls back
// through ScrollToOffset. A terminal has no native momentum phase, so the
// momentum end notification follows the release directly.
func (m *Model) endGesture(y float64) {
	end := paginator.Offset{Y: y}
	if _, err := m.pager.OnDragEnd(end); err != nil {
		log.Printf("Gesture ended without snap: %v", err)
	}
	m.pager.OnMomentumEnd(m.pager.CurrentOffset())
}

// cancelGestures abandons any drag or wheel burst in progress
func (m *Model) cancelGestures() {
	m.drag.active = false
	m.wheel.active = false
	m.wheel.gen++
}
