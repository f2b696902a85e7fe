package ui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// animation moves the viewport from one offset to another over a fixed
// number of frames. gen invalidates frames of superseded animations.
type animation struct {
	active bool
	from   int
	to     int
	frame  int
	gen    uint64
}

// ScrollToOffset implements paginator.Scroller. Animated scrolls are played
// out by animFrameMsg ticks; a newer command replaces a running animation.
func (m *Model) ScrollToOffset(y float64, animated bool) {
	target := int(math.Round(y))
	m.anim.gen++

	frames := m.cfg.UI.AnimationFrames
	if !animated || frames <= 1 || m.cfg.UI.AnimationMS <= 0 || target == m.viewport.YOffset {
		m.anim.active = false
		m.viewport.SetYOffset(target)
		return
	}

	m.anim.active = true
	m.anim.from = m.viewport.YOffset
	m.anim.to = target
	m.anim.frame = 0
	m.pending = append(m.pending, animFrame(m.anim.gen, m.frameInterval()))
}

func (m *Model) frameInterval() time.Duration {
	return time.Duration(m.cfg.UI.AnimationMS) * time.Millisecond / time.Duration(m.cfg.UI.AnimationFrames)
}

func (m *Model) stepAnimation(gen uint64) tea.Cmd {
	if !m.anim.active || gen != m.anim.gen {
		return nil
	}

	frames := m.cfg.UI.AnimationFrames
	m.anim.frame++
	if m.anim.frame >= frames {
		m.anim.active = false
		m.viewport.SetYOffset(m.anim.to)
		return nil
	}

	t := easeOutCubic(float64(m.anim.frame) / float64(frames))
	y := float64(m.anim.from) + float64(m.anim.to-m.anim.from)*t
	m.viewport.SetYOffset(int(math.Round(y)))
	return animFrame(gen, m.frameInterval())
}

func (m *Model) stopAnimation() {
	m.anim.active = false
	m.anim.gen++
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}
