package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// animFrameMsg advances a running snap animation
type animFrameMsg struct {
	gen uint64
}

// wheelIdleMsg fires when the wheel has been quiet for the idle period
type wheelIdleMsg struct {
	gen uint64
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct {
	gen uint64
}

func animFrame(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return animFrameMsg{gen: gen} })
}

func wheelIdle(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return wheelIdleMsg{gen: gen} })
}

func clearStatusAfter(gen uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{gen: gen} })
}
