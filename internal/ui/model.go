package ui

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"vpager/internal/config"
	"vpager/internal/eventbus"
	"vpager/internal/pages"
	"vpager/internal/paginator"
	"vpager/internal/ui/views"
)

const (
	headerHeight   = 1
	footerHeight   = 1
	statusDuration = 3 * time.Second
	thresholdStep  = 0.05
)

// Model is the Bubble Tea model hosting the paging surface. It owns the
// viewport and is the Scroller the paginator drives.
type Model struct {
	bus   eventbus.EventBus
	cfg   *config.Config
	deck  *pages.Deck
	pager *paginator.Paginator

	width      int
	height     int
	pageHeight int

	viewport viewport.Model
	prompt   textinput.Model
	help     help.Model
	keys     keyMap
	renderer *views.Renderer

	prompting     bool
	drag          dragState
	wheel         wheelState
	anim          animation
	pending       []tea.Cmd
	statusMessage string
	statusIsError bool
	statusGen     uint64
	lastSnap      string
	changeSeq     uint64
}

// NewModel creates the UI model and its paginator. bus may be nil.
func NewModel(cfg *config.Config, deck *pages.Deck, bus eventbus.EventBus) (*Model, error) {
	prompt := textinput.New()
	prompt.Prompt = "go to: "
	prompt.Placeholder = "page number or title"

	m := &Model{
		bus:      bus,
		cfg:      cfg,
		deck:     deck,
		viewport: viewport.New(0, 0),
		prompt:   prompt,
		help:     help.New(),
		keys:     newKeyMap(),
		renderer: views.NewRenderer(),
	}

	pcfg := cfg.PaginatorConfig(deck.Len())
	pcfg.Hooks = m.hooks()
	pager, err := paginator.New(m, pcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create paginator: %w", err)
	}
	m.pager = pager
	return m, nil
}

// hooks re-publishes paginator gestures on the event bus
func (m *Model) hooks() paginator.Hooks {
	return paginator.Hooks{
		DragBegin: func(s paginator.Sample) {
			m.publish(eventbus.DragBeganEvent{GestureID: s.ID, Y: s.Start.Y})
		},
		DragEnd: func(s paginator.Sample, end paginator.Offset) {
			m.publish(eventbus.DragEndedEvent{GestureID: s.ID, Y: end.Y})
		},
		MomentumEnd: func(o paginator.Offset) {
			m.publish(eventbus.MomentumEndedEvent{Y: o.Y})
		},
		Snap: func(d paginator.Decision) {
			m.lastSnap = fmt.Sprintf("%s → page %d", d.Direction, d.TargetPage+1)
			m.publish(eventbus.PageSnappedEvent{
				GestureID:  d.GestureID,
				Direction:  string(d.Direction),
				FromPage:   d.Page,
				ToPage:     d.TargetPage,
				TargetY:    d.TargetY,
				PageHeight: d.Height,
			})
		},
	}
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case wheelIdleMsg:
		m.endWheelGesture(msg.gen)

	case animFrameMsg:
		cmds = append(cmds, m.stepAnimation(msg.gen))

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.publish(eventbus.ErrorEvent{Message: "help pager failed", Err: msg.err})
			cmds = append(cmds, m.setStatus(fmt.Sprintf("help: %v", msg.err), true))
		}

	case clearStatusMsg:
		if msg.gen == m.statusGen {
			m.statusMessage = ""
			m.statusIsError = false
		}
	}

	cmds = append(cmds, m.pending...)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

// resize recomputes the page height and keeps the current page in view
func (m *Model) resize(width, height int) {
	page := m.currentPage()
	m.cancelGestures()

	m.width = width
	m.height = height
	m.help.Width = width
	m.prompt.Width = width - len(m.prompt.Prompt) - 1

	m.pageHeight = height - headerHeight - footerHeight
	if m.pageHeight < 0 {
		m.pageHeight = 0
	}

	m.viewport.Width = width
	m.viewport.Height = m.pageHeight
	m.viewport.SetContent(m.deck.Render(width, m.pageHeight))

	m.pager.OnLayout(paginator.Layout{Height: float64(m.pageHeight)})
	m.publish(eventbus.LayoutChangedEvent{Width: width, Height: m.pageHeight})

	if _, err := m.pager.JumpToPage(page, false); err != nil && !errors.Is(err, paginator.ErrNotReady) {
		log.Printf("Failed to restore page after resize: %v", err)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.prompting {
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.goToPage(m.currentPage()+1, true)
	case key.Matches(msg, m.keys.Prev):
		m.goToPage(m.currentPage()-1, true)
	case key.Matches(msg, m.keys.First):
		m.goToPage(0, true)
	case key.Matches(msg, m.keys.Last):
		m.goToPage(m.deck.Len()-1, true)
	case key.Matches(msg, m.keys.ThresholdUp):
		return m.adjustThreshold(thresholdStep)
	case key.Matches(msg, m.keys.ThresholdDown):
		return m.adjustThreshold(-thresholdStep)
	case key.Matches(msg, m.keys.GoTo):
		m.prompting = true
		m.prompt.Reset()
		return m.prompt.Focus()
	case key.Matches(msg, m.keys.Help):
		return showHelp(renderHelpContent(m.pager.SnapThreshold(), string(m.pager.OffsetSource()), m.pager.PageCount() > 0))
	}
	return nil
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.closePrompt()
		return nil
	case tea.KeyEnter:
		query := m.prompt.Value()
		m.closePrompt()
		idx, ok := m.deck.Find(query)
		if !ok {
			return m.setStatus(fmt.Sprintf("no page matches %q", query), true)
		}
		m.goToPage(idx, true)
		return nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.Reset()
}

// currentPage is the paginator's page limited to the deck. Unbounded snaps
// can settle past the last page while the viewport stops at its end.
func (m *Model) currentPage() int {
	page := m.pager.CurrentPage()
	if last := m.deck.Len() - 1; page > last {
		page = last
	}
	return page
}

// goToPage positions the surface on a page of the deck
func (m *Model) goToPage(page int, animated bool) {
	if page < 0 {
		page = 0
	}
	if last := m.deck.Len() - 1; page > last {
		page = last
	}
	m.cancelGestures()
	if _, err := m.pager.JumpToPage(page, animated); err != nil {
		log.Printf("Jump to page %d ignored: %v", page+1, err)
	}
}

func (m *Model) adjustThreshold(delta float64) tea.Cmd {
	next := math.Round((m.pager.SnapThreshold()+delta)*100) / 100
	if err := m.pager.SetSnapThreshold(next); err != nil {
		return m.setStatus(fmt.Sprintf("threshold stays at %.2f", m.pager.SnapThreshold()), true)
	}
	m.cfg.Paging.SnapThreshold = next
	m.changeSeq++
	m.publish(eventbus.ConfigChangedEvent{Seq: m.changeSeq, SnapThreshold: next})
	return m.setStatus(fmt.Sprintf("snap threshold %.2f", next), false)
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.statusMessage = text
	m.statusIsError = isError
	m.statusGen++
	return clearStatusAfter(m.statusGen, statusDuration)
}

// View renders the model
func (m *Model) View() string {
	state := views.ViewState{
		Width:         m.width,
		Page:          m.currentPage(),
		PageCount:     m.deck.Len(),
		Body:          m.viewport.View(),
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		LastSnap:      m.lastSnap,
		SnapThreshold: m.pager.SnapThreshold(),
		ShowStatus:    m.cfg.UI.ShowStatus,
		HelpModel:     m.help,
		KeyMap:        m.keys,
	}
	if p, ok := m.deck.Page(state.Page); ok {
		state.PageTitle = p.Title
	}
	if m.prompting {
		state.Prompt = m.prompt.View()
	}
	return m.renderer.Render(state)
}

// Paginator exposes the paging engine, mainly for tests and embedding
func (m *Model) Paginator() *paginator.Paginator {
	return m.pager
}
