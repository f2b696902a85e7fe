package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	PageTitle     string
	Page          int // zero based
	PageCount     int
	Body          string // rendered viewport
	StatusMessage string
	StatusIsError bool
	LastSnap      string
	SnapThreshold float64
	ShowStatus    bool
	Prompt        string // rendered go-to prompt, empty when closed
	HelpModel     help.Model
	KeyMap        help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view: header, page body, footer
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(r.RenderHeader(state))
	b.WriteString("\n")
	b.WriteString(state.Body)
	if footer := r.RenderFooter(state); footer != "" {
		b.WriteString("\n")
		b.WriteString(footer)
	}
	return b.String()
}

// RenderHeader renders the title bar with the current page position
func (r *Renderer) RenderHeader(state ViewState) string {
	logo := r.styles.Title.Render("vpager")
	counter := r.styles.PageCounter.Render(fmt.Sprintf("page %d/%d", state.Page+1, state.PageCount))

	room := state.Width - ansi.StringWidth(logo) - ansi.StringWidth(counter) - 4
	title := ""
	if room > 0 {
		title = r.styles.PageTitle.Render(ansi.Truncate(state.PageTitle, room, "…"))
	}

	left := logo + "  " + title
	gap := state.Width - ansi.StringWidth(left) - ansi.StringWidth(counter)
	if gap < 1 {
		gap = 1
	}
	line := ansi.Truncate(left+strings.Repeat(" ", gap)+counter, state.Width, "")
	return r.styles.Header.Render(line)
}

// RenderFooter renders the prompt or the status line
func (r *Renderer) RenderFooter(state ViewState) string {
	if state.Prompt != "" {
		return ansi.Truncate(r.styles.Prompt.Render(state.Prompt), state.Width, "")
	}
	if !state.ShowStatus {
		return ""
	}

	var parts []string
	switch {
	case state.StatusMessage != "" && state.StatusIsError:
		parts = append(parts, r.styles.StatusError.Render(state.StatusMessage))
	case state.StatusMessage != "":
		parts = append(parts, r.styles.Status.Render(state.StatusMessage))
	case state.LastSnap != "":
		parts = append(parts, r.styles.Snap.Render(state.LastSnap))
	}
	parts = append(parts, r.styles.Threshold.Render(fmt.Sprintf("θ=%.2f", state.SnapThreshold)))
	if state.KeyMap != nil {
		parts = append(parts, r.styles.Help.Render(state.HelpModel.ShortHelpView(state.KeyMap.ShortHelp())))
	}
	return ansi.Truncate(strings.Join(parts, "  "), state.Width, "…")
}
