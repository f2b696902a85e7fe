package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// renderHelpContent renders the help text shown in the pager
func renderHelpContent(threshold float64, source string, bounded bool) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	// Pad before styling; escape codes would count towards the width
	row := func(k, desc string) string {
		return fmt.Sprintf("  %s %s\n", keyStyle.Render(fmt.Sprintf("%-12s", k)), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("vpager Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Gestures"))
	help.WriteString("\n")
	help.WriteString(row("drag", "Drag the page with the left mouse button"))
	help.WriteString(row("wheel", "Scroll; the pager snaps once the wheel stops"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(row("j/↓/PgDn", "Next page"))
	help.WriteString(row("k/↑/PgUp", "Previous page"))
	help.WriteString(row("g/G", "First/last page"))
	help.WriteString(row(":", "Go to page by number or title"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Snapping"))
	help.WriteString("\n")
	help.WriteString(row("+/-", "Raise/lower the snap threshold"))
	help.WriteString(descStyle.Render(fmt.Sprintf("  threshold %.2f, offset source %s, bounded to content: %t",
		threshold, source, bounded)))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(row("?", "Show this help"))
	help.WriteString(row("q", "Quit"))

	return help.String()
}

// helpPager runs the help text in ov while Bubble Tea has released the terminal
type helpPager struct {
	content string
}

func (h *helpPager) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(h.content))
	if err != nil {
		return err
	}

	// Don't leave the help text behind on our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	configureVimKeyBindings(&config)

	root.SetConfig(config)
	return root.Run()
}

func (h *helpPager) SetStdin(io.Reader)  {}
func (h *helpPager) SetStdout(io.Writer) {}
func (h *helpPager) SetStderr(io.Writer) {}

func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	config.Keybind["down"] = []string{"j", "Down", "Enter", "ctrl+n"}
	config.Keybind["up"] = []string{"k", "Up", "ctrl+p"}
	config.Keybind["top"] = []string{"g", "Home"}
	config.Keybind["bottom"] = []string{"G", "End"}
	config.Keybind["exit"] = []string{"q", "Escape", "?"}
}

// showHelp returns a command that shows help using the ov pager
func showHelp(content string) tea.Cmd {
	return tea.Exec(&helpPager{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
