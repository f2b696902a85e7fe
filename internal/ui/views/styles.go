package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	PageTitle   lipgloss.Style
	PageCounter lipgloss.Style
	Header      lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Snap        lipgloss.Style
	Threshold   lipgloss.Style
	Prompt      lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		PageTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PageCounter: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Header:      lipgloss.NewStyle().Background(lipgloss.Color("236")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Snap:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Threshold:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
