// Package dashboard is the terminal rendition of the directory dashboard:
// a tab bar, one list page per collection, a create form overlay and a
// summary panel.
package dashboard

import "github.com/charmbracelet/lipgloss"

var (
	Navy    = lipgloss.Color("#101F38")
	Lime    = lipgloss.Color("#8BC34A")
	Muted   = lipgloss.Color("#8a94a6")
	Border  = lipgloss.Color("#2a3850")
	Danger  = lipgloss.Color("#e53935")
	Success = lipgloss.Color("#8BC34A")
	Info    = lipgloss.Color("#2196F3")
)

// Styles holds every lipgloss style the dashboard renders with
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Muted       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	Label       lipgloss.Style
	Tag         lipgloss.Style
	Panel       lipgloss.Style
	Error       lipgloss.Style
	Notice      lipgloss.Style
	Help        lipgloss.Style
	Required    lipgloss.Style
	BarFill     lipgloss.Style
	BarEmpty    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(Lime),
		Subtitle:    lipgloss.NewStyle().Italic(true),
		Muted:       lipgloss.NewStyle().Foreground(Muted),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(Navy).Background(Lime).Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Foreground(Muted).Padding(0, 2),
		Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1),
		CardFocused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Lime).Padding(0, 1),
		Label:       lipgloss.NewStyle().Bold(true),
		Tag:         lipgloss.NewStyle().Foreground(Info),
		Panel:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(Border).Padding(0, 1),
		Error:       lipgloss.NewStyle().Foreground(Danger),
		Notice:      lipgloss.NewStyle().Foreground(Success),
		Help:        lipgloss.NewStyle().Foreground(Muted).Faint(true),
		Required:    lipgloss.NewStyle().Foreground(Danger),
		BarFill:     lipgloss.NewStyle().Foreground(Lime),
		BarEmpty:    lipgloss.NewStyle().Foreground(Border),
	}
}
