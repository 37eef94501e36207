package outcome

import "github.com/charmbracelet/lipgloss"

type styles struct {
	success lipgloss.Style
	failure lipgloss.Style
	kind    lipgloss.Style
	message lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	value   lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		kind:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		message: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section: lipgloss.NewStyle().MarginTop(1),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
