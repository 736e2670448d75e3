package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	header      lipgloss.Style
	panel       lipgloss.Style
	bannerOK    lipgloss.Style
	bannerErr   lipgloss.Style
	selected    lipgloss.Style
	row         lipgloss.Style
	help        lipgloss.Style
	placeholder lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		panel:       lipgloss.NewStyle().Padding(0, 1).MarginRight(2),
		bannerOK:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		bannerErr:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("222")),
		row:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		help:        lipgloss.NewStyle().Faint(true),
		placeholder: lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
