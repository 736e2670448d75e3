package table

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	active   lipgloss.Style
	row      lipgloss.Style
	deckID   lipgloss.Style
	label    lipgloss.Style
	rank     lipgloss.Style
	value    lipgloss.Style
	card     lipgloss.Style
	redSuit  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	fallback lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		row:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		deckID:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		label:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		rank:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("222")),
		card:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		redSuit:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		fallback: lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
