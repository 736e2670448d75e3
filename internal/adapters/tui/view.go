package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/zlarouche/deck-of-cards/internal/adapters/render/table"
	"github.com/zlarouche/deck-of-cards/internal/application"
)

func (m Model) View() string {
	gameID, gameName := m.store.ActiveGame()

	header := "no active game"
	if gameID != "" {
		header = fmt.Sprintf("game: %s (%s)", gameName, gameID)
	}
	lines := []string{m.styles.header.Render("cards watch — " + header)}

	if m.banner != nil {
		style := m.styles.bannerOK
		if m.banner.isErr {
			style = m.styles.bannerErr
		}
		lines = append(lines, style.Render(m.banner.text))
	}
	if m.busy {
		lines = append(lines, m.spin.View()+"working...")
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.panel.Render(m.renderGamesPanel()),
		m.styles.panel.Render(m.renderDecksPanel()),
	)

	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.panel.Render(m.renderLeaderboardPanel(gameID != "")),
		m.styles.panel.Render(m.renderHandPanel()),
	)

	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.panel.Render(m.renderSuitsPanel()),
		m.styles.panel.Render(m.renderCardCountsPanel()),
	)

	lines = append(lines, top, middle, bottom,
		m.styles.help.Render("n new deck · a attach deck · d deal · s shuffle · R reset · j/k player · r refresh · x dismiss · q quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderGamesPanel() string {
	snapshot := table.Snapshot{Games: m.games}
	if id, name := m.store.ActiveGame(); id != "" {
		snapshot.ActiveGameID = id
		snapshot.ActiveGameName = name
	}
	return table.RenderGames(snapshot)
}

func (m Model) renderDecksPanel() string {
	return table.RenderDecks(m.decks)
}

func (m Model) renderLeaderboardPanel(hasGame bool) string {
	return table.RenderLeaderboard(application.RankPlayers(m.players), hasGame)
}

func (m Model) renderHandPanel() string {
	if m.selected == "" {
		return m.styles.placeholder.Render("Hand\nno player selected")
	}
	return table.RenderCards(fmt.Sprintf("Hand — %s", m.selected), m.hand)
}

func (m Model) renderSuitsPanel() string {
	if m.suitCounts == nil {
		return m.styles.placeholder.Render("Undealt by suit\nunavailable")
	}
	return table.RenderSuitCounts(*m.suitCounts)
}

func (m Model) renderCardCountsPanel() string {
	if m.cardCounts == nil {
		return m.styles.placeholder.Render("Undealt by face\nunavailable")
	}
	return table.RenderCardCounts(*m.cardCounts)
}
