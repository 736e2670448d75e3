package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zlarouche/deck-of-cards/internal/application"
	"github.com/zlarouche/deck-of-cards/internal/domain"
)

// Snapshot is everything the one-shot status view shows. Slices left nil
// render as their "unavailable" fallback rather than an error.
type Snapshot struct {
	ActiveGameID   domain.GameID
	ActiveGameName string
	Games          []domain.Game
	Decks          *application.DeckOverview
	Leaderboard    []application.LeaderboardRow
}

type RenderOptions struct {
	ShowDecks       bool
	ShowLeaderboard bool
}

func renderView(snapshot Snapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Card Game Client"),
		s.header.Render(activeGameLine(snapshot)),
		s.section.Render(renderGames(snapshot, s)),
	}

	if opts.ShowDecks {
		lines = append(lines, s.section.Render(renderDecks(snapshot.Decks, s)))
	}
	if opts.ShowLeaderboard {
		lines = append(lines, s.section.Render(RenderLeaderboard(snapshot.Leaderboard, snapshot.HasActiveGame())))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (s Snapshot) HasActiveGame() bool {
	return s.ActiveGameID != ""
}

func activeGameLine(snapshot Snapshot) string {
	if !snapshot.HasActiveGame() {
		return "active game: none"
	}
	if snapshot.ActiveGameName == "" {
		return fmt.Sprintf("active game: %s", snapshot.ActiveGameID)
	}
	return fmt.Sprintf("active game: %s (%s)", snapshot.ActiveGameName, snapshot.ActiveGameID)
}

func renderGames(snapshot Snapshot, s styles) string {
	lines := []string{s.title.Render("Games")}

	if len(snapshot.Games) == 0 {
		lines = append(lines, s.empty.Render("No games on the server."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.header.Render(fmt.Sprintf("%-24s %-16s %8s %8s", "ID", "NAME", "SHOE", "PLAYERS")))
	for _, game := range snapshot.Games {
		line := fmt.Sprintf("%-24s %-16s %8d %8d", game.ID, game.Name, game.ShoeSize, game.PlayerCount)
		if game.ID == snapshot.ActiveGameID {
			lines = append(lines, s.active.Render(line+"  *"))
			continue
		}
		lines = append(lines, s.row.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDecks(decks *application.DeckOverview, s styles) string {
	lines := []string{s.title.Render("Decks")}

	if decks == nil {
		lines = append(lines, s.fallback.Render("deck view unavailable"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if len(decks.Unassigned) == 0 {
		lines = append(lines, s.empty.Render("No unassigned decks."))
	}
	for _, entry := range decks.Unassigned {
		lines = append(lines, fmt.Sprintf("%s %s",
			s.label.Render(fmt.Sprintf("Deck #%d", entry.Label)),
			s.deckID.Render(string(entry.ID)),
		))
	}

	if len(decks.Assigned) > 0 {
		lines = append(lines, s.header.Render(fmt.Sprintf("in shoe: %d deck(s)", len(decks.Assigned))))
		for _, id := range decks.Assigned {
			lines = append(lines, s.deckID.Render("  "+string(id)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderGames renders the games list panel; shared with the watch dashboard.
func RenderGames(snapshot Snapshot) string {
	return renderGames(snapshot, newStyles())
}

// RenderDecks renders both deck universes; shared with the watch dashboard.
func RenderDecks(decks *application.DeckOverview) string {
	return renderDecks(decks, newStyles())
}

// RenderLeaderboard renders ranked players; shared with the watch dashboard.
func RenderLeaderboard(rows []application.LeaderboardRow, hasGame bool) string {
	s := newStyles()
	lines := []string{s.title.Render("Leaderboard")}

	if !hasGame {
		lines = append(lines, s.fallback.Render("no active game"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	if len(rows) == 0 {
		lines = append(lines, s.empty.Render("No players yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.header.Render(fmt.Sprintf("%4s %-20s %8s %6s", "RANK", "PLAYER", "VALUE", "CARDS")))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %-20s %s %6d",
			s.rank.Render(fmt.Sprintf("%4d", row.Rank)),
			row.Player.Name,
			s.value.Render(fmt.Sprintf("%8d", row.Player.HandValue)),
			row.Player.HandSize,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderCards renders a dealt or held hand one card per line.
func RenderCards(title string, cards []domain.Card) string {
	s := newStyles()
	lines := []string{s.title.Render(title)}

	if len(cards) == 0 {
		lines = append(lines, s.empty.Render("No cards."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, card := range cards {
		style := s.card
		if card.Suit == domain.SuitHearts || card.Suit == domain.SuitDiamonds {
			style = s.redSuit
		}
		lines = append(lines, style.Render(fmt.Sprintf("%-24s value %2d", card.DisplayName, card.Value)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderSuitCounts renders the undealt-by-suit breakdown.
func RenderSuitCounts(counts domain.UndealtBySuit) string {
	s := newStyles()
	lines := []string{s.title.Render("Undealt cards by suit")}

	total := 0
	for _, suit := range domain.Suits() {
		count := counts.SuitCounts[suit]
		total += count
		lines = append(lines, s.row.Render(fmt.Sprintf("%-10s %4d", suit, count)))
	}
	lines = append(lines, s.header.Render(fmt.Sprintf("%-10s %4d", "total", total)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderCardCounts renders the suit-by-face undealt grid.
func RenderCardCounts(counts domain.UndealtByCard) string {
	s := newStyles()
	lines := []string{s.title.Render("Undealt cards by face value")}

	header := strings.Builder{}
	header.WriteString(fmt.Sprintf("%-10s", ""))
	for _, face := range domain.FaceValues() {
		header.WriteString(fmt.Sprintf("%6s", shortFace(face)))
	}
	lines = append(lines, s.header.Render(header.String()))

	for _, suit := range domain.Suits() {
		row := strings.Builder{}
		row.WriteString(fmt.Sprintf("%-10s", suit))
		for _, face := range domain.FaceValues() {
			row.WriteString(fmt.Sprintf("%6d", counts.CardCounts[suit][face]))
		}
		lines = append(lines, s.row.Render(row.String()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func shortFace(face domain.FaceValue) string {
	switch face {
	case domain.FaceAce:
		return "A"
	case domain.FaceTwo:
		return "2"
	case domain.FaceThree:
		return "3"
	case domain.FaceFour:
		return "4"
	case domain.FaceFive:
		return "5"
	case domain.FaceSix:
		return "6"
	case domain.FaceSeven:
		return "7"
	case domain.FaceEight:
		return "8"
	case domain.FaceNine:
		return "9"
	case domain.FaceTen:
		return "10"
	case domain.FaceJack:
		return "J"
	case domain.FaceQueen:
		return "Q"
	case domain.FaceKing:
		return "K"
	default:
		return string(face)
	}
}
