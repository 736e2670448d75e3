package tui

import (
	"github.com/zlarouche/deck-of-cards/internal/application"
	"github.com/zlarouche/deck-of-cards/internal/domain"
)

// Every load result carries the ticket its fetch was issued; the model drops
// results whose ticket lost to a newer admitted one.

type gamesLoadedMsg struct {
	seq   uint64
	games []domain.Game
	err   error
}

type decksLoadedMsg struct {
	seq   uint64
	decks application.DeckOverview
	err   error
}

type playersLoadedMsg struct {
	seq     uint64
	players []domain.Player
	err     error
}

type handLoadedMsg struct {
	seq    uint64
	player string
	cards  []domain.Card
	err    error
}

type suitsLoadedMsg struct {
	seq    uint64
	counts domain.UndealtBySuit
	err    error
}

type cardCountsLoadedMsg struct {
	seq    uint64
	counts domain.UndealtByCard
	err    error
}

// mutationDoneMsg reports a user-initiated action; its error surfaces as a
// banner rather than being swallowed.
type mutationDoneMsg struct {
	label string
	err   error
}

type bannerExpiredMsg struct {
	id int
}

type epochTickMsg struct{}
