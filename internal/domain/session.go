package domain

import "time"

// SessionState is the persisted slice of a client session: the active game
// and the decks attached to it, plus the display labels already handed out to
// unassigned decks. The refresh epoch is deliberately absent; it never
// outlives a process.
type SessionState struct {
	ActiveGameID   GameID
	ActiveGameName string
	AssignedDecks  []DeckID
	DeckLabels     map[DeckID]int
	SyncedAt       time.Time
}

func (s SessionState) HasActiveGame() bool {
	return s.ActiveGameID != ""
}
