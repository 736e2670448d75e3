package toml

import (
	"fmt"
	"time"

	"github.com/zlarouche/deck-of-cards/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int          `toml:"version"`
	SyncedAt string       `toml:"synced_at,omitempty"`
	Game     gameSchema   `toml:"game"`
	Decks    []deckSchema `toml:"decks"`
	Labels   []labelEntry `toml:"labels"`
}

type gameSchema struct {
	ID   string `toml:"id"`
	Name string `toml:"name,omitempty"`
}

type deckSchema struct {
	ID string `toml:"id"`
}

type labelEntry struct {
	DeckID string `toml:"deck_id"`
	Label  int    `toml:"label"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(state domain.SessionState) fileSchema {
	file := fileSchema{
		Version: currentSchemaVersion,
		Game:    gameSchema{ID: string(state.ActiveGameID), Name: state.ActiveGameName},
	}
	if !state.SyncedAt.IsZero() {
		file.SyncedAt = state.SyncedAt.UTC().Format(time.RFC3339)
	}
	for _, id := range state.AssignedDecks {
		file.Decks = append(file.Decks, deckSchema{ID: string(id)})
	}
	for id, label := range state.DeckLabels {
		file.Labels = append(file.Labels, labelEntry{DeckID: string(id), Label: label})
	}
	return file
}

func fromSchema(file fileSchema) domain.SessionState {
	state := domain.SessionState{
		ActiveGameID:   domain.GameID(file.Game.ID),
		ActiveGameName: file.Game.Name,
		DeckLabels:     make(map[domain.DeckID]int, len(file.Labels)),
	}
	for _, deck := range file.Decks {
		state.AssignedDecks = append(state.AssignedDecks, domain.DeckID(deck.ID))
	}
	for _, entry := range file.Labels {
		state.DeckLabels[domain.DeckID(entry.DeckID)] = entry.Label
	}
	// A malformed timestamp in a hand-edited file degrades to "never synced".
	if ts, err := time.Parse(time.RFC3339, file.SyncedAt); err == nil {
		state.SyncedAt = ts
	}
	// An empty game id must not carry decks; defend against a hand-edited
	// session file.
	if state.ActiveGameID == "" {
		state.AssignedDecks = nil
	}
	return state
}
