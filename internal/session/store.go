// Package session holds the client's single source of truth: which game is
// active, which decks belong to it, and the refresh epoch that tells every
// view its cached slice may be stale.
package session

import (
	"sync"

	"github.com/zlarouche/deck-of-cards/internal/domain"
	"github.com/zlarouche/deck-of-cards/internal/labels"
)

// Store is shared by every view loader. All transitions are atomic under the
// lock, so readers never observe a torn update; fallibility lives in the
// callers that talk to the network before mutating the store.
type Store struct {
	mu sync.RWMutex

	activeGameID   domain.GameID
	activeGameName string
	decks          []domain.DeckID
	deckLabels     labels.Mapping

	epoch uint64
}

func NewStore() *Store {
	return &Store{deckLabels: labels.Mapping{}}
}

// Restore seeds the store from a persisted session state.
func Restore(state domain.SessionState) *Store {
	s := NewStore()
	s.activeGameID = state.ActiveGameID
	s.activeGameName = state.ActiveGameName
	s.decks = append([]domain.DeckID(nil), state.AssignedDecks...)
	for id, label := range state.DeckLabels {
		s.deckLabels[id] = label
	}
	return s
}

// SetActiveGame replaces the active game identity. It does not touch the
// assigned decks; callers switching games must follow up with ReplaceDecks.
func (s *Store) SetActiveGame(id domain.GameID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeGameID = id
	s.activeGameName = name
}

// ClearActiveGame drops the active game and, to keep the invariant
// "no active game implies no assigned decks", the deck list with it.
func (s *Store) ClearActiveGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeGameID = ""
	s.activeGameName = ""
	s.decks = nil
}

// AddDeck appends one deck to the assigned list. Duplicate appends are the
// caller's defect; the store does not guard against them.
func (s *Store) AddDeck(id domain.DeckID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decks = append(s.decks, id)
}

// ReplaceDecks overwrites the assigned list wholesale, used after a reload
// to resynchronize with the server's authoritative order.
func (s *Store) ReplaceDecks(ids []domain.DeckID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decks = append([]domain.DeckID(nil), ids...)
}

// BumpRefresh increments the epoch by one. It is the sole invalidation
// signal; it has no other observable effect.
func (s *Store) BumpRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
}

func (s *Store) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

func (s *Store) ActiveGame() (domain.GameID, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeGameID, s.activeGameName
}

func (s *Store) AssignedDecks() []domain.DeckID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.DeckID(nil), s.decks...)
}

// DeckLabels returns a copy of the current label mapping.
func (s *Store) DeckLabels() labels.Mapping {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(labels.Mapping, len(s.deckLabels))
	for id, label := range s.deckLabels {
		out[id] = label
	}
	return out
}

// SetDeckLabels installs the mapping produced by labels.Apply after a fetch
// of the unassigned deck list.
func (s *Store) SetDeckLabels(m labels.Mapping) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deckLabels = make(labels.Mapping, len(m))
	for id, label := range m {
		s.deckLabels[id] = label
	}
}

// AssignLabel eagerly labels a deck created client-side, ahead of the next
// full reload. Returns the label handed out.
func (s *Store) AssignLabel(id domain.DeckID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if label, ok := s.deckLabels[id]; ok {
		return label
	}
	label := labels.Next(s.deckLabels)
	s.deckLabels[id] = label
	return label
}

// State snapshots the persistable part of the session. The epoch is
// process-local and deliberately excluded.
func (s *Store) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state := domain.SessionState{
		ActiveGameID:   s.activeGameID,
		ActiveGameName: s.activeGameName,
		AssignedDecks:  append([]domain.DeckID(nil), s.decks...),
		DeckLabels:     make(map[domain.DeckID]int, len(s.deckLabels)),
	}
	for id, label := range s.deckLabels {
		state.DeckLabels[id] = label
	}
	return state
}
