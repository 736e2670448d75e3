// Package application orchestrates the game service, the session store, and
// the deck label mapping. Every externally visible mutation bumps the
// session's refresh epoch on success, which is the sole signal views use to
// refetch their slices.
package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/zlarouche/deck-of-cards/internal/domain"
	"github.com/zlarouche/deck-of-cards/internal/labels"
	"github.com/zlarouche/deck-of-cards/internal/ports"
	"github.com/zlarouche/deck-of-cards/internal/session"
)

type Service struct {
	games    ports.GameService
	store    *session.Store
	sessions ports.SessionRepository
	clock    ports.Clock
}

func NewService(games ports.GameService, store *session.Store, sessions ports.SessionRepository, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		games:    games,
		store:    store,
		sessions: sessions,
		clock:    clock,
	}
}

// Store exposes the shared session store for views that subscribe to the
// active game and refresh epoch directly.
func (s *Service) Store() *session.Store {
	return s.store
}

func (s *Service) CreateGame(ctx context.Context, name string) (domain.Game, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Game{}, domain.ErrEmptyName
	}

	game, err := s.games.CreateGame(ctx, name)
	if err != nil {
		return domain.Game{}, fmt.Errorf("create game: %w", err)
	}

	s.store.SetActiveGame(game.ID, game.Name)
	s.store.ReplaceDecks(nil)
	s.store.BumpRefresh()

	if err := s.persist(ctx); err != nil {
		return domain.Game{}, err
	}

	return game, nil
}

// DeleteGame removes a game. An empty id means the active game, and deleting
// the active game clears the session.
func (s *Service) DeleteGame(ctx context.Context, id domain.GameID) error {
	activeID, _ := s.store.ActiveGame()
	if id == "" {
		if activeID == "" {
			return domain.ErrNoActiveGame
		}
		id = activeID
	}

	if err := s.games.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}

	if id == activeID {
		s.store.ClearActiveGame()
	}
	s.store.BumpRefresh()

	return s.persist(ctx)
}

// UseGame switches the active game and resynchronizes the assigned deck list
// from the server's authoritative copy.
func (s *Service) UseGame(ctx context.Context, id domain.GameID) (domain.Game, error) {
	games, err := s.games.ListGames(ctx)
	if err != nil {
		return domain.Game{}, fmt.Errorf("list games: %w", err)
	}

	var found *domain.Game
	for i := range games {
		if games[i].ID == id {
			found = &games[i]
			break
		}
	}
	if found == nil {
		return domain.Game{}, fmt.Errorf("game %q: %w", id, domain.ErrGameNotFound)
	}

	decks, err := s.games.ListGameDecks(ctx, id)
	if err != nil {
		return domain.Game{}, fmt.Errorf("list game decks: %w", err)
	}

	s.store.SetActiveGame(found.ID, found.Name)
	s.store.ReplaceDecks(decks)
	s.store.BumpRefresh()

	if err := s.persist(ctx); err != nil {
		return domain.Game{}, err
	}

	return *found, nil
}

func (s *Service) ResetGame(ctx context.Context) error {
	id, _ := s.store.ActiveGame()
	if id == "" {
		return domain.ErrNoActiveGame
	}

	if err := s.games.ResetGame(ctx, id); err != nil {
		return fmt.Errorf("reset game: %w", err)
	}

	s.store.BumpRefresh()
	return nil
}

// CreateDeck creates a standard 52-card deck and optimistically assigns its
// display label before the next unassigned-decks reload confirms it.
func (s *Service) CreateDeck(ctx context.Context) (DeckEntry, error) {
	id, err := s.games.CreateDeck(ctx)
	if err != nil {
		return DeckEntry{}, fmt.Errorf("create deck: %w", err)
	}

	label := s.store.AssignLabel(id)
	s.store.BumpRefresh()

	if err := s.persist(ctx); err != nil {
		return DeckEntry{}, err
	}

	return DeckEntry{ID: id, Label: label}, nil
}

// AddDeckToGame attaches an unassigned deck to the active game's shoe. The
// deck id moves to the assigned universe and never returns.
func (s *Service) AddDeckToGame(ctx context.Context, deck domain.DeckID) error {
	id, _ := s.store.ActiveGame()
	if id == "" {
		return domain.ErrNoActiveGame
	}

	if err := s.games.AddDeckToGame(ctx, id, deck); err != nil {
		return fmt.Errorf("add deck to game: %w", err)
	}

	s.store.AddDeck(deck)
	s.store.BumpRefresh()

	return s.persist(ctx)
}

func (s *Service) AddPlayer(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrEmptyName
	}
	id, _ := s.store.ActiveGame()
	if id == "" {
		return domain.ErrNoActiveGame
	}

	if err := s.games.AddPlayer(ctx, id, name); err != nil {
		return fmt.Errorf("add player: %w", err)
	}

	s.store.BumpRefresh()
	return nil
}

func (s *Service) RemovePlayer(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrEmptyName
	}
	id, _ := s.store.ActiveGame()
	if id == "" {
		return domain.ErrNoActiveGame
	}

	if err := s.games.RemovePlayer(ctx, id, name); err != nil {
		return fmt.Errorf("remove player: %w", err)
	}

	s.store.BumpRefresh()
	return nil
}

func (s *Service) DealCards(ctx context.Context, name string, count int) ([]domain.Card, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrNoPlayerSelected
	}
	if count < 1 {
		return nil, domain.ErrInvalidDealCount
	}
	id, _ := s.store.ActiveGame()
	if id == "" {
		return nil, domain.ErrNoActiveGame
	}

	cards, err := s.games.DealCards(ctx, id, name, count)
	if err != nil {
		return nil, fmt.Errorf("deal cards: %w", err)
	}

	s.store.BumpRefresh()
	return cards, nil
}

func (s *Service) ShuffleShoe(ctx context.Context) error {
	id, _ := s.store.ActiveGame()
	if id == "" {
		return domain.ErrNoActiveGame
	}

	if err := s.games.ShuffleShoe(ctx, id); err != nil {
		return fmt.Errorf("shuffle shoe: %w", err)
	}

	s.store.BumpRefresh()
	return nil
}

func (s *Service) persist(ctx context.Context) error {
	if s.sessions == nil {
		return nil
	}
	state := s.store.State()
	state.SyncedAt = s.clock.Now()
	if err := s.sessions.Save(ctx, state); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// applyLabels runs the label stabilizer over a freshly fetched unassigned
// list and installs the result in the store.
func (s *Service) applyLabels(ids []domain.DeckID) (labels.Mapping, error) {
	mapping, err := labels.Apply(s.store.DeckLabels(), ids)
	if err != nil {
		return nil, fmt.Errorf("stabilize deck labels: %w", err)
	}
	s.store.SetDeckLabels(mapping)
	return mapping, nil
}
