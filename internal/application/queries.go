package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/zlarouche/deck-of-cards/internal/domain"
)

// DeckEntry pairs an unassigned deck id with its stable display label.
type DeckEntry struct {
	ID    domain.DeckID
	Label int
}

// LeaderboardRow is one ranked line of the players leaderboard.
type LeaderboardRow struct {
	Rank   int
	Player domain.Player
}

// DeckOverview is the combined view the decks panel renders.
type DeckOverview struct {
	Unassigned []DeckEntry
	Assigned   []domain.DeckID
}

func (s *Service) Games(ctx context.Context) ([]domain.Game, error) {
	games, err := s.games.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// UnassignedDecks fetches the unassigned universe and runs the label
// stabilizer over it, so every deck keeps the number it was first given.
// Entries come back in label order.
func (s *Service) UnassignedDecks(ctx context.Context) ([]DeckEntry, error) {
	ids, err := s.games.ListUnassignedDecks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unassigned decks: %w", err)
	}

	mapping, err := s.applyLabels(ids)
	if err != nil {
		return nil, err
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	entries := make([]DeckEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, DeckEntry{ID: id, Label: mapping[id]})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Label < entries[j].Label })

	return entries, nil
}

// AssignedDecks resynchronizes the session's deck list with the server and
// returns it. Without an active game the list is empty by invariant.
func (s *Service) AssignedDecks(ctx context.Context) ([]domain.DeckID, error) {
	id, _ := s.store.ActiveGame()
	if id == "" {
		return nil, nil
	}

	ids, err := s.games.ListGameDecks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list game decks: %w", err)
	}

	s.store.ReplaceDecks(ids)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	return ids, nil
}

// Decks combines both deck universes for the decks panel.
func (s *Service) Decks(ctx context.Context) (DeckOverview, error) {
	unassigned, err := s.UnassignedDecks(ctx)
	if err != nil {
		return DeckOverview{}, err
	}

	assigned, err := s.AssignedDecks(ctx)
	if err != nil {
		return DeckOverview{}, err
	}

	return DeckOverview{Unassigned: unassigned, Assigned: assigned}, nil
}

func (s *Service) Players(ctx context.Context) ([]domain.Player, error) {
	id, _ := s.store.ActiveGame()
	if id == "" {
		return nil, domain.ErrNoActiveGame
	}

	players, err := s.games.ListPlayers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

// Leaderboard ranks players by hand value descending. The sort is stable so
// ties keep the server's order, with no client-side secondary key.
func (s *Service) Leaderboard(ctx context.Context) ([]LeaderboardRow, error) {
	players, err := s.Players(ctx)
	if err != nil {
		return nil, err
	}

	return RankPlayers(players), nil
}

// RankPlayers is the pure leaderboard ordering, exposed for views that
// already hold a player list.
func RankPlayers(players []domain.Player) []LeaderboardRow {
	ordered := append([]domain.Player(nil), players...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].HandValue > ordered[j].HandValue
	})

	rows := make([]LeaderboardRow, 0, len(ordered))
	for i, player := range ordered {
		rows = append(rows, LeaderboardRow{Rank: i + 1, Player: player})
	}
	return rows
}

func (s *Service) PlayerHand(ctx context.Context, name string) ([]domain.Card, error) {
	if name == "" {
		return nil, domain.ErrNoPlayerSelected
	}
	id, _ := s.store.ActiveGame()
	if id == "" {
		return nil, domain.ErrNoActiveGame
	}

	cards, err := s.games.PlayerCards(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("get player cards: %w", err)
	}
	return cards, nil
}

func (s *Service) UndealtBySuit(ctx context.Context) (domain.UndealtBySuit, error) {
	id, _ := s.store.ActiveGame()
	if id == "" {
		return domain.UndealtBySuit{}, domain.ErrNoActiveGame
	}

	counts, err := s.games.UndealtBySuit(ctx, id)
	if err != nil {
		return domain.UndealtBySuit{}, fmt.Errorf("undealt by suit: %w", err)
	}
	return counts, nil
}

func (s *Service) UndealtByCard(ctx context.Context) (domain.UndealtByCard, error) {
	id, _ := s.store.ActiveGame()
	if id == "" {
		return domain.UndealtByCard{}, domain.ErrNoActiveGame
	}

	counts, err := s.games.UndealtByCard(ctx, id)
	if err != nil {
		return domain.UndealtByCard{}, fmt.Errorf("undealt by card: %w", err)
	}
	return counts, nil
}
