package ports

import (
	"context"

	"github.com/zlarouche/deck-of-cards/internal/domain"
)

// GameService is the REST contract of the external game engine. Shoe
// composition, shuffling, dealing, and scoring all happen server-side; the
// client treats every response as authoritative and opaque.
type GameService interface {
	CreateGame(ctx context.Context, name string) (domain.Game, error)
	DeleteGame(ctx context.Context, id domain.GameID) error
	ListGames(ctx context.Context) ([]domain.Game, error)
	ResetGame(ctx context.Context, id domain.GameID) error

	CreateDeck(ctx context.Context) (domain.DeckID, error)
	ListUnassignedDecks(ctx context.Context) ([]domain.DeckID, error)
	AddDeckToGame(ctx context.Context, id domain.GameID, deck domain.DeckID) error
	ListGameDecks(ctx context.Context, id domain.GameID) ([]domain.DeckID, error)

	AddPlayer(ctx context.Context, id domain.GameID, name string) error
	RemovePlayer(ctx context.Context, id domain.GameID, name string) error
	ListPlayers(ctx context.Context, id domain.GameID) ([]domain.Player, error)
	PlayerCards(ctx context.Context, id domain.GameID, name string) ([]domain.Card, error)

	DealCards(ctx context.Context, id domain.GameID, name string, count int) ([]domain.Card, error)
	ShuffleShoe(ctx context.Context, id domain.GameID) error
	UndealtBySuit(ctx context.Context, id domain.GameID) (domain.UndealtBySuit, error)
	UndealtByCard(ctx context.Context, id domain.GameID) (domain.UndealtByCard, error)
}
