// Package api implements ports.GameService over the game service's REST
// contract.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zlarouche/deck-of-cards/internal/domain"
	"github.com/zlarouche/deck-of-cards/internal/ports"
)

const maxResponseBytes = 1 << 20

// Client talks to the game service. It performs no client-side recomputation
// of scores, shuffling, or dealing; responses are replaced wholesale.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

var _ ports.GameService = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client, log *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

type createGameRequest struct {
	Name string `json:"name"`
}

type createGameResponse struct {
	GameID domain.GameID `json:"gameId"`
	Name   string        `json:"name"`
}

type createDeckResponse struct {
	DeckID domain.DeckID `json:"deckId"`
}

type addDeckRequest struct {
	DeckID domain.DeckID `json:"deckId"`
}

type addPlayerRequest struct {
	PlayerName string `json:"playerName"`
}

type dealCardsRequest struct {
	PlayerName string `json:"playerName"`
	Count      int    `json:"count"`
}

func (c *Client) CreateGame(ctx context.Context, name string) (domain.Game, error) {
	var resp createGameResponse
	if err := c.do(ctx, http.MethodPost, "/games", createGameRequest{Name: name}, &resp); err != nil {
		return domain.Game{}, fmt.Errorf("create game: %w", err)
	}
	return domain.Game{ID: resp.GameID, Name: resp.Name}, nil
}

func (c *Client) DeleteGame(ctx context.Context, id domain.GameID) error {
	if err := c.do(ctx, http.MethodDelete, "/games/"+url.PathEscape(string(id)), nil, nil); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

func (c *Client) ListGames(ctx context.Context) ([]domain.Game, error) {
	var games []domain.Game
	if err := c.do(ctx, http.MethodGet, "/games", nil, &games); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

func (c *Client) ResetGame(ctx context.Context, id domain.GameID) error {
	if err := c.do(ctx, http.MethodPost, "/games/"+url.PathEscape(string(id))+"/reset", nil, nil); err != nil {
		return fmt.Errorf("reset game: %w", err)
	}
	return nil
}

func (c *Client) CreateDeck(ctx context.Context) (domain.DeckID, error) {
	var resp createDeckResponse
	if err := c.do(ctx, http.MethodPost, "/decks", nil, &resp); err != nil {
		return "", fmt.Errorf("create deck: %w", err)
	}
	return resp.DeckID, nil
}

func (c *Client) ListUnassignedDecks(ctx context.Context) ([]domain.DeckID, error) {
	var ids []domain.DeckID
	if err := c.do(ctx, http.MethodGet, "/decks/unassigned", nil, &ids); err != nil {
		return nil, fmt.Errorf("list unassigned decks: %w", err)
	}
	return ids, nil
}

func (c *Client) AddDeckToGame(ctx context.Context, id domain.GameID, deck domain.DeckID) error {
	path := "/games/" + url.PathEscape(string(id)) + "/decks"
	if err := c.do(ctx, http.MethodPost, path, addDeckRequest{DeckID: deck}, nil); err != nil {
		return fmt.Errorf("add deck to game: %w", err)
	}
	return nil
}

func (c *Client) ListGameDecks(ctx context.Context, id domain.GameID) ([]domain.DeckID, error) {
	var ids []domain.DeckID
	if err := c.do(ctx, http.MethodGet, "/games/"+url.PathEscape(string(id))+"/decks", nil, &ids); err != nil {
		return nil, fmt.Errorf("list game decks: %w", err)
	}
	return ids, nil
}

func (c *Client) AddPlayer(ctx context.Context, id domain.GameID, name string) error {
	path := "/games/" + url.PathEscape(string(id)) + "/players"
	if err := c.do(ctx, http.MethodPost, path, addPlayerRequest{PlayerName: name}, nil); err != nil {
		return fmt.Errorf("add player: %w", err)
	}
	return nil
}

func (c *Client) RemovePlayer(ctx context.Context, id domain.GameID, name string) error {
	path := "/games/" + url.PathEscape(string(id)) + "/players/" + url.PathEscape(name)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("remove player: %w", err)
	}
	return nil
}

func (c *Client) ListPlayers(ctx context.Context, id domain.GameID) ([]domain.Player, error) {
	var players []domain.Player
	if err := c.do(ctx, http.MethodGet, "/games/"+url.PathEscape(string(id))+"/players", nil, &players); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (c *Client) PlayerCards(ctx context.Context, id domain.GameID, name string) ([]domain.Card, error) {
	path := "/games/" + url.PathEscape(string(id)) + "/players/" + url.PathEscape(name) + "/cards"
	var cards []domain.Card
	if err := c.do(ctx, http.MethodGet, path, nil, &cards); err != nil {
		return nil, fmt.Errorf("get player cards: %w", err)
	}
	return cards, nil
}

func (c *Client) DealCards(ctx context.Context, id domain.GameID, name string, count int) ([]domain.Card, error) {
	path := "/games/" + url.PathEscape(string(id)) + "/deal"
	var cards []domain.Card
	if err := c.do(ctx, http.MethodPost, path, dealCardsRequest{PlayerName: name, Count: count}, &cards); err != nil {
		return nil, fmt.Errorf("deal cards: %w", err)
	}
	return cards, nil
}

func (c *Client) ShuffleShoe(ctx context.Context, id domain.GameID) error {
	if err := c.do(ctx, http.MethodPost, "/games/"+url.PathEscape(string(id))+"/shuffle", nil, nil); err != nil {
		return fmt.Errorf("shuffle shoe: %w", err)
	}
	return nil
}

func (c *Client) UndealtBySuit(ctx context.Context, id domain.GameID) (domain.UndealtBySuit, error) {
	var out domain.UndealtBySuit
	if err := c.do(ctx, http.MethodGet, "/games/"+url.PathEscape(string(id))+"/undealt/suits", nil, &out); err != nil {
		return domain.UndealtBySuit{}, fmt.Errorf("undealt by suit: %w", err)
	}
	return out, nil
}

func (c *Client) UndealtByCard(ctx context.Context, id domain.GameID) (domain.UndealtByCard, error) {
	var out domain.UndealtByCard
	if err := c.do(ctx, http.MethodGet, "/games/"+url.PathEscape(string(id))+"/undealt/cards", nil, &out); err != nil {
		return domain.UndealtByCard{}, fmt.Errorf("undealt by card: %w", err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	request.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	c.log.WithFields(logrus.Fields{
		"method":     method,
		"path":       path,
		"status":     response.StatusCode,
		"elapsed":    time.Since(start).Round(time.Millisecond).String(),
		"request_id": requestID,
	}).Debug("game service request")

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return errorFromResponse(response.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
