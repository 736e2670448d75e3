package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlarouche/deck-of-cards/internal/application"
	"github.com/zlarouche/deck-of-cards/internal/domain"
	"github.com/zlarouche/deck-of-cards/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	store := session.NewStore()
	svc := application.NewService(nil, store, nil, nil)
	return NewModel(context.Background(), svc)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestPlayersLoadSelectsFirstPlayer(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	seq := m.loads.players.Next()

	m, cmd := update(t, m, playersLoadedMsg{seq: seq, players: []domain.Player{
		{Name: "alice", HandValue: 30},
		{Name: "bob", HandValue: 10},
	}})

	assert.Equal(t, "alice", m.selected)
	assert.NotNil(t, cmd, "selecting a player must trigger a hand fetch")
}

func TestPlayersLoadKeepsExistingSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.selected = "bob"
	seq := m.loads.players.Next()

	m, cmd := update(t, m, playersLoadedMsg{seq: seq, players: []domain.Player{
		{Name: "alice"},
		{Name: "bob"},
	}})

	assert.Equal(t, "bob", m.selected)
	assert.Nil(t, cmd)
}

func TestEmptyPlayerListClearsSelectionAndHand(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.selected = "alice"
	m.hand = []domain.Card{{DisplayName: "Ace of Spades"}}
	seq := m.loads.players.Next()

	m, _ = update(t, m, playersLoadedMsg{seq: seq, players: nil})

	assert.Empty(t, m.selected)
	assert.Empty(t, m.hand)
}

func TestStalePlayersResponseIsDropped(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	first := m.loads.players.Next()
	second := m.loads.players.Next()

	// The later fetch resolves first.
	m, _ = update(t, m, playersLoadedMsg{seq: second, players: []domain.Player{{Name: "fresh"}}})
	m, _ = update(t, m, playersLoadedMsg{seq: first, players: []domain.Player{{Name: "stale"}}})

	require.Len(t, m.players, 1)
	assert.Equal(t, "fresh", m.players[0].Name)
}

func TestHandResponseForDeselectedPlayerIsIgnored(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.selected = "bob"
	seq := m.loads.hand.Next()

	m, _ = update(t, m, handLoadedMsg{seq: seq, player: "alice", cards: []domain.Card{{DisplayName: "x"}}})

	assert.Empty(t, m.hand)
}

func TestBackgroundLoadErrorFallsBackToEmptyView(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.games = []domain.Game{{ID: "g1"}}
	seq := m.loads.games.Next()

	m, _ = update(t, m, gamesLoadedMsg{seq: seq, err: assert.AnError})

	assert.Empty(t, m.games)
}

func TestBannerExpiryIgnoresSupersededBanner(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	_ = m.showBanner("first", false)
	firstID := m.banner.id
	_ = m.showBanner("second", false)

	m, _ = update(t, m, bannerExpiredMsg{id: firstID})
	require.NotNil(t, m.banner)
	assert.Equal(t, "second", m.banner.text)

	m, _ = update(t, m, bannerExpiredMsg{id: m.banner.id})
	assert.Nil(t, m.banner)
}

func TestEpochTickTriggersRefreshOnChange(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.store.BumpRefresh()

	m, cmd := update(t, m, epochTickMsg{})

	assert.Equal(t, m.store.Epoch(), m.seenEpoch)
	assert.NotNil(t, cmd)
}

func TestMoveSelectionClamps(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.players = []domain.Player{{Name: "alice"}, {Name: "bob"}}
	m.selected = "alice"

	m.moveSelection(-1)
	assert.Equal(t, "alice", m.selected)

	m.moveSelection(1)
	assert.Equal(t, "bob", m.selected)

	m.moveSelection(1)
	assert.Equal(t, "bob", m.selected)
}
