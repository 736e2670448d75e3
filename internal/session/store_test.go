package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlarouche/deck-of-cards/internal/domain"
	"github.com/zlarouche/deck-of-cards/internal/labels"
)

func TestClearActiveGameDropsDecks(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetActiveGame("g1", "friday night")
	store.AddDeck("d1")
	store.AddDeck("d2")

	store.ClearActiveGame()

	id, name := store.ActiveGame()
	assert.Empty(t, id)
	assert.Empty(t, name)
	assert.Empty(t, store.AssignedDecks())
}

func TestReplaceDecksOverwritesWholesale(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetActiveGame("g1", "g")
	store.AddDeck("d1")

	store.ReplaceDecks([]domain.DeckID{"d2", "d3"})
	assert.Equal(t, []domain.DeckID{"d2", "d3"}, store.AssignedDecks())

	store.ReplaceDecks(nil)
	assert.Empty(t, store.AssignedDecks())
}

func TestBumpRefreshIsMonotonic(t *testing.T) {
	t.Parallel()

	store := NewStore()
	require.Zero(t, store.Epoch())

	store.BumpRefresh()
	store.BumpRefresh()
	store.BumpRefresh()

	assert.Equal(t, uint64(3), store.Epoch())
}

func TestAssignLabelIsStableAndIncreasing(t *testing.T) {
	t.Parallel()

	store := NewStore()
	first := store.AssignLabel("d1")
	second := store.AssignLabel("d2")
	again := store.AssignLabel("d1")

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, first, again)
}

func TestSetDeckLabelsCopies(t *testing.T) {
	t.Parallel()

	store := NewStore()
	mapping := labels.Mapping{"d1": 1}
	store.SetDeckLabels(mapping)

	mapping["d2"] = 2
	assert.Equal(t, labels.Mapping{"d1": 1}, store.DeckLabels())
}

func TestStateSnapshotsSession(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.SetActiveGame("g1", "friday night")
	store.ReplaceDecks([]domain.DeckID{"d1"})
	store.AssignLabel("d2")
	store.BumpRefresh()

	state := store.State()
	assert.Equal(t, domain.GameID("g1"), state.ActiveGameID)
	assert.Equal(t, "friday night", state.ActiveGameName)
	assert.Equal(t, []domain.DeckID{"d1"}, state.AssignedDecks)
	assert.Equal(t, map[domain.DeckID]int{"d2": 1}, state.DeckLabels)
}

func TestRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	original := NewStore()
	original.SetActiveGame("g1", "g")
	original.ReplaceDecks([]domain.DeckID{"d1", "d2"})
	original.AssignLabel("d3")

	restored := Restore(original.State())

	assert.Equal(t, original.State(), restored.State())
	// The epoch is process-local and starts over.
	assert.Zero(t, restored.Epoch())
}
