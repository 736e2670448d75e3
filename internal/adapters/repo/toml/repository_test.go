package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlarouche/deck-of-cards/internal/domain"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	config := viper.New()
	config.Set("session.path", sessionPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)

	return repo, sessionPath
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	state := domain.SessionState{
		ActiveGameID:   "g1",
		ActiveGameName: "friday night",
		AssignedDecks:  []domain.DeckID{"d1", "d2"},
		DeckLabels:     map[domain.DeckID]int{"d3": 3, "d4": 4},
		SyncedAt:       time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Save(context.Background(), state))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, got.SyncedAt.Equal(state.SyncedAt))
	got.SyncedAt = state.SyncedAt
	assert.Equal(t, state, got)
}

func TestRepositoryLoadMissingFileIsEmptySession(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	state, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.ActiveGameID)
	assert.Empty(t, state.AssignedDecks)
	assert.Empty(t, state.DeckLabels)
}

func TestRepositorySaveOverwrites(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.SessionState{
		ActiveGameID:  "g1",
		AssignedDecks: []domain.DeckID{"d1"},
		DeckLabels:    map[domain.DeckID]int{},
	}))
	require.NoError(t, repo.Save(ctx, domain.SessionState{
		DeckLabels: map[domain.DeckID]int{"d2": 2},
	}))

	state, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.ActiveGameID)
	assert.Empty(t, state.AssignedDecks)
	assert.Equal(t, map[domain.DeckID]int{"d2": 2}, state.DeckLabels)
}

func TestRepositoryDropsDecksWithoutGame(t *testing.T) {
	t.Parallel()

	repo, sessionPath := newTestRepository(t)

	// A hand-edited file can violate the "no game, no decks" invariant;
	// loading repairs it.
	raw := "version = 1\n\n[game]\nid = \"\"\n\n[[decks]]\nid = \"d1\"\n"
	require.NoError(t, os.WriteFile(sessionPath, []byte(raw), 0o600))

	state, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.AssignedDecks)
}

func TestRepositoryRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	repo, sessionPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(sessionPath, []byte("version = 99\n"), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported session schema version")
}

func TestRepositoryFilePermissions(t *testing.T) {
	t.Parallel()

	repo, sessionPath := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), domain.SessionState{ActiveGameID: "g1"}))

	info, err := os.Stat(sessionPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, repo.Save(ctx, domain.SessionState{}))
	_, err := repo.Load(ctx)
	require.Error(t, err)
}
