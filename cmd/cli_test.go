package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, home, baseURL string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("CARDS_API_BASE_URL", baseURL)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// newGameServer fakes the REST surface the commands touch; unrouted paths
// fail the test loudly.
func newGameServer(t *testing.T) (*httptest.Server, *http.ServeMux) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, mux
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "http://127.0.0.1:0/api", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestGameCreateRequiresName(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "http://127.0.0.1:0/api", "game", "create")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"name\" not set")
}

func TestGameCreateActivatesSession(t *testing.T) {
	home := t.TempDir()
	server, mux := newGameServer(t)

	mux.HandleFunc("POST /api/games", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "friday night", body["name"])
		_, _ = w.Write([]byte(`{"gameId":"g1","name":"friday night"}`))
	})

	stdout, _, err := executeCLI(t, home, server.URL+"/api", "game", "create", "--name", "friday night")
	require.NoError(t, err)
	assert.Contains(t, stdout, "created game friday night (g1)")

	// The active game survives into the next invocation via the session file.
	mux.HandleFunc("GET /api/games", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"g1","name":"friday night","shoeSize":0,"playerCount":0}]`))
	})

	stdout, _, err = executeCLI(t, home, server.URL+"/api", "game", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "* g1")
}

func TestDeckCreateNumbersDecksStably(t *testing.T) {
	home := t.TempDir()
	server, mux := newGameServer(t)

	nextDeck := []string{"deck-aaa", "deck-bbb"}
	mux.HandleFunc("POST /api/decks", func(w http.ResponseWriter, r *http.Request) {
		id := nextDeck[0]
		nextDeck = nextDeck[1:]
		_, _ = w.Write([]byte(`{"deckId":"` + id + `"}`))
	})

	stdout, _, err := executeCLI(t, home, server.URL+"/api", "deck", "create")
	require.NoError(t, err)
	assert.Contains(t, stdout, "created Deck #1 (deck-aaa)")

	stdout, _, err = executeCLI(t, home, server.URL+"/api", "deck", "create")
	require.NoError(t, err)
	assert.Contains(t, stdout, "created Deck #2 (deck-bbb)")

	// deck-aaa is gone from the unassigned list; deck-bbb keeps #2.
	mux.HandleFunc("GET /api/decks/unassigned", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["deck-bbb"]`))
	})

	stdout, _, err = executeCLI(t, home, server.URL+"/api", "deck", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Deck #2\tdeck-bbb")
	assert.NotContains(t, stdout, "Deck #1")
}

func TestDeckAddWithoutActiveGame(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "http://127.0.0.1:0/api", "deck", "add", "deck-aaa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active game selected")
}

func TestDealValidatesBeforeNetwork(t *testing.T) {
	// Base URL points nowhere; validation must fail before any dial.
	_, _, err := executeCLI(t, t.TempDir(), "http://127.0.0.1:0/api", "deal", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active game selected")
}

func TestPlayerLeaderboardOrdering(t *testing.T) {
	home := t.TempDir()
	server, mux := newGameServer(t)

	mux.HandleFunc("POST /api/games", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"gameId":"g1","name":"g"}`))
	})
	mux.HandleFunc("GET /api/games/g1/players", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"alice","handValue":30,"handSize":2},{"name":"bob","handValue":30,"handSize":1},{"name":"carol","handValue":10,"handSize":3}]`))
	})

	_, _, err := executeCLI(t, home, server.URL+"/api", "game", "create", "--name", "g")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL+"/api", "player", "list")
	require.NoError(t, err)

	idxAlice := bytes.Index([]byte(stdout), []byte("alice"))
	idxBob := bytes.Index([]byte(stdout), []byte("bob"))
	idxCarol := bytes.Index([]byte(stdout), []byte("carol"))
	assert.Greater(t, idxAlice, -1)
	assert.Greater(t, idxBob, idxAlice, "tie between alice and bob keeps server order")
	assert.Greater(t, idxCarol, idxBob)
}

func TestServerErrorSurfacesMessage(t *testing.T) {
	home := t.TempDir()
	server, mux := newGameServer(t)

	mux.HandleFunc("POST /api/games", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"gameId":"g1","name":"g"}`))
	})
	mux.HandleFunc("POST /api/games/g1/players", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"player already exists"}`))
	})

	_, _, err := executeCLI(t, home, server.URL+"/api", "game", "create", "--name", "g")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, server.URL+"/api", "player", "add", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player already exists")
}

func TestDeleteActiveGameClearsSession(t *testing.T) {
	home := t.TempDir()
	server, mux := newGameServer(t)

	mux.HandleFunc("POST /api/games", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"gameId":"g1","name":"g"}`))
	})
	mux.HandleFunc("DELETE /api/games/g1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /api/games", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, _, err := executeCLI(t, home, server.URL+"/api", "game", "create", "--name", "g")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, server.URL+"/api", "game", "delete")
	require.NoError(t, err)

	// With the session cleared, game-scoped commands validate again.
	_, _, err = executeCLI(t, home, server.URL+"/api", "player", "add", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active game selected")
}

func TestStatusJSONOutput(t *testing.T) {
	home := t.TempDir()
	server, mux := newGameServer(t)

	mux.HandleFunc("GET /api/games", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"g1","name":"g","shoeSize":52,"playerCount":1}]`))
	})
	mux.HandleFunc("GET /api/decks/unassigned", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	stdout, _, err := executeCLI(t, home, server.URL+"/api", "status", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"g1\"")
}

func TestUndealtSuitsTable(t *testing.T) {
	home := t.TempDir()
	server, mux := newGameServer(t)

	mux.HandleFunc("POST /api/games", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"gameId":"g1","name":"g"}`))
	})
	mux.HandleFunc("GET /api/games/g1/undealt/suits", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"suitCounts":{"HEARTS":13,"SPADES":13,"CLUBS":13,"DIAMONDS":13}}`))
	})

	_, _, err := executeCLI(t, home, server.URL+"/api", "game", "create", "--name", "g")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL+"/api", "undealt", "suits")
	require.NoError(t, err)
	assert.Contains(t, stdout, "HEARTS")
	assert.Contains(t, stdout, "52")
}
