// Package tui is the interactive dashboard behind `cards watch`. Each panel
// is an independent view loader: it refetches its slice whenever the active
// game or the refresh epoch changes and replaces its local state wholesale.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zlarouche/deck-of-cards/internal/application"
	"github.com/zlarouche/deck-of-cards/internal/domain"
	"github.com/zlarouche/deck-of-cards/internal/loader"
	"github.com/zlarouche/deck-of-cards/internal/session"
)

const (
	bannerTTL     = 3 * time.Second
	epochInterval = 500 * time.Millisecond
)

type banner struct {
	id    int
	text  string
	isErr bool
}

type guards struct {
	games   loader.Guard
	decks   loader.Guard
	players loader.Guard
	hand    loader.Guard
	suits   loader.Guard
	cards   loader.Guard
}

// Model hosts one loader per panel plus the shared session store. All state
// transitions happen on the bubbletea update goroutine; fetches run as
// commands and come back as messages.
type Model struct {
	svc    *application.Service
	store  *session.Store
	ctx    context.Context
	loads  *guards
	spin   spinner.Model
	styles styles

	seenEpoch uint64

	games      []domain.Game
	decks      *application.DeckOverview
	players    []domain.Player
	selected   string
	hand       []domain.Card
	suitCounts *domain.UndealtBySuit
	cardCounts *domain.UndealtByCard

	banner   *banner
	bannerID int
	busy     bool
	width    int
}

func NewModel(ctx context.Context, svc *application.Service) Model {
	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		svc:       svc,
		store:     svc.Store(),
		ctx:       ctx,
		loads:     &guards{},
		spin:      spin,
		styles:    newStyles(),
		seenEpoch: svc.Store().Epoch(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refreshAll(), epochTick())
}

func epochTick() tea.Cmd {
	return tea.Tick(epochInterval, func(time.Time) tea.Msg {
		return epochTickMsg{}
	})
}

// refreshAll retriggers every loader. Superseded fetches are not cancelled;
// the sequence guard discards whichever responses land too late.
func (m *Model) refreshAll() tea.Cmd {
	cmds := []tea.Cmd{m.loadGames(), m.loadDecks()}
	if gameID, _ := m.store.ActiveGame(); gameID != "" {
		cmds = append(cmds, m.loadPlayers(), m.loadSuits(), m.loadCardCounts())
		if m.selected != "" {
			cmds = append(cmds, m.loadHand(m.selected))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) loadGames() tea.Cmd {
	seq := m.loads.games.Next()
	return func() tea.Msg {
		games, err := m.svc.Games(m.ctx)
		return gamesLoadedMsg{seq: seq, games: games, err: err}
	}
}

func (m *Model) loadDecks() tea.Cmd {
	seq := m.loads.decks.Next()
	return func() tea.Msg {
		decks, err := m.svc.Decks(m.ctx)
		return decksLoadedMsg{seq: seq, decks: decks, err: err}
	}
}

func (m *Model) loadPlayers() tea.Cmd {
	seq := m.loads.players.Next()
	return func() tea.Msg {
		players, err := m.svc.Players(m.ctx)
		return playersLoadedMsg{seq: seq, players: players, err: err}
	}
}

func (m *Model) loadHand(player string) tea.Cmd {
	seq := m.loads.hand.Next()
	return func() tea.Msg {
		cards, err := m.svc.PlayerHand(m.ctx, player)
		return handLoadedMsg{seq: seq, player: player, cards: cards, err: err}
	}
}

func (m *Model) loadSuits() tea.Cmd {
	seq := m.loads.suits.Next()
	return func() tea.Msg {
		counts, err := m.svc.UndealtBySuit(m.ctx)
		return suitsLoadedMsg{seq: seq, counts: counts, err: err}
	}
}

func (m *Model) loadCardCounts() tea.Cmd {
	seq := m.loads.cards.Next()
	return func() tea.Msg {
		counts, err := m.svc.UndealtByCard(m.ctx)
		return cardCountsLoadedMsg{seq: seq, counts: counts, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case epochTickMsg:
		// The explicit subscription: refetch when the epoch moved since the
		// last observed value.
		if epoch := m.store.Epoch(); epoch != m.seenEpoch {
			m.seenEpoch = epoch
			return m, tea.Batch(m.refreshAll(), epochTick())
		}
		return m, epochTick()

	case gamesLoadedMsg:
		if !m.loads.games.Admit(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.games = nil
			return m, nil
		}
		m.games = msg.games
		return m, nil

	case decksLoadedMsg:
		if !m.loads.decks.Admit(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.decks = nil
			return m, nil
		}
		decks := msg.decks
		m.decks = &decks
		return m, nil

	case playersLoadedMsg:
		if !m.loads.players.Admit(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.players = nil
			m.clearSelection()
			return m, nil
		}
		m.players = msg.players
		cmd := m.reconcileSelection()
		return m, cmd

	case handLoadedMsg:
		if !m.loads.hand.Admit(msg.seq) {
			return m, nil
		}
		if msg.err != nil || msg.player != m.selected {
			m.hand = nil
			return m, nil
		}
		m.hand = msg.cards
		return m, nil

	case suitsLoadedMsg:
		if !m.loads.suits.Admit(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.suitCounts = nil
			return m, nil
		}
		counts := msg.counts
		m.suitCounts = &counts
		return m, nil

	case cardCountsLoadedMsg:
		if !m.loads.cards.Admit(msg.seq) {
			return m, nil
		}
		if msg.err != nil {
			m.cardCounts = nil
			return m, nil
		}
		counts := msg.counts
		m.cardCounts = &counts
		return m, nil

	case mutationDoneMsg:
		m.busy = false
		text := msg.label + " done"
		if msg.err != nil {
			text = fmt.Sprintf("%s failed: %v", msg.label, msg.err)
		}
		cmd := m.showBanner(text, msg.err != nil)
		return m, cmd

	case bannerExpiredMsg:
		if m.banner != nil && m.banner.id == msg.id {
			m.banner = nil
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return *m, tea.Quit

	case "x":
		m.banner = nil
		return *m, nil

	case "r":
		// Manual invalidation uses the same signal every mutation does.
		m.store.BumpRefresh()
		return *m, nil

	case "up", "k":
		m.moveSelection(-1)
		cmd := m.maybeLoadHand()
		return *m, cmd

	case "down", "j":
		m.moveSelection(1)
		cmd := m.maybeLoadHand()
		return *m, cmd

	case "n":
		cmd := m.runMutation("create deck", func() error {
			_, err := m.svc.CreateDeck(m.ctx)
			return err
		})
		return *m, cmd

	case "a":
		deck, ok := m.firstUnassignedDeck()
		if !ok {
			cmd := m.showBanner("no unassigned deck to attach", true)
			return *m, cmd
		}
		cmd := m.runMutation("attach deck", func() error {
			return m.svc.AddDeckToGame(m.ctx, deck)
		})
		return *m, cmd

	case "d":
		if m.selected == "" {
			cmd := m.showBanner("select a player first", true)
			return *m, cmd
		}
		player := m.selected
		cmd := m.runMutation("deal", func() error {
			_, err := m.svc.DealCards(m.ctx, player, 1)
			return err
		})
		return *m, cmd

	case "s":
		cmd := m.runMutation("shuffle", func() error {
			return m.svc.ShuffleShoe(m.ctx)
		})
		return *m, cmd

	case "R":
		cmd := m.runMutation("reset game", func() error {
			return m.svc.ResetGame(m.ctx)
		})
		return *m, cmd
	}

	return *m, nil
}

func (m *Model) runMutation(label string, fn func() error) tea.Cmd {
	if m.busy {
		return nil
	}
	m.busy = true
	return func() tea.Msg {
		return mutationDoneMsg{label: label, err: fn()}
	}
}

func (m *Model) showBanner(text string, isErr bool) tea.Cmd {
	m.bannerID++
	id := m.bannerID
	m.banner = &banner{id: id, text: text, isErr: isErr}
	return tea.Tick(bannerTTL, func(time.Time) tea.Msg {
		return bannerExpiredMsg{id: id}
	})
}

// reconcileSelection applies the default-selection rule: pick the first
// player in server order when nothing is selected, clear hand state when the
// list empties, and re-pick when the selected player disappeared.
func (m *Model) reconcileSelection() tea.Cmd {
	if len(m.players) == 0 {
		m.clearSelection()
		return nil
	}

	if m.selected == "" || !m.hasPlayer(m.selected) {
		m.selected = m.players[0].Name
		return m.loadHand(m.selected)
	}
	return nil
}

func (m *Model) clearSelection() {
	m.selected = ""
	m.hand = nil
}

func (m *Model) hasPlayer(name string) bool {
	for _, player := range m.players {
		if player.Name == name {
			return true
		}
	}
	return false
}

func (m *Model) moveSelection(delta int) {
	if len(m.players) == 0 {
		return
	}
	index := 0
	for i, player := range m.players {
		if player.Name == m.selected {
			index = i
			break
		}
	}
	index += delta
	if index < 0 {
		index = 0
	}
	if index >= len(m.players) {
		index = len(m.players) - 1
	}
	m.selected = m.players[index].Name
}

func (m *Model) maybeLoadHand() tea.Cmd {
	if m.selected == "" {
		return nil
	}
	return m.loadHand(m.selected)
}

func (m *Model) firstUnassignedDeck() (domain.DeckID, bool) {
	if m.decks == nil || len(m.decks.Unassigned) == 0 {
		return "", false
	}
	return m.decks.Unassigned[0].ID, true
}

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, svc *application.Service) error {
	p := tea.NewProgram(NewModel(ctx, svc), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
