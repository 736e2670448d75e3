package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zlarouche/deck-of-cards/internal/adapters/render/table"
	"github.com/zlarouche/deck-of-cards/internal/application"
	"github.com/zlarouche/deck-of-cards/internal/domain"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "One-shot snapshot of games, decks, and the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, err := loadSnapshot(cmd, app)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snapshot)
			}

			rendered, err := table.Render(snapshot, table.RenderOptions{
				ShowDecks:       true,
				ShowLeaderboard: true,
			})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

// loadSnapshot gathers the status view. Games must load; the deck and
// leaderboard slices are passive background loads, so their failures fall
// back to the unavailable/empty representation instead of failing the
// command.
func loadSnapshot(cmd *cobra.Command, app *app) (table.Snapshot, error) {
	ctx := cmd.Context()

	games, err := app.service.Games(ctx)
	if err != nil {
		return table.Snapshot{}, err
	}

	snapshot := table.Snapshot{Games: games}
	snapshot.ActiveGameID, snapshot.ActiveGameName = app.store.ActiveGame()

	if decks, err := app.service.Decks(ctx); err == nil {
		snapshot.Decks = &decks
	}

	if snapshot.ActiveGameID != "" {
		rows, err := app.service.Leaderboard(ctx)
		if err == nil {
			snapshot.Leaderboard = rows
		} else if errors.Is(err, domain.ErrNoActiveGame) {
			snapshot.Leaderboard = []application.LeaderboardRow{}
		}
	}

	return snapshot, nil
}
