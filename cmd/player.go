package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zlarouche/deck-of-cards/internal/adapters/render/table"
)

func newPlayerCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Manage the active game's players",
	}

	cmd.AddCommand(
		newPlayerAddCmd(app),
		newPlayerRemoveCmd(app),
		newPlayerListCmd(app),
	)

	return cmd
}

func newPlayerAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add a player to the active game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.AddPlayer(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "player %s added\n", args[0])
			return err
		},
	}
}

func newPlayerRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a player; their cards go back to the shoe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.RemovePlayer(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "player %s removed\n", args[0])
			return err
		},
	}
}

func newPlayerListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"leaderboard"},
		Short:   "Show the leaderboard, ranked by hand value",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := app.service.Leaderboard(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), table.RenderLeaderboard(rows, true))
			return err
		},
	}
}
