package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zlarouche/deck-of-cards/internal/domain"
)

func newGameCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Create, list, select, reset, and delete games",
	}

	cmd.AddCommand(
		newGameCreateCmd(app),
		newGameListCmd(app),
		newGameUseCmd(app),
		newGameResetCmd(app),
		newGameDeleteCmd(app),
	)

	return cmd
}

func newGameCreateCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game and make it the active one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			game, err := app.service.CreateGame(cmd.Context(), name)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created game %s (%s)\n", game.Name, game.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Game name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGameListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List games on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			games, err := app.service.Games(cmd.Context())
			if err != nil {
				return err
			}

			activeID, _ := app.store.ActiveGame()
			for _, game := range games {
				marker := " "
				if game.ID == activeID {
					marker = "*"
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\tshoe=%d\tplayers=%d\n",
					marker, game.ID, game.Name, game.ShoeSize, game.PlayerCount)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newGameUseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use GAME_ID",
		Short: "Switch the active game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := app.service.UseGame(cmd.Context(), domain.GameID(args[0]))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "active game is now %s (%s)\n", game.Name, game.ID)
			return err
		},
	}
}

func newGameResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Return all dealt cards of the active game to the shoe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Resetting game...", func(ctx context.Context) error {
				return app.service.ResetGame(ctx)
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "game reset")
			return err
		},
	}
}

func newGameDeleteCmd(app *app) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a game (defaults to the active game)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.DeleteGame(cmd.Context(), domain.GameID(id)); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "game deleted")
			return err
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Game ID (default: the active game)")

	return cmd
}
