package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zlarouche/deck-of-cards/internal/adapters/render/table"
)

func newHandCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hand PLAYER",
		Short: "Show a player's held cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := app.service.PlayerHand(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			title := fmt.Sprintf("Hand — %s", args[0])
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table.RenderCards(title, cards))
			return err
		},
	}
}
