package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zlarouche/deck-of-cards/internal/adapters/render/table"
	"github.com/zlarouche/deck-of-cards/internal/domain"
)

func newDealCmd(app *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "deal PLAYER",
		Short: "Deal cards from the shoe to a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cards []domain.Card
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Dealing...", func(ctx context.Context) error {
				var dealErr error
				cards, dealErr = app.service.DealCards(ctx, args[0], count)
				return dealErr
			})
			if err != nil {
				return err
			}

			title := fmt.Sprintf("Dealt to %s", args[0])
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table.RenderCards(title, cards))
			return err
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "Number of cards to deal")

	return cmd
}
