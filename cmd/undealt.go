package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zlarouche/deck-of-cards/internal/adapters/render/table"
)

func newUndealtCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undealt",
		Short: "Show what remains in the active game's shoe",
	}

	cmd.AddCommand(
		newUndealtSuitsCmd(app),
		newUndealtCardsCmd(app),
	)

	return cmd
}

func newUndealtSuitsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suits",
		Short: "Remaining card count per suit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			counts, err := app.service.UndealtBySuit(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), table.RenderSuitCounts(counts))
			return err
		},
	}
}

func newUndealtCardsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "Remaining card count per suit and face value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			counts, err := app.service.UndealtByCard(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), table.RenderCardCounts(counts))
			return err
		},
	}
}
