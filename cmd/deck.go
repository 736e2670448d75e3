package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zlarouche/deck-of-cards/internal/domain"
)

func newDeckCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Create decks and attach them to the active game's shoe",
	}

	cmd.AddCommand(
		newDeckCreateCmd(app),
		newDeckListCmd(app),
		newDeckAddCmd(app),
	)

	return cmd
}

func newDeckCreateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a standard 52-card deck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry, err := app.service.CreateDeck(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created Deck #%d (%s)\n", entry.Label, entry.ID)
			return err
		},
	}
}

func newDeckListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List unassigned decks and the active game's shoe decks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := app.service.Decks(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(overview.Unassigned) == 0 {
				fmt.Fprintln(out, "no unassigned decks")
			}
			for _, entry := range overview.Unassigned {
				fmt.Fprintf(out, "Deck #%d\t%s\n", entry.Label, entry.ID)
			}

			if len(overview.Assigned) > 0 {
				fmt.Fprintf(out, "in shoe: %d deck(s)\n", len(overview.Assigned))
				for _, id := range overview.Assigned {
					fmt.Fprintf(out, "  %s\n", id)
				}
			}

			return nil
		},
	}
}

func newDeckAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add DECK_ID",
		Short: "Attach an unassigned deck to the active game's shoe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.AddDeckToGame(cmd.Context(), domain.DeckID(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "deck %s added to game\n", args[0])
			return err
		},
	}
}
