package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newShuffleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle",
		Short: "Shuffle the active game's shoe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Shuffling...", func(ctx context.Context) error {
				return app.service.ShuffleShoe(ctx)
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "shoe shuffled")
			return err
		},
	}
}
