package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zlarouche/deck-of-cards/internal/adapters/tui"
)

func newWatchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Interactive dashboard over the active game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.Run(cmd.Context(), app.service)
		},
	}
}
