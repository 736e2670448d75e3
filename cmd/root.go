package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cards",
		Short:         "cards: terminal client for the deck-of-cards game service",
		Long:          "cards manages games, decks, and players on a remote card-game service and renders leaderboards, hands, and shoe breakdowns in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newGameCmd(app),
		newDeckCmd(app),
		newPlayerCmd(app),
		newDealCmd(app),
		newShuffleCmd(app),
		newHandCmd(app),
		newUndealtCmd(app),
		newStatusCmd(app),
		newWatchCmd(app),
	)

	return rootCmd
}
