package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "gtd",
	Short:         "Game-themed to-do list — tasks, streaks and badges",
	Long:          "gtd is a local-first to-do list that turns daily tasks into streaks and unlockable achievement badges.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newRmCmd(),
		newListCmd(),
		newStatusCmd(),
		newBadgesCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
