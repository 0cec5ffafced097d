package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/ui"
)

func newBadgesCmd() *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Show unlocked achievement badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			all := svc.Achievements()
			unlocked := 0
			for _, a := range all {
				if a.Unlocked {
					unlocked++
				}
			}

			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Badges (%d/%d)", unlocked, len(all))))
			for _, a := range all {
				switch {
				case a.Unlocked:
					line := fmt.Sprintf("%s %s %s %s", a.Icon, ui.Gold.Render(a.Title), ui.Muted.Render("—"), a.Description)
					if a.UnlockedAt != nil {
						line += " " + ui.Muted.Render("("+a.UnlockedAt.Format("2006-01-02")+")")
					}
					fmt.Fprintln(out, "  "+line)
				case showAll:
					line := fmt.Sprintf("🔒 %s %s %s", ui.Muted.Render(a.Title), ui.Muted.Render("—"), ui.Muted.Render(a.Description))
					if a.MaxProgress > 0 {
						line += " " + ui.Muted.Render(fmt.Sprintf("[%d/%d]", a.Progress, a.MaxProgress))
					}
					fmt.Fprintln(out, "  "+line)
				}
			}
			if unlocked == 0 && !showAll {
				fmt.Fprintln(out, ui.Muted.Render("  Nothing unlocked yet. Complete a task to get started."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include locked badges with progress")

	return cmd
}
