package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/engine"
	"github.com/Toastaspiring/game-themed-to-do-list/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show streak and progress summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			today := engine.DayKey(time.Now())

			tasks := svc.Tasks()
			var dailies, dailiesDone, completed, doneToday int
			for _, t := range tasks {
				if t.Category == engine.CategoryDaily {
					dailies++
					if t.Completed {
						dailiesDone++
					}
				}
				if t.Completed {
					completed++
				}
				if t.CompletedOn(today) {
					doneToday++
				}
			}

			streak := svc.Streak()
			streakLine := ui.Muted.Render("no streak yet")
			if streak.Current > 0 {
				streakLine = ui.Warn.Render(fmt.Sprintf("%s %d day(s)", ui.IconFlame, streak.Current))
				if streak.UpdatedToday {
					streakLine += " " + ui.Good.Render("(counted today)")
				}
			}

			unlocked := 0
			all := svc.Achievements()
			for _, a := range all {
				if a.Unlocked {
					unlocked++
				}
			}

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Status"))
			fmt.Fprintln(out, ui.LabelValue("Daily streak", streakLine))
			fmt.Fprintln(out, ui.LabelValue("Dailies", fmt.Sprintf("%d/%d done", dailiesDone, dailies)))
			fmt.Fprintln(out, ui.LabelValue("Completed today", doneToday))
			fmt.Fprintln(out, ui.LabelValue("Completed overall", fmt.Sprintf("%d of %d", completed, len(tasks))))
			fmt.Fprintln(out, ui.LabelValue("Badges", fmt.Sprintf("%s %d/%d", ui.IconTrophy, unlocked, len(all))))
			return nil
		},
	}

	return cmd
}
