package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/engine"
	"github.com/Toastaspiring/game-themed-to-do-list/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			tasks := svc.Tasks()
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No tasks yet. Try: gtd add \"Read a chapter\" -c daily"))
				return nil
			}

			out := cmd.OutOrStdout()
			printGroup(out, "Dailies", engine.CategoryDaily, tasks)
			printGroup(out, "Goals", engine.CategoryGoal, tasks)
			printGroup(out, "Tasks", engine.CategoryCustom, tasks)
			return nil
		},
	}

	return cmd
}

func printGroup(out io.Writer, heading string, category engine.Category, tasks []engine.Task) {
	var group []engine.Task
	for _, t := range tasks {
		if t.Category == category {
			group = append(group, t)
		}
	}
	if len(group) == 0 {
		return
	}

	fmt.Fprintln(out, ui.H2.Render(ui.CategoryIcon(string(category))+" "+heading))
	for _, t := range group {
		line := fmt.Sprintf("%s %s", ui.Checkbox(t.Completed), t.Title)
		if t.Icon != "" {
			line = fmt.Sprintf("%s %s %s", ui.Checkbox(t.Completed), t.Icon, t.Title)
		}
		if t.IsMilestone {
			line += " " + ui.Gold.Render("★")
		}
		if t.Category == engine.CategoryDaily && t.Streak > 0 {
			line += " " + ui.Warn.Render(fmt.Sprintf("%s %d", ui.IconFlame, t.Streak))
		}
		if t.Theme != "" {
			line += " " + ui.Muted.Render("#"+string(t.Theme))
		}
		line += " " + ui.Muted.Render(shortID(t.ID))
		fmt.Fprintln(out, "  "+line)
	}
	fmt.Fprintln(out, "")
}
