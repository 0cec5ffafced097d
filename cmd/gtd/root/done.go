package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id (or unambiguous prefix) is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := svc.TaskByPrefix(args[0])
			if err != nil {
				return err
			}
			if task == nil {
				return fmt.Errorf("no task with id %q", args[0])
			}
			res, err := svc.ToggleTask(ctx, task.ID)
			if err != nil {
				return err
			}
			if res == nil {
				return fmt.Errorf("no task with id %q", args[0])
			}

			if res.Completed {
				line := ui.IconDone + " " + res.Task.Title
				if res.Task.Streak > 1 {
					line += " " + ui.Warn.Render(fmt.Sprintf("%s %d", ui.IconFlame, res.Task.Streak))
				}
				if res.Task.CompletionLocation != "" {
					line += " " + ui.Muted.Render(ui.IconPin+" "+res.Task.CompletionLocation)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.IconUndone+" "+res.Task.Title+" "+ui.Muted.Render("(back to pending)"))
			}
			return nil
		},
	}

	return cmd
}
