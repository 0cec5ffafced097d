package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
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
			// The console notifier announces the deletion.
			return svc.DeleteTask(ctx, task.ID)
		},
	}

	return cmd
}
