package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/engine"
	"github.com/Toastaspiring/game-themed-to-do-list/internal/ui"
)

func newAddCmd() *cobra.Command {
	var category string
	var theme string
	var icon string
	var milestone bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cat, err := engine.ParseCategory(category)
			if err != nil {
				return err
			}
			th, err := engine.ParseTheme(theme)
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.AddTask(ctx, engine.AddTaskInput{
				Title:       args[0],
				Category:    cat,
				Theme:       th,
				Icon:        icon,
				IsMilestone: milestone,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.IconPlus,
				ui.CategoryIcon(string(res.Task.Category)),
				res.Task.Title,
				ui.Muted.Render("("+shortID(res.Task.ID)+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (daily|goal|custom)")
	cmd.Flags().StringVar(&theme, "theme", "", "Theme tag (health, learning, reading, …)")
	cmd.Flags().StringVar(&icon, "icon", "", "Display icon")
	cmd.Flags().BoolVar(&milestone, "milestone", false, "Mark as a milestone task")

	return cmd
}

// shortID shows enough of a UUID to paste back as a prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
