package notify

import (
	"fmt"
	"io"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/ui"
)

// Console renders notifications as toast-style lines on a writer.
type Console struct {
	Out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) TaskAdded(title string) {
	fmt.Fprintln(c.Out, ui.Good.Render(ui.IconPlus+" New Task Added")+" "+ui.Muted.Render(fmt.Sprintf("'%s' has been added to your tasks", title)))
}

func (c *Console) TaskDeleted(title string) {
	fmt.Fprintln(c.Out, ui.Warn.Render(ui.IconTrash+" Task Deleted")+" "+ui.Muted.Render(fmt.Sprintf("'%s' has been removed", title)))
}

func (c *Console) StreakChanged(kind StreakKind, days int) {
	switch kind {
	case StreakStarted:
		fmt.Fprintln(c.Out, ui.Gold.Render(ui.IconFlame+" Streak Started!")+" "+ui.Muted.Render("Keep completing all daily tasks to build your streak!"))
	case StreakIncreased:
		fmt.Fprintln(c.Out, ui.Gold.Render(ui.IconFlame+" Streak Increased!")+" "+ui.Muted.Render(fmt.Sprintf("You're on a %d day streak! Keep it up!", days)))
	case StreakReset:
		fmt.Fprintln(c.Out, ui.Bad.Render(ui.IconSnooze+" Streak Reset")+" "+ui.Muted.Render("You missed a day! Your streak has been reset."))
	}
}

func (c *Console) AchievementUnlocked(title, description string) {
	fmt.Fprintln(c.Out, ui.Toast.Render(ui.Gold.Render(ui.IconTrophy+" Achievement Unlocked!")+" "+title+": "+ui.Muted.Render(description)))
}
