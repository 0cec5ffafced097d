package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/notify"
)

func TestAggregateStreakIncrementsOncePerDay(t *testing.T) {
	env := newTestEnv(t)
	a := env.add(t, AddTaskInput{Title: "daily A", Category: CategoryDaily})
	b := env.add(t, AddTaskInput{Title: "daily B", Category: CategoryDaily})

	res := env.toggle(t, a.ID)
	if res.StreakChanged {
		t.Fatalf("streak must not change while a daily is still open")
	}
	res = env.toggle(t, b.ID)
	if !res.StreakChanged || res.Streak != 1 {
		t.Fatalf("completing the last daily should start the streak, got %+v", res)
	}
	if env.notes.streakCount(notify.StreakStarted) != 1 {
		t.Fatalf("expected exactly one streak-started notification")
	}

	// Re-reaching the all-complete state the same day must not double count.
	env.toggle(t, b.ID) // uncomplete
	res = env.toggle(t, b.ID)
	if res.StreakChanged || res.Streak != 1 {
		t.Fatalf("same-day re-completion must not increment the streak, got %+v", res)
	}
}

func TestAggregateStreakAcrossDays(t *testing.T) {
	env := newTestEnv(t)
	task := env.add(t, AddTaskInput{Title: "only daily", Category: CategoryDaily})

	for day := 1; day <= 3; day++ {
		res := env.toggle(t, task.ID)
		if res.Streak != day {
			t.Fatalf("day %d: aggregate streak = %d, want %d", day, res.Streak, day)
		}
		env.clock.nextDay()
		if err := env.svc.StartDay(context.Background()); err != nil {
			t.Fatalf("start day: %v", err)
		}
	}
	if env.notes.streakCount(notify.StreakIncreased) != 2 {
		t.Fatalf("expected two streak-increased notifications, got %v", env.notes.streaks)
	}
}

func TestZeroDailyTasksNeverStreak(t *testing.T) {
	env := newTestEnv(t)
	task := env.add(t, AddTaskInput{Title: "a goal", Category: CategoryGoal})

	res := env.toggle(t, task.ID)
	if res.StreakChanged || res.Streak != 0 {
		t.Fatalf("no daily tasks: the vacuous all-complete must not streak, got %+v", res)
	}
	if len(env.notes.streaks) != 0 {
		t.Fatalf("no streak notifications expected, got %v", env.notes.streaks)
	}
}

func TestStreakAchievementThresholds(t *testing.T) {
	env := newTestEnv(t)
	task := env.add(t, AddTaskInput{Title: "the one daily", Category: CategoryDaily})

	for day := 1; day <= 7; day++ {
		env.toggle(t, task.ID)
		env.clock.nextDay()
		if err := env.svc.StartDay(context.Background()); err != nil {
			t.Fatalf("start day: %v", err)
		}
	}
	if !env.ach(t, achWeekStreak).Unlocked {
		t.Fatalf("Consistency Champion should unlock at a 7-day streak")
	}
	if env.ach(t, achFortnightStreak).Unlocked {
		t.Fatalf("Fortnight Warrior must wait for day 14")
	}
	if got := env.ach(t, achFortnightStreak).Progress; got != 7 {
		t.Fatalf("Fortnight Warrior progress = %d, want 7", got)
	}
}

func TestStreakSurvivesExactlyOneDayGap(t *testing.T) {
	env := newTestEnv(t)
	task := env.add(t, AddTaskInput{Title: "daily", Category: CategoryDaily})

	env.toggle(t, task.ID) // streak 1
	env.clock.nextDay()
	if err := env.svc.StartDay(context.Background()); err != nil {
		t.Fatalf("start day: %v", err)
	}
	if env.svc.Streak().Current != 1 {
		t.Fatalf("a single-day boundary must not reset the streak, got %d", env.svc.Streak().Current)
	}
	res := env.toggle(t, task.ID)
	if res.Streak != 2 {
		t.Fatalf("streak = %d, want 2", res.Streak)
	}
}

func TestPerTaskAndAggregateStreaksDiverge(t *testing.T) {
	env := newTestEnv(t)
	keeper := env.add(t, AddTaskInput{Title: "kept up", Category: CategoryDaily})
	slacker := env.add(t, AddTaskInput{Title: "neglected", Category: CategoryDaily})

	// Three days: only the first daily is completed, so the aggregate
	// streak never starts while the per-task streak grows.
	for day := 1; day <= 3; day++ {
		env.toggle(t, keeper.ID)
		env.clock.nextDay()
		if err := env.svc.StartDay(context.Background()); err != nil {
			t.Fatalf("start day: %v", err)
		}
	}

	var got Task
	for _, task := range env.svc.Tasks() {
		if task.ID == keeper.ID {
			got = task
		}
	}
	if got.Streak != 3 {
		t.Fatalf("per-task streak = %d, want 3", got.Streak)
	}
	if env.svc.Streak().Current != 0 {
		t.Fatalf("aggregate streak = %d, want 0 while %q stays open", env.svc.Streak().Current, slacker.Title)
	}
}

func TestStreakStateRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 2; i++ {
		task := env.add(t, AddTaskInput{Title: fmt.Sprintf("daily %d", i), Category: CategoryDaily})
		env.toggle(t, task.ID)
	}
	if env.svc.Streak().Current != 1 {
		t.Fatalf("setup: streak = %d, want 1", env.svc.Streak().Current)
	}

	env.reload(t)
	got := env.svc.Streak()
	if got.Current != 1 || !got.UpdatedToday {
		t.Fatalf("streak state lost across reload: %+v", got)
	}
}
