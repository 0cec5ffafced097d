package engine

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestCompletionCountThresholds(t *testing.T) {
	env := newTestEnv(t)

	task := env.add(t, AddTaskInput{Title: "first"})
	env.toggle(t, task.ID)
	if !env.ach(t, achFirstSteps).Unlocked {
		t.Fatalf("First Steps should unlock on the 1st completion")
	}
	if env.ach(t, achTaskMaster).Unlocked {
		t.Fatalf("Task Master must not unlock before 10 completions")
	}

	env.addAndComplete(t, 9, CategoryCustom)
	if !env.ach(t, achTaskMaster).Unlocked {
		t.Fatalf("Task Master should unlock on the 10th completion")
	}

	env.addAndComplete(t, 40, CategoryCustom)
	if !env.ach(t, achTaskVeteran).Unlocked {
		t.Fatalf("Task Veteran should unlock on the 50th completion")
	}

	// Exactly once each, despite 50 evaluations.
	for _, want := range []string{"First Steps", "Task Master", "Task Veteran"} {
		n := 0
		for _, title := range env.notes.unlocks {
			if title == want {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("%s unlocked %d times, want exactly 1", want, n)
		}
	}
}

func TestProgressAdvancesBelowMaxWhileLocked(t *testing.T) {
	env := newTestEnv(t)
	env.addAndComplete(t, 9, CategoryCustom)

	a := env.ach(t, achTaskMaster)
	if a.Unlocked {
		t.Fatalf("Task Master should still be locked at 9 completions")
	}
	if a.Progress != 9 {
		t.Fatalf("progress = %d, want 9", a.Progress)
	}

	env.addAndComplete(t, 1, CategoryCustom)
	a = env.ach(t, achTaskMaster)
	if !a.Unlocked || a.Progress != a.MaxProgress {
		t.Fatalf("after unlock progress = %d, want %d", a.Progress, a.MaxProgress)
	}
}

func TestEarlyRiserAndNightOwl(t *testing.T) {
	env := newTestEnv(t)

	env.clock.now = time.Date(2024, time.April, 10, 7, 30, 0, 0, time.Local)
	task := env.add(t, AddTaskInput{Title: "dawn"})
	env.toggle(t, task.ID)
	if !env.ach(t, achEarlyRiser).Unlocked {
		t.Fatalf("Early Riser should unlock before 8AM")
	}
	if env.ach(t, achNightOwl).Unlocked {
		t.Fatalf("Night Owl must not unlock in the morning")
	}

	env.clock.now = time.Date(2024, time.April, 10, 22, 5, 0, 0, time.Local)
	task = env.add(t, AddTaskInput{Title: "dusk"})
	env.toggle(t, task.ID)
	if !env.ach(t, achNightOwl).Unlocked {
		t.Fatalf("Night Owl should unlock at 22:05")
	}
}

func TestLatencyRulesAreMutuallyExclusive(t *testing.T) {
	t.Run("within five minutes", func(t *testing.T) {
		env := newTestEnv(t)
		task := env.add(t, AddTaskInput{Title: "sprint"})
		env.clock.advance(4 * time.Minute)
		env.toggle(t, task.ID)
		if !env.ach(t, achQuickStarter).Unlocked {
			t.Fatalf("Quick Starter should unlock at 4 minutes")
		}
		if env.ach(t, achTimeOptimizer).Unlocked {
			t.Fatalf("Time Optimizer must not unlock together with Quick Starter")
		}
	})

	t.Run("within ten minutes", func(t *testing.T) {
		env := newTestEnv(t)
		task := env.add(t, AddTaskInput{Title: "jog"})
		env.clock.advance(7 * time.Minute)
		env.toggle(t, task.ID)
		if env.ach(t, achQuickStarter).Unlocked {
			t.Fatalf("Quick Starter must not unlock at 7 minutes")
		}
		if !env.ach(t, achTimeOptimizer).Unlocked {
			t.Fatalf("Time Optimizer should unlock at 7 minutes")
		}
	})

	t.Run("past ten minutes", func(t *testing.T) {
		env := newTestEnv(t)
		task := env.add(t, AddTaskInput{Title: "stroll"})
		env.clock.advance(11 * time.Minute)
		env.toggle(t, task.ID)
		if env.ach(t, achQuickStarter).Unlocked || env.ach(t, achTimeOptimizer).Unlocked {
			t.Fatalf("no latency achievement past 10 minutes")
		}
	})
}

func TestPerTaskStreakConsecutiveDays(t *testing.T) {
	env := newTestEnv(t)
	task := env.add(t, AddTaskInput{Title: "journal", Category: CategoryDaily})

	for day := 1; day <= 3; day++ {
		res := env.toggle(t, task.ID)
		if res.Task.Streak != day {
			t.Fatalf("day %d: streak = %d, want %d", day, res.Task.Streak, day)
		}
		env.clock.nextDay()
		if err := env.svc.StartDay(context.Background()); err != nil {
			t.Fatalf("start day: %v", err)
		}
	}
	if !env.ach(t, achHabitForming).Unlocked {
		t.Fatalf("Habit Forming should unlock at a 3-day task streak")
	}
}

func TestPerTaskStreakResetsAfterGap(t *testing.T) {
	env := newTestEnv(t)
	task := env.add(t, AddTaskInput{Title: "journal", Category: CategoryDaily})

	res := env.toggle(t, task.ID)
	if res.Task.Streak != 1 {
		t.Fatalf("streak = %d, want 1", res.Task.Streak)
	}

	// Skip a day: last completed D, now completing on D+2.
	env.clock.nextDay()
	env.clock.nextDay()
	if err := env.svc.StartDay(context.Background()); err != nil {
		t.Fatalf("start day: %v", err)
	}
	res = env.toggle(t, task.ID)
	if res.Task.Streak != 1 {
		t.Fatalf("streak after gap = %d, want reset to 1", res.Task.Streak)
	}
}

func TestThemeThresholds(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 3; i++ {
		task := env.add(t, AddTaskInput{Title: fmt.Sprintf("practice #%d", i+1), Theme: ThemeMusic})
		env.toggle(t, task.ID)
	}
	if !env.ach(t, "achievement-36").Unlocked {
		t.Fatalf("Melody Maker should unlock after 3 music completions")
	}
	if env.ach(t, "achievement-32").Unlocked {
		t.Fatalf("Bookworm must not unlock without reading completions")
	}
}

func TestThemeCountsOnlyCountCompletions(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 5; i++ {
		env.add(t, AddTaskInput{Title: fmt.Sprintf("song #%d", i+1), Theme: ThemeMusic})
	}
	if env.ach(t, "achievement-36").Unlocked {
		t.Fatalf("theme achievements must not unlock from creation alone")
	}
}

func TestCreationRules(t *testing.T) {
	env := newTestEnv(t)

	themes := []Theme{ThemeHealth, ThemeMusic, ThemeFilm, ThemeCooking}
	for i, theme := range themes {
		env.add(t, AddTaskInput{Title: fmt.Sprintf("task %d", i), Theme: theme})
	}
	if env.ach(t, achTaskPioneer).Unlocked {
		t.Fatalf("Task Pioneer must wait for 5 distinct themes")
	}
	env.add(t, AddTaskInput{Title: "fifth theme", Theme: ThemeReading})
	if !env.ach(t, achTaskPioneer).Unlocked {
		t.Fatalf("Task Pioneer should unlock at 5 distinct themes")
	}

	env.add(t, AddTaskInput{Title: "a daily", Category: CategoryDaily})
	if env.ach(t, achBalanceMaster).Unlocked {
		t.Fatalf("Balance Master must wait for all three categories")
	}
	env.add(t, AddTaskInput{Title: "a goal", Category: CategoryGoal})
	if !env.ach(t, achBalanceMaster).Unlocked {
		t.Fatalf("Balance Master should unlock once daily, goal and custom coexist")
	}

	env.add(t, AddTaskInput{Title: "eighth"})
	env.add(t, AddTaskInput{Title: "ninth"})
	if env.ach(t, achTaskCreator).Unlocked {
		t.Fatalf("Task Creator must wait for the 10th created task")
	}
	env.add(t, AddTaskInput{Title: "tenth"})
	if !env.ach(t, achTaskCreator).Unlocked {
		t.Fatalf("Task Creator should unlock on the 10th created task")
	}
}

func TestGoalGetterAndPriorityManager(t *testing.T) {
	env := newTestEnv(t)

	// Two custom completions first so the goal run is what matters.
	env.addAndComplete(t, 2, CategoryCustom)

	for i := 0; i < 3; i++ {
		task := env.add(t, AddTaskInput{Title: fmt.Sprintf("goal #%d", i+1), Category: CategoryGoal})
		env.clock.advance(time.Minute)
		env.toggle(t, task.ID)
	}
	if !env.ach(t, achPriorityManager).Unlocked {
		t.Fatalf("Priority Manager should unlock after 3 consecutive goal completions")
	}
	if env.ach(t, achGoalGetter).Unlocked {
		t.Fatalf("Goal Getter must wait for 5 completed goals")
	}

	env.addAndComplete(t, 2, CategoryGoal)
	if !env.ach(t, achGoalGetter).Unlocked {
		t.Fatalf("Goal Getter should unlock at 5 completed goals")
	}
}

func TestPriorityManagerBrokenRun(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 2; i++ {
		task := env.add(t, AddTaskInput{Title: fmt.Sprintf("goal #%d", i+1), Category: CategoryGoal})
		env.clock.advance(time.Minute)
		env.toggle(t, task.ID)
	}
	task := env.add(t, AddTaskInput{Title: "interruption", Category: CategoryCustom})
	env.clock.advance(time.Minute)
	env.toggle(t, task.ID)

	if env.ach(t, achPriorityManager).Unlocked {
		t.Fatalf("a non-goal completion breaks the goal run")
	}
}

func TestMilestoneMaker(t *testing.T) {
	env := newTestEnv(t)
	plain := env.add(t, AddTaskInput{Title: "ordinary"})
	env.toggle(t, plain.ID)
	if env.ach(t, achMilestoneMaker).Unlocked {
		t.Fatalf("Milestone Maker requires a milestone task")
	}

	milestone := env.add(t, AddTaskInput{Title: "graduate", IsMilestone: true})
	env.toggle(t, milestone.ID)
	if !env.ach(t, achMilestoneMaker).Unlocked {
		t.Fatalf("Milestone Maker should unlock for any milestone completion")
	}
}

func TestPerfectionistNeedsMoreThanThreeTasks(t *testing.T) {
	env := newTestEnv(t)
	env.addAndComplete(t, 3, CategoryCustom)
	if env.ach(t, achPerfectionist).Unlocked {
		t.Fatalf("Perfectionist requires more than 3 tasks")
	}

	env.addAndComplete(t, 1, CategoryCustom)
	if !env.ach(t, achPerfectionist).Unlocked {
		t.Fatalf("Perfectionist should unlock with 4/4 tasks done")
	}
}

func TestPerfectionistBlockedByIncompleteTask(t *testing.T) {
	env := newTestEnv(t)
	env.add(t, AddTaskInput{Title: "left undone"})
	env.addAndComplete(t, 4, CategoryCustom)
	if env.ach(t, achPerfectionist).Unlocked {
		t.Fatalf("Perfectionist requires every task to be complete")
	}
}

func TestEfficiencyExpertCountsSingleDay(t *testing.T) {
	env := newTestEnv(t)
	env.addAndComplete(t, 4, CategoryCustom)

	// A completion on another day must not count toward today.
	env.clock.nextDay()
	if err := env.svc.StartDay(context.Background()); err != nil {
		t.Fatalf("start day: %v", err)
	}
	env.addAndComplete(t, 4, CategoryCustom)
	if env.ach(t, achEfficiencyExpert).Unlocked {
		t.Fatalf("4 completions today must not unlock Efficiency Expert")
	}
	env.addAndComplete(t, 1, CategoryCustom)
	if !env.ach(t, achEfficiencyExpert).Unlocked {
		t.Fatalf("5 completions in one day should unlock Efficiency Expert")
	}
}

func TestGlobalAchieverIgnoresUnknownAndDuplicates(t *testing.T) {
	env := newTestEnv(t)
	env.geo.regions = []string{"Bavaria", "Unknown", "Bavaria", "Tyrol", "Alsace"}

	for i := 0; i < 4; i++ {
		task := env.add(t, AddTaskInput{Title: fmt.Sprintf("trip #%d", i+1)})
		env.toggle(t, task.ID)
	}
	if env.ach(t, achGlobalAchiever).Unlocked {
		t.Fatalf("only 2 distinct regions so far (Unknown and repeats excluded)")
	}

	task := env.add(t, AddTaskInput{Title: "third region"})
	env.toggle(t, task.ID)
	if !env.ach(t, achGlobalAchiever).Unlocked {
		t.Fatalf("Global Achiever should unlock at 3 distinct regions")
	}
}

func TestSeasonalPlanner(t *testing.T) {
	env := newTestEnv(t)

	dates := []time.Time{
		time.Date(2024, time.April, 10, 12, 0, 0, 0, time.Local),   // spring
		time.Date(2024, time.July, 10, 12, 0, 0, 0, time.Local),    // summer
		time.Date(2024, time.October, 10, 12, 0, 0, 0, time.Local), // autumn
	}
	for i, d := range dates {
		env.clock.now = d
		if err := env.svc.StartDay(context.Background()); err != nil {
			t.Fatalf("start day: %v", err)
		}
		task := env.add(t, AddTaskInput{Title: fmt.Sprintf("season #%d", i+1)})
		env.toggle(t, task.ID)
	}
	if env.ach(t, achSeasonalPlanner).Unlocked {
		t.Fatalf("three seasons are not enough")
	}

	env.clock.now = time.Date(2025, time.January, 10, 12, 0, 0, 0, time.Local) // winter
	if err := env.svc.StartDay(context.Background()); err != nil {
		t.Fatalf("start day: %v", err)
	}
	task := env.add(t, AddTaskInput{Title: "winter one"})
	env.toggle(t, task.ID)
	if !env.ach(t, achSeasonalPlanner).Unlocked {
		t.Fatalf("Seasonal Planner should unlock once all four seasons have a completion")
	}
}
