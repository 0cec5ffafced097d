package engine

import (
	"context"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/geo"
	"github.com/Toastaspiring/game-themed-to-do-list/internal/notify"
)

type ToggleResult struct {
	Task      Task
	Completed bool // state after the toggle
	Unlocked  []Achievement
	Streak    int
	// StreakChanged is true when this completion incremented the aggregate
	// streak.
	StreakChanged bool
}

// ToggleTask flips a task's completion state. Completing runs the full
// achievement pipeline against the post-mutation ledger; un-completing only
// clears the completion fields and never rolls back achievements, counters
// or streaks. An unknown id is a silent no-op.
func (s *Service) ToggleTask(ctx context.Context, id string) (*ToggleResult, error) {
	i := s.taskIndex(id)
	if i < 0 {
		return nil, nil
	}

	if s.tasks[i].Completed {
		s.tasks[i].Completed = false
		s.tasks[i].CompletedAt = nil
		s.tasks[i].CompletionLocation = ""
		if err := s.saveTasks(ctx); err != nil {
			return nil, err
		}
		return &ToggleResult{Task: s.tasks[i], Completed: false, Streak: s.streak.Current}, nil
	}

	now := s.clock.Now()
	today := s.clock.Today()

	// The only external call in the pipeline. It resolves before any state
	// is mutated, so a slow lookup can never leave the ledger half-written.
	region := s.geo.CurrentRegion(ctx)

	t := &s.tasks[i]
	t.Completed = true
	completedAt := now
	t.CompletedAt = &completedAt
	t.CompletionLocation = region

	if t.Category == CategoryDaily {
		if t.LastCompleted == DayKey(now.AddDate(0, 0, -1)) {
			t.Streak++
		} else {
			t.Streak = 1
		}
		t.LastCompleted = today
	}

	if t.Theme != "" {
		s.themeCounts[t.Theme]++
	}
	if region != geo.Unknown && !contains(s.visited, region) {
		s.visited = append(s.visited, region)
	}
	if season := SeasonForMonth(now.Month()); !containsSeason(s.seasons, season) {
		s.seasons = append(s.seasons, season)
	}

	unlocked := s.evalCompletionRules(*t, now)

	streakChanged, streakUnlocks := s.updateAggregateStreak()
	unlocked = append(unlocked, streakUnlocks...)

	if err := s.saveTasks(ctx); err != nil {
		return nil, err
	}
	if err := s.saveAchievements(ctx); err != nil {
		return nil, err
	}
	if err := s.saveStreak(ctx); err != nil {
		return nil, err
	}
	if err := s.saveContext(ctx); err != nil {
		return nil, err
	}

	return &ToggleResult{
		Task:          *t,
		Completed:     true,
		Unlocked:      unlocked,
		Streak:        s.streak.Current,
		StreakChanged: streakChanged,
	}, nil
}

// updateAggregateStreak increments the "all dailies done" streak at most
// once per day. An empty daily list never counts as all-done.
func (s *Service) updateAggregateStreak() (bool, []Achievement) {
	dailies := 0
	for _, t := range s.tasks {
		if t.Category != CategoryDaily {
			continue
		}
		dailies++
		if !t.Completed {
			return false, nil
		}
	}
	if dailies == 0 || s.streak.UpdatedToday {
		return false, nil
	}

	s.streak.Current++
	s.streak.UpdatedToday = true
	if s.streak.Current == 1 {
		s.notifier.StreakChanged(notify.StreakStarted, s.streak.Current)
	} else {
		s.notifier.StreakChanged(notify.StreakIncreased, s.streak.Current)
	}
	return true, s.evalStreakRules()
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsSeason(list []Season, v Season) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
