package engine

import (
	"sort"
	"time"
)

// Threshold tables. Each row is an independent one-shot rule; comparisons
// are >= so a count that skips past the exact value cannot strand an
// unlock, and the monotonic unlock keeps every rule exactly-once.

var completionThresholds = []struct {
	Count int
	ID    string
}{
	{1, achFirstSteps},
	{10, achTaskMaster},
	{50, achTaskVeteran},
}

var streakThresholds = []struct {
	Days int
	ID   string
}{
	{7, achWeekStreak},
	{14, achFortnightStreak},
	{30, achMonthStreak},
}

var themeThresholds = map[Theme]struct {
	Count int
	ID    string
}{
	ThemeHealth:      {15, "achievement-22"},
	ThemeLearning:    {10, "achievement-18"},
	ThemeCreativity:  {10, "achievement-25"},
	ThemeSocial:      {5, "achievement-26"},
	ThemeFinance:     {8, "achievement-27"},
	ThemeTechnology:  {7, "achievement-28"},
	ThemeOutdoor:     {5, "achievement-29"},
	ThemeCooking:     {6, "achievement-30"},
	ThemeMindfulness: {10, "achievement-31"},
	ThemeReading:     {5, "achievement-32"},
	ThemeMusic:       {3, "achievement-36"},
	ThemeFilm:        {4, "achievement-37"},
	ThemePet:         {10, "achievement-38"},
	ThemeGardening:   {5, "achievement-35"},
	ThemeShopping:    {8, "achievement-40"},
}

const (
	earlyRiserBefore  = 8
	nightOwlFrom      = 22
	quickStarterMins  = 5.0
	timeOptimizerMins = 10.0
	distinctRegions   = 3
	distinctThemes    = 5
	goalGetterCount   = 5
	perfectionistMin  = 4 // ledger size must exceed 3
	efficiencyPerDay  = 5
	priorityRunLength = 3
	habitFormingDays  = 3
)

// unlock marks the achievement unlocked if it is still locked and emits the
// notification. Returns nil when nothing changed, so callers can collect
// only fresh unlocks. Already-unlocked achievements are never re-unlocked.
func (s *Service) unlock(id string) *Achievement {
	for i := range s.achievements {
		if s.achievements[i].ID != id {
			continue
		}
		if s.achievements[i].Unlocked {
			return nil
		}
		now := s.clock.Now()
		s.achievements[i].Unlocked = true
		s.achievements[i].UnlockedAt = &now
		if s.achievements[i].MaxProgress > 0 {
			s.achievements[i].Progress = s.achievements[i].MaxProgress
		}
		a := s.achievements[i]
		s.notifier.AchievementUnlocked(a.Title, a.Description)
		return &a
	}
	return nil
}

// advanceProgress records partial progress toward a locked counting
// achievement for display purposes. Progress never reaches MaxProgress
// before the unlock itself fires, and never moves backwards.
func (s *Service) advanceProgress(id string, value int) {
	for i := range s.achievements {
		if s.achievements[i].ID != id {
			continue
		}
		a := &s.achievements[i]
		if a.Unlocked || a.MaxProgress <= 0 {
			return
		}
		if value > a.MaxProgress-1 {
			value = a.MaxProgress - 1
		}
		if value > a.Progress {
			a.Progress = value
		}
		return
	}
}

// collector gathers freshly unlocked achievements during one trigger.
type collector struct {
	unlocked []Achievement
}

func (c *collector) add(a *Achievement) {
	if a != nil {
		c.unlocked = append(c.unlocked, *a)
	}
}

// evalCreationRules runs after a task is appended to the ledger.
func (s *Service) evalCreationRules() []Achievement {
	var c collector

	created := len(s.tasks)
	s.advanceProgress(achTaskCreator, created)
	if created >= 10 {
		c.add(s.unlock(achTaskCreator))
	}

	themes := map[Theme]bool{}
	for _, t := range s.tasks {
		if t.Theme != "" {
			themes[t.Theme] = true
		}
	}
	s.advanceProgress(achTaskPioneer, len(themes))
	if len(themes) >= distinctThemes {
		c.add(s.unlock(achTaskPioneer))
	}

	if s.hasCategory(CategoryDaily) && s.hasCategory(CategoryGoal) && s.hasCategory(CategoryCustom) {
		c.add(s.unlock(achBalanceMaster))
	}

	return c.unlocked
}

// evalCompletionRules runs after a completion has been written into the
// ledger, so every count below already includes the triggering task.
func (s *Service) evalCompletionRules(t Task, now time.Time) []Achievement {
	var c collector
	today := DayKey(now)

	// Time of day.
	if now.Hour() < earlyRiserBefore {
		c.add(s.unlock(achEarlyRiser))
	}
	if now.Hour() >= nightOwlFrom {
		c.add(s.unlock(achNightOwl))
	}

	// Creation-to-completion latency; the two rules are mutually exclusive.
	minutes := now.Sub(t.CreatedAt).Minutes()
	if minutes <= quickStarterMins {
		c.add(s.unlock(achQuickStarter))
	} else if minutes <= timeOptimizerMins {
		c.add(s.unlock(achTimeOptimizer))
	}

	// Per-theme completion counter.
	if t.Theme != "" {
		if rule, ok := themeThresholds[t.Theme]; ok {
			count := s.themeCounts[t.Theme]
			s.advanceProgress(rule.ID, count)
			if count >= rule.Count {
				c.add(s.unlock(rule.ID))
			}
		}
	}

	// Per-task daily streak.
	if t.Category == CategoryDaily {
		s.advanceProgress(achHabitForming, t.Streak)
		if t.Streak >= habitFormingDays {
			c.add(s.unlock(achHabitForming))
		}
	}

	// Milestone flag.
	if t.IsMilestone {
		c.add(s.unlock(achMilestoneMaker))
	}

	// Completed goal count.
	goals := s.countCompleted(CategoryGoal)
	s.advanceProgress(achGoalGetter, goals)
	if goals >= goalGetterCount {
		c.add(s.unlock(achGoalGetter))
	}

	// Total completion thresholds.
	done := s.countCompleted("")
	for _, rule := range completionThresholds {
		s.advanceProgress(rule.ID, done)
		if done >= rule.Count {
			c.add(s.unlock(rule.ID))
		}
	}

	// Three most recent completions all goals.
	if s.recentCompletionsAllGoals(priorityRunLength) {
		c.add(s.unlock(achPriorityManager))
	}

	// Whole ledger done today.
	if len(s.tasks) >= perfectionistMin && s.allCompleted() {
		c.add(s.unlock(achPerfectionist))
	}

	// Completions on this calendar day.
	todayCount := s.completedOn(today)
	s.advanceProgress(achEfficiencyExpert, todayCount)
	if todayCount >= efficiencyPerDay {
		c.add(s.unlock(achEfficiencyExpert))
	}

	// Visited regions.
	s.advanceProgress(achGlobalAchiever, len(s.visited))
	if len(s.visited) >= distinctRegions {
		c.add(s.unlock(achGlobalAchiever))
	}

	// Seasons.
	s.advanceProgress(achSeasonalPlanner, len(s.seasons))
	if len(s.seasons) >= 4 {
		c.add(s.unlock(achSeasonalPlanner))
	}

	return c.unlocked
}

// evalStreakRules runs after the aggregate streak was incremented.
func (s *Service) evalStreakRules() []Achievement {
	var c collector
	for _, rule := range streakThresholds {
		s.advanceProgress(rule.ID, s.streak.Current)
		if s.streak.Current >= rule.Days {
			c.add(s.unlock(rule.ID))
		}
	}
	return c.unlocked
}

func (s *Service) hasCategory(cat Category) bool {
	for _, t := range s.tasks {
		if t.Category == cat {
			return true
		}
	}
	return false
}

// countCompleted counts completed tasks, optionally restricted to a
// category ("" means all).
func (s *Service) countCompleted(cat Category) int {
	n := 0
	for _, t := range s.tasks {
		if t.Completed && (cat == "" || t.Category == cat) {
			n++
		}
	}
	return n
}

func (s *Service) allCompleted() bool {
	for _, t := range s.tasks {
		if !t.Completed {
			return false
		}
	}
	return len(s.tasks) > 0
}

func (s *Service) completedOn(day string) int {
	n := 0
	for _, t := range s.tasks {
		if t.CompletedOn(day) {
			n++
		}
	}
	return n
}

// recentCompletionsAllGoals reports whether the n most recent completions
// (by CompletedAt descending) are all goal tasks.
func (s *Service) recentCompletionsAllGoals(n int) bool {
	var done []Task
	for _, t := range s.tasks {
		if t.Completed && t.CompletedAt != nil {
			done = append(done, t)
		}
	}
	if len(done) < n {
		return false
	}
	sort.Slice(done, func(i, j int) bool {
		return done[i].CompletedAt.After(*done[j].CompletedAt)
	})
	for _, t := range done[:n] {
		if t.Category != CategoryGoal {
			return false
		}
	}
	return true
}
