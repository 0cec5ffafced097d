package engine

import (
	"context"
	"time"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/notify"
)

// StartDay is the calendar gate: it runs the day-rollover logic exactly once
// per new calendar day and is intended to be called once per session, right
// after the service is constructed.
//
// On a new day it resets daily tasks, zeroes the aggregate streak when the
// previous active day was not yesterday, clears the updated-today flag and
// advances the last-active-day marker. It also settles the one rule that
// looks backward across the boundary (Weekend Warrior).
func (s *Service) StartDay(ctx context.Context) error {
	today := s.clock.Today()
	if s.streak.LastActiveDay == today {
		return nil
	}

	now := s.clock.Now()
	yesterday := DayKey(now.AddDate(0, 0, -1))

	// Weekend Warrior reads yesterday's completions, so it has to run
	// before the daily reset wipes them.
	var unlocked []Achievement
	if isWeekend(now) && s.completedOn(yesterday) > 0 {
		if a := s.unlock(achWeekendWarrior); a != nil {
			unlocked = append(unlocked, *a)
		}
	}

	if err := s.ResetDailyTasks(ctx); err != nil {
		return err
	}

	if s.streak.LastActiveDay != yesterday && s.streak.Current > 0 {
		s.streak.Current = 0
		s.notifier.StreakChanged(notify.StreakReset, 0)
	}
	s.streak.UpdatedToday = false
	s.streak.LastActiveDay = today

	if err := s.saveStreak(ctx); err != nil {
		return err
	}
	if len(unlocked) > 0 {
		if err := s.saveAchievements(ctx); err != nil {
			return err
		}
	}
	return nil
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
