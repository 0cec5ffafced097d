package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Toastaspiring/game-themed-to-do-list/internal/geo"
	"github.com/Toastaspiring/game-themed-to-do-list/internal/notify"
	"github.com/Toastaspiring/game-themed-to-do-list/internal/storage"
)

// Service owns the task ledger, achievement state and streak counters.
// There is exactly one logical writer; methods are not safe for concurrent
// use from multiple goroutines.
type Service struct {
	store    storage.Store
	clock    Clock
	geo      geo.Resolver
	notifier notify.Notifier
	log      zerolog.Logger

	tasks        []Task
	achievements []Achievement
	streak       StreakState
	themeCounts  map[Theme]int
	visited      []string
	seasons      []Season
}

// Deps are the injected capabilities. Store is required; everything else
// has a working default.
type Deps struct {
	Store    storage.Store
	Clock    Clock
	Geo      geo.Resolver
	Notifier notify.Notifier
	Logger   zerolog.Logger
}

// NewService loads persisted state from the store, merging achievements
// with the canonical catalog. Malformed blobs fall back to defaults; only
// store I/O failures are returned as errors.
func NewService(ctx context.Context, d Deps) (*Service, error) {
	if d.Store == nil {
		return nil, fmt.Errorf("engine: store is required")
	}
	if d.Clock == nil {
		d.Clock = SystemClock()
	}
	if d.Geo == nil {
		d.Geo = geo.Static{}
	}
	if d.Notifier == nil {
		d.Notifier = notify.Nop{}
	}

	s := &Service{
		store:       d.Store,
		clock:       d.Clock,
		geo:         d.Geo,
		notifier:    d.Notifier,
		log:         d.Logger,
		themeCounts: map[Theme]int{},
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) load(ctx context.Context) error {
	found, err := s.loadJSON(ctx, storage.KeyTasks, &s.tasks)
	if err != nil {
		return err
	}
	if !found {
		s.tasks = s.starterTasks()
		if err := s.saveTasks(ctx); err != nil {
			return err
		}
	}

	var stored []Achievement
	if _, err := s.loadJSON(ctx, storage.KeyAchievements, &stored); err != nil {
		return err
	}
	s.achievements = MergeCatalog(stored)

	if _, err := s.loadJSON(ctx, storage.KeyStreak, &s.streak.Current); err != nil {
		return err
	}
	if _, err := s.loadJSON(ctx, storage.KeyStreakUpdatedToday, &s.streak.UpdatedToday); err != nil {
		return err
	}
	if _, err := s.loadJSON(ctx, storage.KeyLastActiveDay, &s.streak.LastActiveDay); err != nil {
		return err
	}
	if _, err := s.loadJSON(ctx, storage.KeyVisitedLocations, &s.visited); err != nil {
		return err
	}
	if _, err := s.loadJSON(ctx, storage.KeyThemeCounts, &s.themeCounts); err != nil {
		return err
	}
	if s.themeCounts == nil {
		s.themeCounts = map[Theme]int{}
	}
	if _, err := s.loadJSON(ctx, storage.KeyCompletedSeasons, &s.seasons); err != nil {
		return err
	}
	return nil
}

// loadJSON reads a blob into v. A corrupt blob is logged and treated as
// absent so the caller continues with defaults.
func (s *Service) loadJSON(ctx context.Context, key string, v any) (bool, error) {
	raw, err := s.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupt stored state, using defaults")
		return false, nil
	}
	return true, nil
}

func (s *Service) saveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.store.Set(ctx, key, raw)
}

func (s *Service) saveTasks(ctx context.Context) error {
	return s.saveJSON(ctx, storage.KeyTasks, s.tasks)
}

func (s *Service) saveAchievements(ctx context.Context) error {
	return s.saveJSON(ctx, storage.KeyAchievements, s.achievements)
}

func (s *Service) saveStreak(ctx context.Context) error {
	if err := s.saveJSON(ctx, storage.KeyStreak, s.streak.Current); err != nil {
		return err
	}
	if err := s.saveJSON(ctx, storage.KeyStreakUpdatedToday, s.streak.UpdatedToday); err != nil {
		return err
	}
	return s.saveJSON(ctx, storage.KeyLastActiveDay, s.streak.LastActiveDay)
}

func (s *Service) saveContext(ctx context.Context) error {
	if err := s.saveJSON(ctx, storage.KeyVisitedLocations, s.visited); err != nil {
		return err
	}
	if err := s.saveJSON(ctx, storage.KeyThemeCounts, s.themeCounts); err != nil {
		return err
	}
	return s.saveJSON(ctx, storage.KeyCompletedSeasons, s.seasons)
}

// starterTasks seeds a first run with a few example dailies and a goal.
func (s *Service) starterTasks() []Task {
	now := s.clock.Now()
	mk := func(title string, cat Category, theme Theme, icon string) Task {
		return Task{
			ID:        uuid.NewString(),
			Title:     title,
			Category:  cat,
			CreatedAt: now,
			Theme:     theme,
			Icon:      icon,
		}
	}
	return []Task{
		mk("Morning Exercise", CategoryDaily, ThemeHealth, "dumbbell"),
		mk("Read for 20 minutes", CategoryDaily, ThemeReading, "book"),
		mk("Drink 8 glasses of water", CategoryDaily, ThemeHealth, "glass-water"),
		mk("Learn something new", CategoryGoal, ThemeLearning, "lightbulb"),
		mk("Meditate for 10 minutes", CategoryDaily, ThemeMindfulness, "brain"),
	}
}

// Tasks returns a copy of the ledger.
func (s *Service) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Achievements returns a copy of the achievement state.
func (s *Service) Achievements() []Achievement {
	out := make([]Achievement, len(s.achievements))
	copy(out, s.achievements)
	return out
}

// Streak returns the aggregate streak state.
func (s *Service) Streak() StreakState {
	return s.streak
}

// TaskByPrefix resolves an id or unambiguous id prefix. It returns nil when
// nothing matches and an error when the prefix is ambiguous.
func (s *Service) TaskByPrefix(prefix string) (*Task, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, nil
	}
	var match *Task
	for i := range s.tasks {
		if strings.HasPrefix(s.tasks[i].ID, prefix) {
			if match != nil {
				return nil, fmt.Errorf("task id prefix %q is ambiguous", prefix)
			}
			t := s.tasks[i]
			match = &t
		}
	}
	return match, nil
}

func (s *Service) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", fmt.Errorf("title is required")
	}
	return t, nil
}
