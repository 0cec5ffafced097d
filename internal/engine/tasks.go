package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type AddTaskInput struct {
	Title       string
	Category    Category
	Theme       Theme
	Icon        string
	IsMilestone bool
}

type AddTaskResult struct {
	Task     Task
	Unlocked []Achievement
}

// AddTask appends a new incomplete task to the ledger and runs the
// creation-based achievement rules.
func (s *Service) AddTask(ctx context.Context, in AddTaskInput) (*AddTaskResult, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	category := in.Category
	if category == "" {
		category = DefaultCategory
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %q", category)
	}
	if in.Theme != "" && !in.Theme.IsValid() {
		return nil, fmt.Errorf("invalid theme: %q", in.Theme)
	}

	task := Task{
		ID:          uuid.NewString(),
		Title:       title,
		Category:    category,
		CreatedAt:   s.clock.Now(),
		Theme:       in.Theme,
		Icon:        in.Icon,
		IsMilestone: in.IsMilestone,
	}
	s.tasks = append(s.tasks, task)

	unlocked := s.evalCreationRules()

	if err := s.saveTasks(ctx); err != nil {
		return nil, err
	}
	if err := s.saveAchievements(ctx); err != nil {
		return nil, err
	}

	s.notifier.TaskAdded(task.Title)
	return &AddTaskResult{Task: task, Unlocked: unlocked}, nil
}

// DeleteTask removes a task by id. An unknown id is a no-op, not an error,
// and deletion never touches achievements or streaks.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	i := s.taskIndex(id)
	if i < 0 {
		return nil
	}
	title := s.tasks[i].Title
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	if err := s.saveTasks(ctx); err != nil {
		return err
	}
	s.notifier.TaskDeleted(title)
	return nil
}

// ResetDailyTasks clears completion state of every daily task, preserving
// per-task streaks and last-completed markers. The calendar gate invokes it
// once per new day.
func (s *Service) ResetDailyTasks(ctx context.Context) error {
	for i := range s.tasks {
		if s.tasks[i].Category != CategoryDaily {
			continue
		}
		s.tasks[i].Completed = false
		s.tasks[i].CompletedAt = nil
		s.tasks[i].CompletionLocation = ""
	}
	return s.saveTasks(ctx)
}
