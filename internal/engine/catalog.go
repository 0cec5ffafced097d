package engine

import (
	"time"
)

type AchievementCategory string

const (
	AchievementStreak     AchievementCategory = "streak"
	AchievementCompletion AchievementCategory = "completion"
	AchievementSpecial    AchievementCategory = "special"
)

// Achievement is one unlockable badge. Unlocked is monotonic: once true it
// never reverts. Progress only advances while locked and stays below
// MaxProgress until the unlock fires.
type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	Unlocked    bool                `json:"unlocked"`
	UnlockedAt  *time.Time          `json:"unlockedAt,omitempty"`
	Progress    int                 `json:"progress,omitempty"`
	MaxProgress int                 `json:"maxProgress,omitempty"`
}

// Stable achievement ids referenced by the rules.
const (
	achFirstSteps       = "achievement-1"
	achHabitForming     = "achievement-2"
	achTaskMaster       = "achievement-3"
	achWeekStreak       = "achievement-4"
	achEarlyRiser       = "achievement-5"
	achFortnightStreak  = "achievement-6"
	achMonthStreak      = "achievement-7"
	achGoalGetter       = "achievement-8"
	achPerfectionist    = "achievement-9"
	achNightOwl         = "achievement-10"
	achWeekendWarrior   = "achievement-11"
	achTaskCreator      = "achievement-12"
	achBalanceMaster    = "achievement-13"
	achEfficiencyExpert = "achievement-14"
	achTaskVeteran      = "achievement-15"
	achPriorityManager  = "achievement-16"
	achTimeOptimizer    = "achievement-17"
	achTaskPioneer      = "achievement-20"
	achQuickStarter     = "achievement-21"
	achSeasonalPlanner  = "achievement-23"
	achGlobalAchiever   = "achievement-24"
	achMilestoneMaker   = "achievement-34"
)

type catalogEntry struct {
	id, title, description, icon string
	category                     AchievementCategory
	maxProgress                  int
}

// The canonical catalog. Order matters only for display; identity is the id.
// Entries without a rule (19, 33, 39) exist so stored state written by newer
// catalogs merges cleanly.
var catalog = []catalogEntry{
	{achFirstSteps, "First Steps", "Complete your first task", "Trophy", AchievementCompletion, 1},
	{achHabitForming, "Habit Forming", "Complete the same task 3 days in a row", "Calendar", AchievementStreak, 3},
	{achTaskMaster, "Task Master", "Complete 10 tasks", "CheckCircle", AchievementCompletion, 10},
	{achWeekStreak, "Consistency Champion", "Complete all daily tasks for 7 days straight", "Medal", AchievementStreak, 7},
	{achEarlyRiser, "Early Riser", "Complete a task before 8AM", "Sunrise", AchievementSpecial, 0},
	{achFortnightStreak, "Fortnight Warrior", "Maintain a 14-day streak", "Flame", AchievementStreak, 14},
	{achMonthStreak, "Month Master", "Maintain a 30-day streak", "CalendarClock", AchievementStreak, 30},
	{achGoalGetter, "Goal Getter", "Complete 5 goal tasks", "Target", AchievementCompletion, 5},
	{achPerfectionist, "Perfectionist", "Complete all tasks in your list in a single day", "Star", AchievementSpecial, 0},
	{achNightOwl, "Night Owl", "Complete a task after 10PM", "Moon", AchievementSpecial, 0},
	{achWeekendWarrior, "Weekend Warrior", "Complete tasks on both Saturday and Sunday", "CalendarDays", AchievementSpecial, 0},
	{achTaskCreator, "Task Creator", "Create 10 new tasks", "PenLine", AchievementSpecial, 10},
	{achBalanceMaster, "Balance Master", "Have active tasks in all categories", "Scale", AchievementSpecial, 0},
	{achEfficiencyExpert, "Efficiency Expert", "Complete 5 tasks in a single day", "TimerReset", AchievementSpecial, 5},
	{achTaskVeteran, "Task Veteran", "Complete 50 tasks total", "Award", AchievementCompletion, 50},
	{achPriorityManager, "Priority Manager", "Complete 3 goal tasks in a row", "ListOrdered", AchievementSpecial, 0},
	{achTimeOptimizer, "Time Optimizer", "Complete a task within 10 minutes of creating it", "Timer", AchievementSpecial, 0},
	{"achievement-18", "Knowledge Seeker", "Complete 10 learning tasks", "GraduationCap", AchievementCompletion, 10},
	{"achievement-19", "Fresh Start", "Come back after a break and complete a task", "Sprout", AchievementSpecial, 0},
	{achTaskPioneer, "Task Pioneer", "Create tasks in 5 different themes", "Compass", AchievementSpecial, 5},
	{achQuickStarter, "Quick Starter", "Complete a task within 5 minutes of creating it", "Zap", AchievementSpecial, 0},
	{"achievement-22", "Health Enthusiast", "Complete 15 health tasks", "HeartPulse", AchievementCompletion, 15},
	{achSeasonalPlanner, "Seasonal Planner", "Complete tasks in all four seasons", "Leaf", AchievementSpecial, 4},
	{achGlobalAchiever, "Global Achiever", "Complete tasks in 3 different regions", "Globe", AchievementSpecial, 3},
	{"achievement-25", "Creative Genius", "Complete 10 creative tasks", "Palette", AchievementCompletion, 10},
	{"achievement-26", "Social Butterfly", "Complete 5 social tasks", "Users", AchievementCompletion, 5},
	{"achievement-27", "Financial Wizard", "Complete 8 finance tasks", "DollarSign", AchievementCompletion, 8},
	{"achievement-28", "Tech Guru", "Complete 7 technology tasks", "Laptop", AchievementCompletion, 7},
	{"achievement-29", "Adventurer", "Complete 5 outdoor tasks", "Mountain", AchievementCompletion, 5},
	{"achievement-30", "Chef's Hat", "Complete 6 cooking tasks", "Utensils", AchievementCompletion, 6},
	{"achievement-31", "Mindfulness Master", "Complete 10 mindfulness tasks", "Brain", AchievementCompletion, 10},
	{"achievement-32", "Bookworm", "Complete 5 reading tasks", "BookOpen", AchievementCompletion, 5},
	{"achievement-33", "Habit Architect", "Keep three daily tasks at once", "LayoutGrid", AchievementSpecial, 0},
	{achMilestoneMaker, "Milestone Maker", "Complete a milestone task", "Flag", AchievementSpecial, 0},
	{"achievement-35", "Planting Seeds", "Complete 5 gardening tasks", "Flower", AchievementCompletion, 5},
	{"achievement-36", "Melody Maker", "Complete 3 music tasks", "Music", AchievementCompletion, 3},
	{"achievement-37", "Film Buff", "Complete 4 film tasks", "Film", AchievementCompletion, 4},
	{"achievement-38", "Pet Parent", "Complete 10 pet care tasks", "PawPrint", AchievementCompletion, 10},
	{"achievement-39", "Daily Devotee", "Complete every kind of daily task", "CalendarCheck", AchievementSpecial, 0},
	{"achievement-40", "Shopping Wizard", "Complete 8 shopping tasks", "ShoppingCart", AchievementCompletion, 8},
}

// Catalog returns fresh locked instances of the canonical catalog.
func Catalog() []Achievement {
	out := make([]Achievement, 0, len(catalog))
	for _, e := range catalog {
		out = append(out, Achievement{
			ID:          e.id,
			Title:       e.title,
			Description: e.description,
			Icon:        e.icon,
			Category:    e.category,
			MaxProgress: e.maxProgress,
		})
	}
	return out
}

// MergeCatalog reconciles stored achievement state with the canonical
// catalog: stored entries keep their unlock status and progress, catalog
// entries missing from storage are appended locked. Stored entries whose id
// left the catalog are retained so unlocks are never lost.
func MergeCatalog(stored []Achievement) []Achievement {
	byID := make(map[string]int, len(stored))
	for i, a := range stored {
		byID[a.ID] = i
	}

	merged := make([]Achievement, len(stored))
	copy(merged, stored)
	for _, a := range Catalog() {
		if _, ok := byID[a.ID]; !ok {
			merged = append(merged, a)
		}
	}
	return merged
}
