// Package notify carries the fire-and-forget notification boundary between
// the engine and whatever presentation layer is attached to it.
package notify

// StreakKind distinguishes the three streak notifications.
type StreakKind string

const (
	StreakStarted   StreakKind = "started"
	StreakIncreased StreakKind = "increased"
	StreakReset     StreakKind = "reset"
)

// Notifier receives engine events. Implementations must not fail; errors are
// swallowed at the boundary.
type Notifier interface {
	TaskAdded(title string)
	TaskDeleted(title string)
	StreakChanged(kind StreakKind, days int)
	AchievementUnlocked(title, description string)
}

// Nop discards every notification.
type Nop struct{}

func (Nop) TaskAdded(string)                  {}
func (Nop) TaskDeleted(string)                {}
func (Nop) StreakChanged(StreakKind, int)     {}
func (Nop) AchievementUnlocked(string, string) {}

// Multi fans notifications out to several sinks.
type Multi []Notifier

func (m Multi) TaskAdded(title string) {
	for _, n := range m {
		n.TaskAdded(title)
	}
}

func (m Multi) TaskDeleted(title string) {
	for _, n := range m {
		n.TaskDeleted(title)
	}
}

func (m Multi) StreakChanged(kind StreakKind, days int) {
	for _, n := range m {
		n.StreakChanged(kind, days)
	}
}

func (m Multi) AchievementUnlocked(title, description string) {
	for _, n := range m {
		n.AchievementUnlocked(title, description)
	}
}
