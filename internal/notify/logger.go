package notify

import "github.com/rs/zerolog"

// Logger mirrors notifications into the structured log, useful alongside a
// Console sink via Multi.
type Logger struct {
	log zerolog.Logger
}

func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) TaskAdded(title string) {
	l.log.Info().Str("title", title).Msg("task added")
}

func (l *Logger) TaskDeleted(title string) {
	l.log.Info().Str("title", title).Msg("task deleted")
}

func (l *Logger) StreakChanged(kind StreakKind, days int) {
	l.log.Info().Str("kind", string(kind)).Int("days", days).Msg("streak changed")
}

func (l *Logger) AchievementUnlocked(title, description string) {
	l.log.Info().Str("title", title).Str("description", description).Msg("achievement unlocked")
}
