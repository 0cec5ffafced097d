// Package storage persists application state as whole-collection JSON blobs
// under a fixed set of keys.
package storage

import "context"

// Keys for the persisted collections. Every collection is written as one
// blob; there is no per-entity row model.
const (
	KeyTasks              = "tasks"
	KeyAchievements       = "achievements"
	KeyStreak             = "streak"
	KeyStreakUpdatedToday = "streakUpdatedToday"
	KeyLastActiveDay      = "lastActiveDay"
	KeyVisitedLocations   = "visitedLocations"
	KeyThemeCounts        = "themeCounts"
	KeyCompletedSeasons   = "completedSeasons"
)

// Store is a small key-value contract over the blob keys above. Get returns
// (nil, nil) when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
