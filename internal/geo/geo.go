// Package geo resolves the user's current geographic region for
// location-based achievements. Resolution is strictly best-effort: missing
// coordinates, network failures and timeouts all degrade to Unknown.
package geo

import "context"

// Unknown is the sentinel region returned when resolution fails. It is
// excluded from the visited-locations set.
const Unknown = "Unknown"

// Resolver reports the region the user is currently in.
type Resolver interface {
	CurrentRegion(ctx context.Context) string
}

// Static always answers with a fixed region. An empty region means Unknown.
type Static struct {
	Region string
}

func (s Static) CurrentRegion(context.Context) string {
	if s.Region == "" {
		return Unknown
	}
	return s.Region
}
