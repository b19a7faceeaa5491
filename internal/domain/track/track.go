// Package track provides the Track domain entity.
package track

import (
	"fmt"
	"time"
)

// Track represents a single playable track.
// The simulation never decodes audio; tracks carry metadata only.
type Track struct {
	ID       string        // Stable track identifier
	Title    string        // Track title
	Artist   string        // Artist name (optional)
	Duration time.Duration // Track duration (informational)
}

// Label returns a human-readable identifier for logs and notifications.
// Falls back to the ID when no title is set.
func (t *Track) Label() string {
	if t.Title == "" {
		return t.ID
	}
	if t.Artist == "" {
		return t.Title
	}
	return fmt.Sprintf("%s - %s", t.Artist, t.Title)
}
