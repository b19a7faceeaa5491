// Package playlist provides the Playlist domain entity.
package playlist

import (
	"github.com/cockroachdb/errors"

	"github.com/playdeck/playdeck/internal/domain/track"
)

// ErrEmpty is returned when a playlist is constructed without tracks.
var ErrEmpty = errors.New("playlist must contain at least one track")

// Playlist is an ordered, non-empty sequence of tracks.
// The track list is fixed at construction.
type Playlist struct {
	tracks []track.Track
}

// New creates a playlist from the given tracks.
// Returns ErrEmpty when no tracks are provided.
func New(tracks []track.Track) (*Playlist, error) {
	if len(tracks) == 0 {
		return nil, ErrEmpty
	}
	copied := make([]track.Track, len(tracks))
	copy(copied, tracks)
	return &Playlist{tracks: copied}, nil
}

// FromTitles creates a playlist of title-only tracks.
// Convenient for demos and tests where only the name matters.
func FromTitles(titles []string) (*Playlist, error) {
	tracks := make([]track.Track, len(titles))
	for i, title := range titles {
		tracks[i] = track.Track{ID: title, Title: title}
	}
	return New(tracks)
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// TrackAt returns the track at the given index.
// The caller is responsible for keeping the index within bounds.
func (p *Playlist) TrackAt(index int) track.Track {
	return p.tracks[index]
}

// TrackIDs returns all track IDs in playlist order.
func (p *Playlist) TrackIDs() []string {
	ids := make([]string, len(p.tracks))
	for i, t := range p.tracks {
		ids[i] = t.ID
	}
	return ids
}

// TotalDuration returns the total duration of all tracks in seconds.
func (p *Playlist) TotalDuration() int64 {
	var total int64
	for _, t := range p.tracks {
		total += int64(t.Duration.Seconds())
	}
	return total
}
