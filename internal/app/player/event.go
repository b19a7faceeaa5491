package player

import "github.com/playdeck/playdeck/internal/domain/track"

// EventType represents a player event type.
type EventType int

const (
	EventStateChanged    EventType = iota // Player switched to another state
	EventPlaybackStarted                  // Playback started
	EventPlaybackStopped                  // Playback stopped
	EventTrackChanged                     // Current track changed
	EventVolumeChanged                    // Volume changed
	EventActionRejected                   // Action was unavailable in the current state
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventStateChanged:
		return "state_changed"
	case EventPlaybackStarted:
		return "playback_started"
	case EventPlaybackStopped:
		return "playback_stopped"
	case EventTrackChanged:
		return "track_changed"
	case EventVolumeChanged:
		return "volume_changed"
	case EventActionRejected:
		return "action_rejected"
	default:
		return "unknown"
	}
}

// Event represents an observable player event.
type Event struct {
	Type       EventType
	SequenceNo uint64       // Assigned by the notification manager
	State      string       // State name at emission time
	Track      *track.Track // Current track (nil for some events)
	Volume     float64      // Volume after the event
	PrevVolume float64      // Volume before the event (volume_changed only)
	Action     string       // Rejected action name (action_rejected only)
}

// Sink receives player events. Emission is synchronous and best-effort;
// a failing sink never affects player behavior.
type Sink interface {
	Send(Event) error
}
