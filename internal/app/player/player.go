// Package player provides the audio-player context and its state machine.
package player

import (
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/playdeck/playdeck/internal/domain/playlist"
	"github.com/playdeck/playdeck/internal/domain/track"
)

// Volume bounds and defaults.
const (
	minVolume         = 0.0
	maxVolume         = 1.0
	defaultVolume     = 0.2
	defaultVolumeStep = 0.1
)

// Player simulates an audio player whose reaction to the lock, play,
// next and previous buttons depends on its current state. The player
// owns all session data; states only decide what each button does.
//
// The player is single-threaded: callers issue one action at a time and
// every action runs to completion before the next one.
type Player struct {
	playlist   *playlist.Playlist
	current    int // current track index, always within [0, playlist.Len())
	volume     float64
	volumeStep float64
	playing    bool
	state      State

	log   zerolog.Logger
	sinks []Sink
}

// Option configures a Player at construction.
type Option func(*Player)

// WithLogger sets the logger used for the observable side channel.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Player) { p.log = log }
}

// WithInitialVolume sets the starting volume. Values outside [0, 1]
// are clamped.
func WithInitialVolume(volume float64) Option {
	return func(p *Player) { p.volume = clampVolume(volume) }
}

// WithVolumeStep sets the amount added or removed per volume press.
func WithVolumeStep(step float64) Option {
	return func(p *Player) { p.volumeStep = step }
}

// WithSink subscribes a sink to player events.
func WithSink(sink Sink) Option {
	return func(p *Player) { p.sinks = append(p.sinks, sink) }
}

// New creates a player for the given playlist. The player always starts
// in the locked state, whatever the caller intends; the only invalid
// input is a missing playlist.
func New(pl *playlist.Playlist, opts ...Option) (*Player, error) {
	if pl == nil {
		return nil, errors.Wrap(playlist.ErrEmpty, "cannot create player")
	}

	p := &Player{
		playlist:   pl,
		volume:     defaultVolume,
		volumeStep: defaultVolumeStep,
		log:        zlog.Logger,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.transitionTo(&lockedState{})
	return p, nil
}

// StateName returns the name of the current state.
func (p *Player) StateName() string {
	return p.state.Name()
}

// CurrentIndex returns the current track index.
func (p *Player) CurrentIndex() int {
	return p.current
}

// CurrentTrack returns the current track.
func (p *Player) CurrentTrack() track.Track {
	return p.playlist.TrackAt(p.current)
}

// Volume returns the current volume.
func (p *Player) Volume() float64 {
	return p.volume
}

// IsPlaying reports whether playback is running.
func (p *Player) IsPlaying() bool {
	return p.playing
}

// ClickLock presses the lock button.
func (p *Player) ClickLock() {
	p.state.ClickLock()
}

// ClickPlay presses the play/pause button.
func (p *Player) ClickPlay() {
	p.state.ClickPlay()
}

// ClickNext presses the next-track button.
func (p *Player) ClickNext() {
	p.state.ClickNext()
}

// ClickPrevious presses the previous-track button.
func (p *Player) ClickPrevious() {
	p.state.ClickPrevious()
}

// IncreaseVolume raises the volume by one step, capped at 1.0.
// Volume is not state-dependent; it works even while locked.
func (p *Player) IncreaseVolume() {
	p.setVolume(p.volume + p.volumeStep)
}

// DecreaseVolume lowers the volume by one step, floored at 0.0.
func (p *Player) DecreaseVolume() {
	p.setVolume(p.volume - p.volumeStep)
}

// transitionTo replaces the current state and attaches the
// back-reference. There is no guard; transitions always succeed.
func (p *Player) transitionTo(state State) {
	state.attach(p)
	p.state = state
	p.log.Info().Str("state", state.Name()).Msg("Transitioning to state")
	p.broadcast(Event{Type: EventStateChanged, State: state.Name()})
}

// startPlayback marks the player as playing. There is no real audio
// output; the log line and event stand in for it.
func (p *Player) startPlayback() {
	p.playing = true
	t := p.CurrentTrack()
	p.log.Info().
		Str("track", t.Label()).
		Float64("volume", p.volume).
		Msg("Starting playback")
	p.broadcast(Event{Type: EventPlaybackStarted, State: p.state.Name(), Track: &t, Volume: p.volume})
}

// stopPlayback marks the player as stopped.
func (p *Player) stopPlayback() {
	p.playing = false
	t := p.CurrentTrack()
	p.log.Info().
		Str("track", t.Label()).
		Float64("volume", p.volume).
		Msg("Stopping playback")
	p.broadcast(Event{Type: EventPlaybackStopped, State: p.state.Name(), Track: &t, Volume: p.volume})
}

// nextTrack advances the current track, wrapping from last to first.
// Changing track does not start or stop playback.
func (p *Player) nextTrack() {
	p.current = (p.current + 1) % p.playlist.Len()
	p.trackChanged()
}

// previousTrack retreats the current track, wrapping from first to
// last. The playlist length is added before taking the modulo so the
// index never goes negative.
func (p *Player) previousTrack() {
	p.current = (p.current - 1 + p.playlist.Len()) % p.playlist.Len()
	p.trackChanged()
}

func (p *Player) trackChanged() {
	t := p.CurrentTrack()
	p.log.Info().Str("track", t.Label()).Int("index", p.current).Msg("Setting the current track")
	p.broadcast(Event{Type: EventTrackChanged, State: p.state.Name(), Track: &t, Volume: p.volume})
}

func (p *Player) setVolume(volume float64) {
	prev := p.volume
	p.volume = clampVolume(volume)
	p.log.Info().
		Float64("from", prev).
		Float64("to", p.volume).
		Msg("Adjusting the volume")
	p.broadcast(Event{Type: EventVolumeChanged, State: p.state.Name(), Volume: p.volume, PrevVolume: prev})
}

// rejectAction reports an action that is unavailable in the current
// state. Rejections are silent no-ops, never errors.
func (p *Player) rejectAction(action string) {
	p.log.Info().
		Str("action", action).
		Str("state", p.state.Name()).
		Msg(`The player is locked. Click the "lock" button to unlock it`)
	p.broadcast(Event{Type: EventActionRejected, State: p.state.Name(), Action: action})
}

// broadcast sends an event to all subscribed sinks. Sink failures are
// logged and otherwise ignored.
func (p *Player) broadcast(ev Event) {
	for _, sink := range p.sinks {
		if err := sink.Send(ev); err != nil {
			p.log.Warn().Err(err).Str("event", ev.Type.String()).Msg("Event sink failed")
		}
	}
}

func clampVolume(volume float64) float64 {
	if volume > maxVolume {
		return maxVolume
	}
	if volume < minVolume {
		return minVolume
	}
	return volume
}
