package player

// State is the behavior contract for one player mode. Exactly three
// variants exist: locked, ready and playing. The unexported attach
// method keeps the set closed to this package.
//
// Each variant holds a non-owning back-reference to its player, valid
// only while it is the current state. Variants carry no other data and
// are created fresh at every transition.
type State interface {
	// Name returns the state name used in logs and events.
	Name() string

	// ClickLock handles the lock button.
	ClickLock()
	// ClickPlay handles the play/pause button.
	ClickPlay()
	// ClickNext handles the next-track button.
	ClickNext()
	// ClickPrevious handles the previous-track button.
	ClickPrevious()

	attach(p *Player)
}

// lockedState ignores everything except the lock button.
type lockedState struct {
	player *Player
}

func (s *lockedState) Name() string { return "locked" }

func (s *lockedState) attach(p *Player) { s.player = p }

func (s *lockedState) ClickLock() {
	s.player.transitionTo(&readyState{})
}

func (s *lockedState) ClickPlay() {
	s.player.rejectAction("play")
}

func (s *lockedState) ClickNext() {
	s.player.rejectAction("next")
}

func (s *lockedState) ClickPrevious() {
	s.player.rejectAction("previous")
}

// readyState is unlocked with playback stopped.
type readyState struct {
	player *Player
}

func (s *readyState) Name() string { return "ready" }

func (s *readyState) attach(p *Player) { s.player = p }

func (s *readyState) ClickLock() {
	s.player.transitionTo(&lockedState{})
}

func (s *readyState) ClickPlay() {
	s.player.startPlayback()
	s.player.transitionTo(&playingState{})
}

func (s *readyState) ClickNext() {
	s.player.nextTrack()
}

func (s *readyState) ClickPrevious() {
	s.player.previousTrack()
}

// playingState is unlocked with playback running.
// Locking from here does not touch the is-playing flag.
type playingState struct {
	player *Player
}

func (s *playingState) Name() string { return "playing" }

func (s *playingState) attach(p *Player) { s.player = p }

func (s *playingState) ClickLock() {
	s.player.transitionTo(&lockedState{})
}

func (s *playingState) ClickPlay() {
	s.player.stopPlayback()
	s.player.transitionTo(&readyState{})
}

func (s *playingState) ClickNext() {
	s.player.nextTrack()
}

func (s *playingState) ClickPrevious() {
	s.player.previousTrack()
}
