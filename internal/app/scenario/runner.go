package scenario

import (
	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/playdeck/playdeck/internal/app/player"
)

// Runner replays scripts against a player, one step at a time.
type Runner struct {
	player *player.Player
}

// NewRunner creates a runner for the given player.
func NewRunner(p *player.Player) *Runner {
	return &Runner{player: p}
}

// Run executes every step of the script in order. The first failing
// step aborts the run.
func (r *Runner) Run(script *Script) error {
	if err := script.Validate(); err != nil {
		return err
	}

	zlog.Info().Str("script", script.Name).Int("steps", len(script.Steps)).Msg("Replaying script")
	for i, step := range script.Steps {
		action, err := lookup(step.Action)
		if err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
		if err := action.Apply(r.player, step.Settings); err != nil {
			return errors.Wrapf(err, "step %d (%s)", i+1, step.Action)
		}
	}
	return nil
}
