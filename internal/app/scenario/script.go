package scenario

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Step is one scripted action with optional settings.
type Step struct {
	Action   string         `yaml:"action"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// Script is an ordered sequence of steps replayed against a player.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// LoadScript loads and validates a script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read script file")
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, errors.Wrap(err, "failed to parse script file")
	}

	if err := script.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid script %q", path)
	}
	return &script, nil
}

// Validate checks that the script is non-empty, every step names a
// registered action and every step's settings decode cleanly.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("script has no steps")
	}
	for i, step := range s.Steps {
		action, err := lookup(step.Action)
		if err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
		if err := action.ValidateSettings(step.Settings); err != nil {
			return errors.Wrapf(err, "step %d (%s)", i+1, step.Action)
		}
	}
	return nil
}

// Demo returns the built-in reference sequence: unlock, play, adjust the
// volume, skip around the playlist, pause, then lock and unlock a few
// times to show which buttons each state ignores.
func Demo() *Script {
	return &Script{
		Name: "demo",
		Steps: []Step{
			{Action: "click_lock"},     // unlock the player
			{Action: "click_play"},     // play the first track
			{Action: "volume_up", Settings: map[string]any{"times": 2}},
			{Action: "click_next"},     // move to the second track
			{Action: "volume_up", Settings: map[string]any{"times": 2}},
			{Action: "click_next"},     // move to the third track
			{Action: "click_previous"}, // back to the second track
			{Action: "click_play"},     // pause playback
			{Action: "click_lock"},     // lock the player
			{Action: "click_play"},     // ignored, player is locked
			{Action: "click_lock"},     // unlock again
			{Action: "click_play"},     // resume playback
			{Action: "click_lock"},     // lock once more
			{Action: "click_lock"},     // and unlock
		},
	}
}
