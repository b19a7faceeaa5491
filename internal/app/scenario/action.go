// Package scenario provides replayable button sequences for the player.
package scenario

import (
	"github.com/cockroachdb/errors"

	"github.com/playdeck/playdeck/internal/app/player"
)

// Action is one replayable player operation.
type Action interface {
	// Name returns the action name (used in scripts).
	Name() string
	// Description returns a human-readable description.
	Description() string
	// ValidateSettings validates the action settings.
	ValidateSettings(settings map[string]any) error
	// Apply performs the action against the player.
	Apply(p *player.Player, settings map[string]any) error
}

// registry holds registered action factories.
var registry = make(map[string]func() Action)

// Register registers an action factory.
func Register(name string, factory func() Action) {
	registry[name] = factory
}

// GetRegistered returns all registered action factories.
func GetRegistered() map[string]func() Action {
	return registry
}

// lookup returns a fresh action instance for the given name.
func lookup(name string) (Action, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, errors.Newf("unknown action %q", name)
	}
	return factory(), nil
}
