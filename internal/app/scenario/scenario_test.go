package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playdeck/playdeck/internal/app/player"
	"github.com/playdeck/playdeck/internal/domain/playlist"
)

func newTestPlayer(t *testing.T) *player.Player {
	t.Helper()
	pl, err := playlist.FromTitles([]string{"first", "second", "third", "fourth", "fifth"})
	require.NoError(t, err)
	p, err := player.New(pl, player.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return p
}

func TestRegistry(t *testing.T) {
	want := []string{
		"click_lock", "click_play", "click_next", "click_previous",
		"volume_up", "volume_down",
	}
	registered := GetRegistered()
	for _, name := range want {
		factory, ok := registered[name]
		require.True(t, ok, "action %q not registered", name)

		action := factory()
		assert.Equal(t, name, action.Name())
		assert.NotEmpty(t, action.Description())
	}
}

func TestButtonAction_RejectsSettings(t *testing.T) {
	action, err := lookup("click_lock")
	require.NoError(t, err)

	assert.NoError(t, action.ValidateSettings(nil))
	assert.Error(t, action.ValidateSettings(map[string]any{"times": 2}))
}

func TestVolumeSettings(t *testing.T) {
	tests := []struct {
		name      string
		settings  map[string]any
		wantErr   bool
		wantTimes int
	}{
		{
			name:      "nil settings default to one press",
			settings:  nil,
			wantTimes: 1,
		},
		{
			name:      "explicit times",
			settings:  map[string]any{"times": 3},
			wantTimes: 3,
		},
		{
			// Zero values are indistinguishable from omitted ones, so
			// the default kicks in.
			name:      "zero times falls back to default",
			settings:  map[string]any{"times": 0},
			wantTimes: 1,
		},
		{
			name:     "negative times rejected",
			settings: map[string]any{"times": -1},
			wantErr:  true,
		},
		{
			name:     "excessive times rejected",
			settings: map[string]any{"times": 1000},
			wantErr:  true,
		},
		{
			name:     "unknown key rejected",
			settings: map[string]any{"volume": 0.5},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := decodeVolumeSettings(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTimes, config.Times)
		})
	}
}

func TestVolumeAction_Apply(t *testing.T) {
	p := newTestPlayer(t)
	action, err := lookup("volume_up")
	require.NoError(t, err)

	require.NoError(t, action.Apply(p, map[string]any{"times": 3}))
	assert.InDelta(t, 0.5, p.Volume(), 1e-9)
}

func TestScript_Validate(t *testing.T) {
	tests := []struct {
		name    string
		script  Script
		wantErr string
	}{
		{
			name:    "empty script",
			script:  Script{Name: "empty"},
			wantErr: "no steps",
		},
		{
			name: "unknown action",
			script: Script{Steps: []Step{
				{Action: "click_lock"},
				{Action: "eject"},
			}},
			wantErr: `unknown action "eject"`,
		},
		{
			name: "invalid settings",
			script: Script{Steps: []Step{
				{Action: "volume_up", Settings: map[string]any{"times": -1}},
			}},
			wantErr: "validation failed",
		},
		{
			name: "valid script",
			script: Script{Steps: []Step{
				{Action: "click_lock"},
				{Action: "volume_down", Settings: map[string]any{"times": 2}},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.script.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadScript(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "script.yaml")
		content := `name: smoke
steps:
  - action: click_lock
  - action: click_play
  - action: volume_up
    settings:
      times: 2
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		script, err := LoadScript(path)
		require.NoError(t, err)
		assert.Equal(t, "smoke", script.Name)
		require.Len(t, script.Steps, 3)
		assert.Equal(t, "volume_up", script.Steps[2].Action)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("steps: [}"), 0644))

		_, err := LoadScript(path)
		assert.Error(t, err)
	})
}

// TestRunner_Demo replays the built-in demo and checks the final
// session data against the transition table.
func TestRunner_Demo(t *testing.T) {
	p := newTestPlayer(t)

	require.NoError(t, NewRunner(p).Run(Demo()))

	assert.Equal(t, "ready", p.StateName())
	assert.Equal(t, 1, p.CurrentIndex())
	assert.InDelta(t, 0.6, p.Volume(), 1e-9)
	assert.True(t, p.IsPlaying())
}

func TestRunner_UnknownActionAborts(t *testing.T) {
	p := newTestPlayer(t)
	script := &Script{Name: "bad", Steps: []Step{
		{Action: "click_lock"},
		{Action: "rewind"},
	}}

	err := NewRunner(p).Run(script)
	require.Error(t, err)
	// Validation fails before any step runs
	assert.Equal(t, "locked", p.StateName())
}
