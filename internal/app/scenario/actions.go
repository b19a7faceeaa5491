package scenario

import (
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/playdeck/playdeck/internal/app/player"
)

func init() {
	Register("click_lock", func() Action {
		return &buttonAction{
			name:        "click_lock",
			description: "Press the lock button",
			press:       (*player.Player).ClickLock,
		}
	})
	Register("click_play", func() Action {
		return &buttonAction{
			name:        "click_play",
			description: "Press the play/pause button",
			press:       (*player.Player).ClickPlay,
		}
	})
	Register("click_next", func() Action {
		return &buttonAction{
			name:        "click_next",
			description: "Press the next-track button",
			press:       (*player.Player).ClickNext,
		}
	})
	Register("click_previous", func() Action {
		return &buttonAction{
			name:        "click_previous",
			description: "Press the previous-track button",
			press:       (*player.Player).ClickPrevious,
		}
	})
	Register("volume_up", func() Action {
		return &volumeAction{
			name:        "volume_up",
			description: "Turn the volume up by one step",
			turn:        (*player.Player).IncreaseVolume,
		}
	})
	Register("volume_down", func() Action {
		return &volumeAction{
			name:        "volume_down",
			description: "Turn the volume down by one step",
			turn:        (*player.Player).DecreaseVolume,
		}
	})
}

// buttonAction presses a single player button. It takes no settings.
type buttonAction struct {
	name        string
	description string
	press       func(*player.Player)
}

func (a *buttonAction) Name() string {
	return a.name
}

func (a *buttonAction) Description() string {
	return a.description
}

func (a *buttonAction) ValidateSettings(settings map[string]any) error {
	if len(settings) > 0 {
		return errors.Newf("action %q takes no settings", a.name)
	}
	return nil
}

func (a *buttonAction) Apply(p *player.Player, _ map[string]any) error {
	a.press(p)
	return nil
}

// VolumeSettings represents the settings for volume actions.
type VolumeSettings struct {
	Times int `mapstructure:"times" default:"1" validate:"gte=1,lte=100"`
}

// volumeAction turns the volume up or down, optionally several times.
type volumeAction struct {
	name        string
	description string
	turn        func(*player.Player)
}

func (a *volumeAction) Name() string {
	return a.name
}

func (a *volumeAction) Description() string {
	return a.description
}

func (a *volumeAction) ValidateSettings(settings map[string]any) error {
	_, err := decodeVolumeSettings(settings)
	return err
}

func (a *volumeAction) Apply(p *player.Player, settings map[string]any) error {
	config, err := decodeVolumeSettings(settings)
	if err != nil {
		return err
	}
	for i := 0; i < config.Times; i++ {
		a.turn(p)
	}
	return nil
}

// decodeVolumeSettings decodes map[string]any settings into
// VolumeSettings, applying defaults and validation.
func decodeVolumeSettings(settings map[string]any) (*VolumeSettings, error) {
	var config VolumeSettings

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &config,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create settings decoder")
	}
	if err := decoder.Decode(settings); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}

	if err := defaults.Set(&config); err != nil {
		return nil, errors.Wrap(err, "failed to set settings defaults")
	}

	validate := validator.New()
	if err := validate.Struct(&config); err != nil {
		return nil, errors.Wrap(err, "settings validation failed")
	}

	return &config, nil
}
