package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/go-theft-auto/overlay"
)

// ErrUnknownKey is returned for a key name ParseKey does not know.
var ErrUnknownKey = errors.New("config: unknown key")

type keySpec struct {
	Key    string `mapstructure:"key"`
	Delay  int64  `mapstructure:"delay"`
	Period int64  `mapstructure:"period"`
}

// LoadKeymap reads action bindings from a TOML, JSON or YAML file:
//
//	[menu]
//	key = "escape"
//
//	[scroll_down]
//	key = "down"
//	delay = 300
//	period = 50
//
// Delay and period are in milliseconds. Action names are lower-cased.
func LoadKeymap(path string) (map[string]overlay.Binding, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}

	var raw map[string]keySpec
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("unmarshal keymap: %w", err)
	}

	out := make(map[string]overlay.Binding, len(raw))
	for action, spec := range raw {
		k, ok := overlay.ParseKey(spec.Key)
		if !ok {
			return nil, fmt.Errorf("action %q: %w: %q", action, ErrUnknownKey, spec.Key)
		}
		out[action] = overlay.Binding{Key: k, Delay: spec.Delay, Period: spec.Period}
	}
	return out, nil
}

// Bind registers every binding of a keymap with the tracker.
func Bind(t *overlay.InputTracker, keymap map[string]overlay.Binding) {
	for name, b := range keymap {
		t.Bind(name, b)
	}
}
