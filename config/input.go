package config

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleList
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionToggleList: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
		},
	}
}

// ParseKey resolves a key name such as "F2" or "t" to an ebiten key.
// Names are the ones ebiten.Key.String returns, compared case-insensitively.
func ParseKey(name string) (ebiten.Key, bool) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

// SetOpenListKey rebinds ActionToggleList to the named key.
// Returns the canonical key name, or false if the name is unknown.
func SetOpenListKey(name string) (string, bool) {
	key, ok := ParseKey(name)
	if !ok {
		return "", false
	}
	Input.Bindings[ActionToggleList] = InputBinding{Keys: []ebiten.Key{key}}
	return key.String(), true
}

// OpenListKeyName returns the name of the first key bound to ActionToggleList
func OpenListKeyName() string {
	keys := Input.Bindings[ActionToggleList].Keys
	if len(keys) == 0 {
		return ""
	}
	return keys[0].String()
}
