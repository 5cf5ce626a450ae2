package display

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spacehole-rogue/orrery/internal/input"
)

// Keyboard answers "is this action held" from Ebitengine key state.
type Keyboard struct {
	keys map[input.Action][]ebiten.Key
}

// NewKeyboard resolves the key names in bindings to Ebitengine keys, in
// action order. Actions without an entry stay unbound.
func NewKeyboard(bindings map[input.Action][]string) (*Keyboard, error) {
	k := &Keyboard{keys: make(map[input.Action][]ebiten.Key, len(bindings))}
	for _, action := range input.Actions() {
		for _, name := range bindings[action] {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("binding %s: key %q: %w", action, name, err)
			}
			k.keys[action] = append(k.keys[action], key)
		}
	}
	return k, nil
}

// Pressed reports whether any key bound to a is held down.
func (k *Keyboard) Pressed(a input.Action) bool {
	for _, key := range k.keys[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Poll snapshots every action for this frame.
func (k *Keyboard) Poll() input.Intent {
	return input.Poll(k.Pressed)
}
