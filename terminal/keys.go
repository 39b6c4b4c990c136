package terminal

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/henshin/input"
)

// KeyTranslator resolves terminal key events to logical actions
type KeyTranslator struct {
	runes map[rune]input.Action
	keys  map[tcell.Key]input.Action
}

// NewKeyTranslator builds a translator from action name -> key names bindings
// Letter bindings match both cases so Shift or Caps Lock do not disable a key
func NewKeyTranslator(bindings map[string][]string) (*KeyTranslator, error) {
	kt := &KeyTranslator{
		runes: make(map[rune]input.Action),
		keys:  make(map[tcell.Key]input.Action),
	}

	for name, keyNames := range bindings {
		action, err := input.ParseAction(name)
		if err != nil {
			return nil, err
		}
		for _, keyName := range keyNames {
			if err := kt.bind(keyName, action); err != nil {
				return nil, fmt.Errorf("action %s: %w", name, err)
			}
		}
	}
	return kt, nil
}

func (kt *KeyTranslator) bind(keyName string, action input.Action) error {
	if k, ok := nameToKey[keyName]; ok {
		if prev, dup := kt.keys[k]; dup && prev != action {
			return fmt.Errorf("key %q already bound to %s", keyName, prev)
		}
		kt.keys[k] = action
		return nil
	}

	r, ok := nameToRune[keyName]
	if !ok {
		if utf8.RuneCountInString(keyName) != 1 {
			return fmt.Errorf("unknown key %q", keyName)
		}
		r, _ = utf8.DecodeRuneInString(keyName)
	}

	for _, variant := range []rune{r, unicode.ToUpper(r), unicode.ToLower(r)} {
		if prev, dup := kt.runes[variant]; dup && prev != action {
			return fmt.Errorf("key %q already bound to %s", keyName, prev)
		}
		kt.runes[variant] = action
	}
	return nil
}

// Lookup resolves a key/rune pair as reported by tcell
func (kt *KeyTranslator) Lookup(key tcell.Key, r rune) (input.Action, bool) {
	if key == tcell.KeyRune {
		a, ok := kt.runes[r]
		return a, ok
	}
	a, ok := kt.keys[key]
	return a, ok
}

// Translate resolves a tcell key event
func (kt *KeyTranslator) Translate(ev *tcell.EventKey) (input.Action, bool) {
	return kt.Lookup(ev.Key(), ev.Rune())
}
