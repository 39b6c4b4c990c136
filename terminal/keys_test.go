package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/henshin/config"
	"github.com/lixenwraith/henshin/input"
)

func TestKeyTranslator_Defaults(t *testing.T) {
	kt, err := NewKeyTranslator(config.DefaultKeys())
	if err != nil {
		t.Fatalf("NewKeyTranslator failed: %v", err)
	}

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want input.Action
	}{
		{"w", tcell.KeyRune, 'w', input.MoveUp},
		{"shift W", tcell.KeyRune, 'W', input.MoveUp},
		{"arrow up", tcell.KeyUp, 0, input.MoveUp},
		{"arrow left", tcell.KeyLeft, 0, input.MoveLeft},
		{"activate", tcell.KeyRune, 'e', input.Activate},
		{"zoom in", tcell.KeyRune, ']', input.ZoomIn},
		{"zoom out", tcell.KeyRune, '[', input.ZoomOut},
		{"spawn", tcell.KeyRune, 'f', input.SpawnNPC},
		{"despawn", tcell.KeyRune, 'g', input.DespawnNPCs},
		{"vsync", tcell.KeyRune, 'v', input.ToggleVsync},
		{"escape", tcell.KeyEscape, 0, input.Quit},
		{"ctrl c", tcell.KeyCtrlC, 0, input.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := kt.Lookup(tt.key, tt.r)
			if !ok || got != tt.want {
				t.Errorf("Lookup = %v (ok=%v), want %v", got, ok, tt.want)
			}
		})
	}

	if _, ok := kt.Lookup(tcell.KeyRune, 'z'); ok {
		t.Error("Unbound rune should not resolve")
	}
}

func TestKeyTranslator_Translate(t *testing.T) {
	kt, err := NewKeyTranslator(map[string][]string{"activate": {"space"}})
	if err != nil {
		t.Fatal(err)
	}
	ev := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	if got, ok := kt.Translate(ev); !ok || got != input.Activate {
		t.Errorf("Expected activate for space, got %v (ok=%v)", got, ok)
	}
}

func TestKeyTranslator_Errors(t *testing.T) {
	tests := []struct {
		name     string
		bindings map[string][]string
	}{
		{"unknown action", map[string][]string{"fly": {"x"}}},
		{"unknown key", map[string][]string{"quit": {"hyperspace"}}},
		{"conflicting rune", map[string][]string{"move_up": {"w"}, "move_down": {"W"}}},
		{"conflicting key", map[string][]string{"quit": {"esc"}, "activate": {"escape"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewKeyTranslator(tt.bindings); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
