package system

import (
	"fmt"

	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/parameter"
)

// Setup builds the startup scene and resolves the player and camera handles
// A scene without exactly one player and one camera is a startup contract violation
func Setup(w *engine.World) error {
	tiles := 0
	for x := parameter.FloorMin; x < parameter.FloorMax; x++ {
		for y := parameter.FloorMin; y < parameter.FloorMax; y++ {
			SpawnTile(w, x, y)
			tiles++
		}
	}

	SpawnPlayer(w)
	SpawnCamera(w)

	if err := w.ResolveSingletons(); err != nil {
		return fmt.Errorf("scene setup: %w", err)
	}
	if err := validateSprites(w); err != nil {
		return fmt.Errorf("scene setup: %w", err)
	}

	w.Resources.Log.WithField("tiles", tiles).Info("scene ready")
	return nil
}

// Register adds every simulation system to the world
func Register(w *engine.World) {
	w.AddSystem(NewCooldownSystem(w))
	w.AddSystem(NewHenshinSystem(w))
	w.AddSystem(NewMovementSystem(w))
	w.AddSystem(NewCameraSystem(w))
	w.AddSystem(NewVisibilitySystem(w))
	w.AddSystem(NewNPCSystem(w))
	w.AddSystem(NewPresentModeSystem(w))
	w.AddSystem(NewQuitSystem(w))
}

// validateSprites checks every sprite reference against its atlas
func validateSprites(w *engine.World) error {
	assets := w.Resources.Assets
	for _, e := range w.Components.Sprite.All() {
		sprite, _ := w.Components.Sprite.Get(e)
		if err := assets.Validate(sprite.Atlas, sprite.Index); err != nil {
			return fmt.Errorf("entity %d: %w", e, err)
		}
	}
	return nil
}
