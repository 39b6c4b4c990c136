package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/henshin/core"
)

var (
	// ErrSingletonMissing reports that no entity carries a singleton component
	ErrSingletonMissing = errors.New("singleton not found")

	// ErrSingletonAmbiguous reports that more than one entity carries a singleton component
	ErrSingletonAmbiguous = errors.New("singleton not unique")
)

// ResolveSingleton returns the only entity in store
func ResolveSingleton(store QueryableStore, name string) (core.Entity, error) {
	entities := store.All()
	switch len(entities) {
	case 0:
		return core.NullEntity, fmt.Errorf("%s: %w", name, ErrSingletonMissing)
	case 1:
		return entities[0], nil
	default:
		return core.NullEntity, fmt.Errorf("%s: %w (%d found)", name, ErrSingletonAmbiguous, len(entities))
	}
}

// ResolveSingletons resolves the player and camera handles and caches them
// Must be called once after scene setup and before the first tick
func (w *World) ResolveSingletons() error {
	player, err := ResolveSingleton(w.Components.Player, "player")
	if err != nil {
		return err
	}
	camera, err := ResolveSingleton(w.Components.Camera, "camera")
	if err != nil {
		return err
	}

	w.Resources.Singleton.Player = player
	w.Resources.Singleton.Camera = camera
	return nil
}

// MustPlayer returns the cached player handle
// Panics if the startup contract was not met
func (w *World) MustPlayer() core.Entity {
	e := w.Resources.Singleton.Player
	if e == core.NullEntity || !w.Alive(e) {
		panic("startup contract violated: player not resolved")
	}
	return e
}

// MustCamera returns the cached camera handle
// Panics if the startup contract was not met
func (w *World) MustCamera() core.Entity {
	e := w.Resources.Singleton.Camera
	if e == core.NullEntity || !w.Alive(e) {
		panic("startup contract violated: camera not resolved")
	}
	return e
}
