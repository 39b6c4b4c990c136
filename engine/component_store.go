package engine

import (
	"github.com/lixenwraith/henshin/component"
)

// ComponentStore provides cached pointer to typed component store
// Initialized once per world to eliminate runtime map lookup
type ComponentStore struct {
	// Actors
	Player   *Store[component.PlayerComponent]
	NPC      *Store[component.NPCComponent]
	Cooldown *Store[component.CooldownComponent]

	// Spatial and visual
	Transform  *Store[component.TransformComponent]
	Sprite     *Store[component.SpriteComponent]
	Visibility *Store[component.VisibilityComponent]
	Tile       *Store[component.TileComponent]
	Camera     *Store[component.CameraComponent]

	// Ownership
	Equipment *Store[component.EquipmentComponent]
	Children  *Store[component.ChildrenComponent]
	Parent    *Store[component.ParentComponent]
}

// newComponentStore registers every component store on the world
func newComponentStore(w *World) ComponentStore {
	return ComponentStore{
		Player:   GetStore[component.PlayerComponent](w),
		NPC:      GetStore[component.NPCComponent](w),
		Cooldown: GetStore[component.CooldownComponent](w),

		Transform:  GetStore[component.TransformComponent](w),
		Sprite:     GetStore[component.SpriteComponent](w),
		Visibility: GetStore[component.VisibilityComponent](w),
		Tile:       GetStore[component.TileComponent](w),
		Camera:     GetStore[component.CameraComponent](w),

		Equipment: GetStore[component.EquipmentComponent](w),
		Children:  GetStore[component.ChildrenComponent](w),
		Parent:    GetStore[component.ParentComponent](w),
	}
}
