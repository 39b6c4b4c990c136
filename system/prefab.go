package system

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/henshin/asset"
	"github.com/lixenwraith/henshin/component"
	"github.com/lixenwraith/henshin/core"
	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/parameter"
)

// SpawnTile creates a static floor tile at a grid cell
func SpawnTile(w *engine.World, cellX, cellY int) core.Entity {
	c := w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Tile, component.TileComponent{})
	engine.With(eb, c.Transform, component.TransformComponent{
		Translation: mgl32.Vec3{float32(cellX) * parameter.GridSize, float32(cellY) * parameter.GridSize, parameter.LayerFloor},
		Scale:       parameter.SpriteScale,
	})
	engine.With(eb, c.Sprite, component.SpriteComponent{Atlas: asset.AtlasBase, Index: parameter.FloorSprite})
	engine.With(eb, c.Visibility, component.VisibilityComponent{Visible: true})
	return eb.Build()
}

// SpawnPlayer creates the player at the origin with its head slot
func SpawnPlayer(w *engine.World) core.Entity {
	head := spawnHead(w, parameter.LayerHead, parameter.HeadDefaultSprite)

	c := w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Player, component.PlayerComponent{State: component.StateNormal})
	engine.With(eb, c.Cooldown, component.CooldownComponent{})
	engine.With(eb, c.Transform, component.TransformComponent{
		Translation: mgl32.Vec3{0, 0, parameter.LayerPlayer},
		Scale:       parameter.SpriteScale,
	})
	engine.With(eb, c.Sprite, component.SpriteComponent{Atlas: asset.AtlasBase, Index: parameter.PlayerBodySprite})
	return eb.WithChild(head).Build()
}

// SpawnNPC creates an NPC at a world position with its head slot
// New NPCs always start with the default head sprite, whatever the player's state
func SpawnNPC(w *engine.World, at mgl32.Vec2) core.Entity {
	head := spawnHead(w, parameter.LayerNPCHead, parameter.NPCHeadSprite)

	c := w.Components
	eb := w.NewEntity()
	engine.With(eb, c.NPC, component.NPCComponent{})
	engine.With(eb, c.Cooldown, component.CooldownComponent{})
	engine.With(eb, c.Transform, component.TransformComponent{
		Translation: at.Vec3(parameter.LayerNPC),
		Scale:       parameter.SpriteScale,
	})
	engine.With(eb, c.Sprite, component.SpriteComponent{Atlas: asset.AtlasBase, Index: parameter.NPCBodySprite})
	return eb.WithChild(head).Build()
}

// SpawnCamera creates the camera at the origin with the default zoom
func SpawnCamera(w *engine.World) core.Entity {
	c := w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Camera, component.CameraComponent{Zoom: parameter.PlayerZoomDefault})
	engine.With(eb, c.Transform, component.TransformComponent{
		Translation: mgl32.Vec3{0, 0, parameter.LayerCamera},
		Scale:       1,
	})
	return eb.Build()
}

// spawnHead creates a head equipment slot; its transform is relative to the owner
func spawnHead(w *engine.World, layer float32, sprite int) core.Entity {
	c := w.Components
	eb := w.NewEntity()
	engine.With(eb, c.Equipment, component.EquipmentComponent{Slot: component.SlotHead})
	engine.With(eb, c.Transform, component.TransformComponent{
		Translation: mgl32.Vec3{0, 0, layer},
		Scale:       1,
	})
	engine.With(eb, c.Sprite, component.SpriteComponent{Atlas: asset.AtlasAlpha, Index: sprite})
	return eb.Build()
}
