package component

import "github.com/lixenwraith/henshin/asset"

// SpriteComponent selects one sprite of an atlas
type SpriteComponent struct {
	Atlas asset.AtlasID
	Index int
}
