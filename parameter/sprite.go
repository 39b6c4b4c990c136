package parameter

// Sprite indices into the base and alpha atlases
const (
	FloorSprite      = 1
	PlayerBodySprite = 24
	NPCBodySprite    = 26

	// HeadDefaultSprite is the player's head slot before henshin
	HeadDefaultSprite = 33
	// HeadTransformedSprite replaces every head slot on henshin
	HeadTransformedSprite = 0

	// NPCHeadSprite is the head slot of a freshly spawned NPC, independent of player state
	NPCHeadSprite = 0
)
