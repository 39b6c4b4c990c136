package component

// NPCComponent marks non-player characters
type NPCComponent struct{}
