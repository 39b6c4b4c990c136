package asset

import "fmt"

// AtlasID is an opaque handle to a sprite atlas
// The simulation only ever stores it next to a sprite index
type AtlasID uint8

const (
	AtlasNone AtlasID = iota
	AtlasBase
	AtlasAlpha
)

// Sheet describes a sprite sheet cut on a uniform grid
type Sheet struct {
	Name     string
	Path     string
	TileSize int
	Columns  int
	Rows     int
	Padding  int
}

// Len returns the number of sprites addressable in the sheet
func (s Sheet) Len() int {
	return s.Columns * s.Rows
}

// Registry maps atlas handles to sheet descriptions
type Registry struct {
	sheets map[AtlasID]Sheet
}

// NewRegistry creates a registry with the default base and alpha sheets
func NewRegistry() *Registry {
	return &Registry{
		sheets: map[AtlasID]Sheet{
			AtlasBase:  {Name: "base", Path: "colored.png", TileSize: 16, Columns: 49, Rows: 22, Padding: 1},
			AtlasAlpha: {Name: "alpha", Path: "colored-transparent.png", TileSize: 16, Columns: 49, Rows: 22, Padding: 1},
		},
	}
}

// Sheet returns the description for an atlas handle
func (r *Registry) Sheet(id AtlasID) (Sheet, bool) {
	s, ok := r.sheets[id]
	return s, ok
}

// Validate reports an error if index is outside the atlas
func (r *Registry) Validate(id AtlasID, index int) error {
	s, ok := r.Sheet(id)
	if !ok {
		return fmt.Errorf("unknown atlas %d", id)
	}
	if index < 0 || index >= s.Len() {
		return fmt.Errorf("sprite index %d out of range for atlas %q (%d sprites)", index, s.Name, s.Len())
	}
	return nil
}
