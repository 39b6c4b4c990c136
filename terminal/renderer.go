package terminal

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/henshin/asset"
	"github.com/lixenwraith/henshin/core"
	"github.com/lixenwraith/henshin/engine"
)

// CellWriter is the subset of tcell.Screen the renderer draws through
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// drawable is one sprite resolved to world space
// A cell holds one glyph, so equipment overlays are lifted rowOffset rows above their owner
type drawable struct {
	pos       mgl32.Vec3
	rowOffset int
	sprite    asset.Glyph
}

// Renderer projects the world through the camera view onto a character grid
// The bottom row is reserved for the status line
type Renderer struct {
	world *engine.World
	items []drawable
}

// NewRenderer creates a renderer for a world
func NewRenderer(world *engine.World) *Renderer {
	return &Renderer{
		world: world,
		items: make([]drawable, 0, 512),
	}
}

// Draw renders one frame; the caller shows the screen
func (r *Renderer) Draw(cw CellWriter) {
	cols, rows := cw.Size()
	if cols <= 0 || rows <= 1 {
		return
	}
	field := rows - 1

	blank := tcell.StyleDefault
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cw.SetContent(x, y, ' ', nil, blank)
		}
	}

	view := r.world.Resources.View.Rect
	if view.IsEmpty() {
		r.drawStatus(cw, cols, field)
		return
	}
	proj := mgl32.Ortho2D(view.Min.X(), view.Max.X(), view.Min.Y(), view.Max.Y())

	r.collect()
	for _, it := range r.items {
		ndc := proj.Mul4x1(it.pos.Vec4(1))
		x, y, ok := toCell(ndc, cols, field)
		y += it.rowOffset
		if !ok || y < 0 {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.PaletteColor(int(it.sprite.Color)))
		cw.SetContent(x, y, it.sprite.Rune, nil, style)
	}

	r.drawStatus(cw, cols, field)
}

// collect gathers visible root sprites and their children, sorted by depth
func (r *Renderer) collect() {
	c := r.world.Components
	r.items = r.items[:0]

	roots := r.world.Query().
		With(c.Transform).
		With(c.Sprite).
		Without(c.Parent).
		Execute()

	for _, e := range roots {
		if vis, ok := c.Visibility.Get(e); ok && !vis.Visible {
			continue
		}
		tr, _ := c.Transform.Get(e)
		r.add(e, tr.Translation, 0)

		for _, child := range r.world.Children(e) {
			ctr, _ := c.Transform.Get(child)
			r.add(child, tr.Translation.Add(ctr.Translation), -1)
		}
	}

	sort.SliceStable(r.items, func(i, j int) bool {
		return r.items[i].pos.Z() < r.items[j].pos.Z()
	})
}

func (r *Renderer) add(e core.Entity, pos mgl32.Vec3, rowOffset int) {
	sprite, ok := r.world.Components.Sprite.Get(e)
	if !ok {
		return
	}
	r.items = append(r.items, drawable{
		pos:       pos,
		rowOffset: rowOffset,
		sprite:    asset.GlyphFor(sprite.Atlas, sprite.Index),
	})
}

// toCell maps normalized device coordinates to a grid cell, y growing downward
func toCell(ndc mgl32.Vec4, cols, rows int) (int, int, bool) {
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 {
		return 0, 0, false
	}
	x := int((ndc.X() + 1) / 2 * float32(cols))
	y := int((1 - ndc.Y()) / 2 * float32(rows))
	if x >= cols {
		x = cols - 1
	}
	if y >= rows {
		y = rows - 1
	}
	return x, y, true
}

func (r *Renderer) drawStatus(cw CellWriter, cols, row int) {
	w := r.world
	c := w.Components

	zoom := float32(0)
	if cam, ok := c.Camera.Get(w.Resources.Singleton.Camera); ok {
		zoom = cam.Zoom
	}
	state := "?"
	if p, ok := c.Player.Get(w.Resources.Singleton.Player); ok {
		state = p.State.String()
	}
	mode := "-"
	if pr := w.Resources.Present.Presenter; pr != nil {
		mode = pr.PresentMode().String()
	}

	line := fmt.Sprintf(" zoom %.2f | %s | npcs %d | %s ", zoom, state, c.NPC.Count(), mode)
	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, ch := range line {
		if x >= cols {
			break
		}
		cw.SetContent(x, row, ch, nil, style)
		x++
	}
}
