package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/henshin/component"
	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/logger"
	"github.com/lixenwraith/henshin/system"
)

// gridWriter records cells in memory
type gridWriter struct {
	cols, rows int
	cells      [][]rune
}

func newGridWriter(cols, rows int) *gridWriter {
	g := &gridWriter{cols: cols, rows: rows, cells: make([][]rune, rows)}
	for y := range g.cells {
		g.cells[y] = make([]rune, cols)
	}
	return g
}

func (g *gridWriter) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return
	}
	g.cells[y][x] = primary
}

func (g *gridWriter) Size() (int, int) { return g.cols, g.rows }

func (g *gridWriter) row(y int) string { return string(g.cells[y]) }

func newRenderScene(t *testing.T) *engine.GameContext {
	t.Helper()
	ctx := engine.NewGameContext(logger.Discard(), 800, 600, NewPresenter(true))
	if err := system.Setup(ctx.World); err != nil {
		t.Fatal(err)
	}
	system.Register(ctx.World)
	return ctx
}

func TestToCell(t *testing.T) {
	tests := []struct {
		name  string
		ndc   mgl32.Vec4
		x, y  int
		valid bool
	}{
		{"center", mgl32.Vec4{0, 0, 0, 1}, 20, 10, true},
		{"top left", mgl32.Vec4{-1, 1, 0, 1}, 0, 0, true},
		{"bottom right clamps", mgl32.Vec4{1, -1, 0, 1}, 39, 19, true},
		{"outside", mgl32.Vec4{1.5, 0, 0, 1}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := toCell(tt.ndc, 40, 20)
			if ok != tt.valid || (ok && (x != tt.x || y != tt.y)) {
				t.Errorf("toCell = (%d, %d, %v), want (%d, %d, %v)", x, y, ok, tt.x, tt.y, tt.valid)
			}
		})
	}
}

func TestRenderer_PlayerBodyAndHead(t *testing.T) {
	ctx := newRenderScene(t)
	ctx.Tick(0, input.NewSnapshot(nil, nil))

	r := NewRenderer(ctx.World)
	g := newGridWriter(40, 21)
	r.Draw(g)

	// Body at the view center, head slot on the row above
	if got := g.cells[10][20]; got != '@' {
		t.Errorf("Expected body glyph at center, got %q", got)
	}
	if got := g.cells[9][20]; got != '^' {
		t.Errorf("Expected head glyph above the body, got %q", got)
	}
	// Topmost visible tile row (y 128) lands on row 1
	if !strings.Contains(g.row(1), ".") {
		t.Errorf("Expected floor tiles on row 1, got %q", g.row(1))
	}
	status := g.row(20)
	if !strings.Contains(status, "zoom 0.50") || !strings.Contains(status, "normal") {
		t.Errorf("Unexpected status line %q", status)
	}

	ctx.Tick(16*time.Millisecond, input.NewSnapshot(nil, []input.Action{input.Activate}))
	r.Draw(g)

	if got := g.cells[9][20]; got != '*' {
		t.Errorf("Expected transformed head glyph above the body, got %q", got)
	}
	if got := g.cells[10][20]; got != '@' {
		t.Errorf("Expected body glyph to stay visible, got %q", got)
	}
}

func TestRenderer_HiddenTilesSkipped(t *testing.T) {
	ctx := newRenderScene(t)
	ctx.Tick(0, input.NewSnapshot(nil, nil))

	for _, e := range ctx.World.Components.Tile.All() {
		ctx.World.Components.Visibility.Set(e, component.VisibilityComponent{Visible: false})
	}

	g := newGridWriter(40, 21)
	NewRenderer(ctx.World).Draw(g)

	for y := 0; y < 20; y++ {
		if strings.Contains(g.row(y), ".") {
			t.Fatalf("Row %d draws a hidden tile: %q", y, g.row(y))
		}
	}
}

func TestRenderer_TinyScreen(t *testing.T) {
	ctx := newRenderScene(t)
	g := newGridWriter(0, 0)
	NewRenderer(ctx.World).Draw(g)
}

func TestRenderer_NPCHeadAboveBody(t *testing.T) {
	ctx := newRenderScene(t)
	ctx.Tick(0, input.NewSnapshot(nil, []input.Action{input.SpawnNPC}))

	// Move the player off the NPC cell so only the NPC occupies the center
	player := ctx.World.MustPlayer()
	tr, _ := ctx.World.Components.Transform.Get(player)
	tr.Translation[0] = 64
	ctx.World.Components.Transform.Set(player, tr)

	g := newGridWriter(40, 21)
	NewRenderer(ctx.World).Draw(g)

	if got := g.cells[10][20]; got != '&' {
		t.Errorf("Expected NPC body at center, got %q", got)
	}
	if got := g.cells[9][20]; got != '*' {
		t.Errorf("Expected NPC head above the body, got %q", got)
	}
}
