package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/burst"
)

// newTestRenderer maps the 384x216 demo world onto 96x27 cells (4x8 units each).
func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(96, 27)
	return NewRenderer(screen, 384, 216), screen
}

func cellAt(screen tcell.Screen, col, row int) (rune, tcell.Color) {
	ch, _, style, _ := screen.GetContent(col, row)
	fg, _, _ := style.Decompose()
	return ch, fg
}

func countRune(screen tcell.SimulationScreen, want rune) int {
	cols, rows := screen.Size()
	n := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if ch, _ := cellAt(screen, col, row); ch == want {
				n++
			}
		}
	}
	return n
}

func TestCellAt(t *testing.T) {
	r, _ := newTestRenderer(t)
	tests := []struct {
		x, y     float32
		col, row int
	}{
		{0, 0, 0, 0},
		{3.9, 7.9, 0, 0},
		{4, 8, 1, 1},
		{383, 215, 95, 26},
		{-1, -1, -1, -1},
	}
	for _, tt := range tests {
		col, row := r.CellAt(tt.x, tt.y)
		if col != tt.col || row != tt.row {
			t.Errorf("CellAt(%v, %v) = %d,%d, want %d,%d", tt.x, tt.y, col, row, tt.col, tt.row)
		}
	}
}

func TestDrawRect_FillsCoveredCells(t *testing.T) {
	r, screen := newTestRenderer(t)
	r.DrawRect(136, 160, 16, 16, 0xCC3333FF)

	if got := countRune(screen, blockRune); got != 8 {
		t.Errorf("filled cells = %d, want 8", got)
	}
	ch, fg := cellAt(screen, 34, 20)
	if ch != blockRune {
		t.Fatalf("cell 34,20 = %q, want block", ch)
	}
	if fg != tcell.NewRGBColor(0xCC, 0x33, 0x33) {
		t.Errorf("fg = %v, want #CC3333", fg)
	}
}

func TestDrawRect_SmallerThanCellMarksCenter(t *testing.T) {
	r, screen := newTestRenderer(t)
	r.DrawRect(99, 99, 2, 2, burst.ColorWhite)
	if got := countRune(screen, blockRune); got != 1 {
		t.Errorf("filled cells = %d, want 1", got)
	}
	if ch, _ := cellAt(screen, 25, 12); ch != blockRune {
		t.Errorf("cell 25,12 = %q, want block", ch)
	}
}

func TestDrawRect_AlphaDimsOverBackground(t *testing.T) {
	r, screen := newTestRenderer(t)
	r.DrawRect(100, 100, 2, 2, 0xFF000080)
	_, fg := cellAt(screen, 25, 12)
	if fg != tcell.NewRGBColor(128, 0, 0) {
		t.Errorf("fg = %v, want half red", fg)
	}

	r.DrawRect(200, 100, 2, 2, 0xFF000000)
	if got := countRune(screen, blockRune); got != 1 {
		t.Errorf("transparent rect drew cells: %d total", got)
	}
}

func TestDrawCircle(t *testing.T) {
	r, screen := newTestRenderer(t)
	r.DrawCircle(48, 170, 16, 0x8833AAFF)
	if got := countRune(screen, circleRune); got == 0 {
		t.Fatal("circle drew nothing")
	}
	if ch, _ := cellAt(screen, 12, 21); ch != circleRune {
		t.Errorf("center cell = %q, want circle", ch)
	}

	r.Clear()
	r.DrawCircle(10, 10, 2, burst.ColorWhite)
	if got := countRune(screen, circleRune); got != 1 {
		t.Errorf("tiny circle cells = %d, want 1", got)
	}
}

func TestDrawOffscreenIgnored(t *testing.T) {
	r, screen := newTestRenderer(t)
	r.DrawRect(-50, -50, 10, 10, burst.ColorWhite)
	r.DrawCircle(1000, 1000, 8, burst.ColorWhite)
	r.DrawSprite("spark", 500, -3)
	if countRune(screen, blockRune)+countRune(screen, circleRune)+countRune(screen, spriteRune) != 0 {
		t.Error("offscreen draws touched the screen")
	}
}

func TestDrawText(t *testing.T) {
	r, screen := newTestRenderer(t)
	burst.DrawText(r, "Dust", 8, 184, burst.ColorWhite)
	for i, want := range "Dust" {
		if ch, _ := cellAt(screen, 2+i, 23); ch != want {
			t.Errorf("cell %d = %q, want %q", 2+i, ch, want)
		}
	}
}

func TestParticleManagerDraw(t *testing.T) {
	r, screen := newTestRenderer(t)
	m := burst.NewParticleManager(burst.NewPCGSource(1), burst.ManagerConfig{})
	explosion, _ := burst.DefaultPresets().Get("explosion")
	m.CreateBurst(explosion.At(burst.Vec2{X: 144, Y: 168}))
	m.Draw(r)
	if countRune(screen, blockRune) == 0 {
		t.Error("explosion drew no cells")
	}
}

func TestResize(t *testing.T) {
	r, screen := newTestRenderer(t)
	screen.SetSize(192, 54)
	r.Resize()
	if col, row := r.CellAt(4, 8); col != 2 || row != 2 {
		t.Errorf("after resize CellAt(4, 8) = %d,%d, want 2,2", col, row)
	}
}
