package grid

import (
	"math"
	"testing"

	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

func TestCellAt(t *testing.T) {
	m := DefaultMetrics() // pitch 96, padding 16
	tests := []struct {
		name    string
		pointer Point
		vp      Viewport
		want    models.Position
		wantOK  bool
	}{
		{"origin of content", Point{16, 16}, Viewport{}, models.Position{X: 0, Y: 0}, true},
		{"inside first gap", Point{16 + 95, 16}, Viewport{}, models.Position{X: 0, Y: 0}, true},
		{"second column", Point{16 + 96, 16}, Viewport{}, models.Position{X: 1, Y: 0}, true},
		{"container offset", Point{216, 316}, Viewport{Origin: Point{200, 300}}, models.Position{X: 0, Y: 0}, true},
		{"scrolled down", Point{20, 20}, Viewport{Scroll: Point{0, 96 * 3}}, models.Position{X: 0, Y: 3}, true},
		{"inside left padding", Point{10, 40}, Viewport{}, models.Position{}, false},
		{"above container", Point{40, 100}, Viewport{Origin: Point{0, 200}}, models.Position{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.CellAt(tt.pointer, tt.vp)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCellAt_ZeroPitch(t *testing.T) {
	m := Metrics{}
	if _, ok := m.CellAt(Point{10, 10}, Viewport{}); ok {
		t.Fatal("expected rejection for zero pitch")
	}
}

func TestCellAt_RejectsOutOfRangeIndex(t *testing.T) {
	m := DefaultMetrics()
	tests := []struct {
		name    string
		pointer Point
		vp      Viewport
	}{
		{"huge pointer x", Point{1e300, 20}, Viewport{}},
		{"huge scroll y", Point{20, 20}, Viewport{Scroll: Point{0, 1e18}}},
		{"infinite pointer", Point{math.Inf(1), 20}, Viewport{}},
		{"nan pointer", Point{math.NaN(), 20}, Viewport{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if cell, ok := m.CellAt(tt.pointer, tt.vp); ok {
				t.Fatalf("expected the frame to be rejected, got %+v", cell)
			}
		})
	}
}

func TestCellRect_RoundTrip(t *testing.T) {
	m := DefaultMetrics()
	pos := models.Position{X: 3, Y: 2}
	r := m.CellRect(pos, models.Size{Width: 2, Height: 1})

	if r.Width != 2*80+16 || r.Height != 80 {
		t.Errorf("unexpected extent %vx%v", r.Width, r.Height)
	}
	got, ok := m.CellAt(Point{X: r.X + 1, Y: r.Y + 1}, Viewport{})
	if !ok || got != pos {
		t.Errorf("expected %+v, got %+v ok=%v", pos, got, ok)
	}
}

func TestClampPosition(t *testing.T) {
	tests := []struct {
		x, y, width, grid int
		want              models.Position
	}{
		{10, 0, 6, 12, models.Position{X: 6, Y: 0}},
		{-3, -1, 2, 12, models.Position{X: 0, Y: 0}},
		{4, 7, 4, 12, models.Position{X: 4, Y: 7}},
		{5, 0, 14, 12, models.Position{X: 0, Y: 0}}, // wider than grid
	}
	for _, tt := range tests {
		if got := ClampPosition(tt.x, tt.y, tt.width, tt.grid); got != tt.want {
			t.Errorf("ClampPosition(%d,%d,%d,%d) = %+v, want %+v", tt.x, tt.y, tt.width, tt.grid, got, tt.want)
		}
	}
}

func TestExceedsThreshold(t *testing.T) {
	start := Point{100, 100}
	if ExceedsThreshold(start, Point{103, 104}, 5) {
		t.Error("distance 5 should not exceed threshold 5")
	}
	if !ExceedsThreshold(start, Point{104, 104}, 5) {
		t.Error("distance ~5.66 should exceed threshold 5")
	}
}
