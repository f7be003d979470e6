package grid

import "github.com/GregMSThompson/dashboard-layout/internal/models"

// MaxPlacementAttempts bounds the free-cell search in FindPlacement.
const MaxPlacementAttempts = 20

// Overlaps reports whether two cell rectangles share at least one cell.
// Rectangles that only touch along an edge do not overlap.
func Overlaps(a, b models.Rect) bool {
	return !(a.Right() <= b.X ||
		b.Right() <= a.X ||
		a.Bottom() <= b.Y ||
		b.Bottom() <= a.Y)
}

// Collides reports whether candidate, placed at pos, overlaps any other enabled
// widget of a different type in the layout.
func Collides(layout models.DashboardLayout, candidate models.Widget, pos models.Position) bool {
	r := models.Rect{X: pos.X, Y: pos.Y, Width: candidate.Size.Width, Height: candidate.Size.Height}
	for _, other := range layout.Widgets {
		if !other.Enabled || other.Type == candidate.Type {
			continue
		}
		if Overlaps(r, other.Rect()) {
			return true
		}
	}
	return false
}

// FindPlacement searches for a cell near target where candidate does not collide.
// The target is clamped on x first. The search then walks right along the row and
// wraps to the next row once the widget would cross the right edge, for at most
// MaxPlacementAttempts probes. found=true means the returned cell is free. When no
// free cell is found the clamped target is returned and found is false; the result
// may then still overlap.
func FindPlacement(layout models.DashboardLayout, candidate models.Widget, target models.Position) (pos models.Position, found bool) {
	width := candidate.Size.Width
	start := models.Position{X: clampX(target.X, width, layout.GridSize), Y: target.Y}
	x, y := start.X, start.Y
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		probe := models.Position{X: x, Y: y}
		if !Collides(layout, candidate, probe) {
			return probe, true
		}
		x++
		if x+width > layout.GridSize {
			x = 0
			y++
		}
	}
	return start, false
}
