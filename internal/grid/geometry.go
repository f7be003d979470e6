// Package grid converts between pointer pixels and grid cells and resolves
// widget placement on a fixed-column grid.
package grid

import (
	"math"

	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

// Default pixel metrics of the dashboard grid.
const (
	DefaultCellSize      = 80
	DefaultGap           = 16
	DefaultPadding       = 16
	DefaultDragThreshold = 5
)

// Point is a pixel coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport describes the scrollable grid container at the time of a pointer event.
type Viewport struct {
	Origin Point `json:"origin"` // container top-left in pointer space
	Scroll Point `json:"scroll"` // current scroll offset
}

// Metrics holds the fixed pixel constants of the grid.
type Metrics struct {
	CellSize float64
	Gap      float64
	Padding  float64
}

// DefaultMetrics returns the built-in grid metrics.
func DefaultMetrics() Metrics {
	return Metrics{CellSize: DefaultCellSize, Gap: DefaultGap, Padding: DefaultPadding}
}

func (m Metrics) pitch() float64 { return m.CellSize + m.Gap }

// CellAt maps a pointer position to the grid cell under it. ok is false when the
// pointer sits left of or above the padded content area, or so far right or below
// it that the cell index does not fit an int32.
func (m Metrics) CellAt(pointer Point, vp Viewport) (cell models.Position, ok bool) {
	cx := pointer.X - vp.Origin.X + vp.Scroll.X - m.Padding
	cy := pointer.Y - vp.Origin.Y + vp.Scroll.Y - m.Padding
	if cx < 0 || cy < 0 {
		return models.Position{}, false
	}
	pitch := m.pitch()
	if pitch <= 0 {
		return models.Position{}, false
	}
	col, row := math.Floor(cx/pitch), math.Floor(cy/pitch)
	// NaN fails both comparisons and is rejected here too.
	if !(col <= math.MaxInt32 && row <= math.MaxInt32) {
		return models.Position{}, false
	}
	return models.Position{X: int(col), Y: int(row)}, true
}

// PixelRect is a rectangle in content pixels.
type PixelRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CellRect maps a widget's cell rectangle to content pixels, padding included.
// A widget spanning n cells also spans the n-1 gaps between them.
func (m Metrics) CellRect(pos models.Position, size models.Size) PixelRect {
	pitch := m.pitch()
	return PixelRect{
		X:      m.Padding + float64(pos.X)*pitch,
		Y:      m.Padding + float64(pos.Y)*pitch,
		Width:  span(size.Width, m.CellSize, m.Gap),
		Height: span(size.Height, m.CellSize, m.Gap),
	}
}

func span(cells int, cell, gap float64) float64 {
	if cells <= 0 {
		return 0
	}
	return float64(cells)*cell + float64(cells-1)*gap
}

// ClampPosition keeps x within [0, gridSize-width] and y non-negative. The upper
// bound on x never drops below zero, even for widgets wider than the grid.
func ClampPosition(x, y, width, gridSize int) models.Position {
	return models.Position{X: clampX(x, width, gridSize), Y: max(y, 0)}
}

func clampX(x, width, gridSize int) int {
	return max(min(x, gridSize-width), 0)
}

// ExceedsThreshold reports whether the pointer moved more than threshold pixels
// (Euclidean distance) away from start.
func ExceedsThreshold(start, current Point, threshold float64) bool {
	return math.Hypot(current.X-start.X, current.Y-start.Y) > threshold
}
