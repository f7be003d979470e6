package models

// WidgetType identifies the kind of content a widget renders.
type WidgetType string

const (
	WidgetPortfolio   WidgetType = "portfolio"
	WidgetStats       WidgetType = "stats"
	WidgetChart       WidgetType = "chart"
	WidgetOrders      WidgetType = "orders"
	WidgetSignals     WidgetType = "signals"
	WidgetIndices     WidgetType = "indices"
	WidgetAllocation  WidgetType = "allocation"
	WidgetReturns     WidgetType = "returns"
	WidgetCorrelation WidgetType = "correlation"
	WidgetHeatmap     WidgetType = "heatmap"
	WidgetJournal     WidgetType = "journal"
	WidgetModel       WidgetType = "model"
	WidgetCandlestick WidgetType = "candlestick"
)

// WidgetTypes lists every supported widget type in seed order.
var WidgetTypes = []WidgetType{
	WidgetPortfolio, WidgetStats, WidgetChart, WidgetOrders, WidgetSignals,
	WidgetIndices, WidgetAllocation, WidgetReturns, WidgetCorrelation,
	WidgetHeatmap, WidgetJournal, WidgetModel, WidgetCandlestick,
}

// Valid reports whether t is one of the known widget types.
func (t WidgetType) Valid() bool {
	for _, known := range WidgetTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Position is a widget's top-left grid cell.
type Position struct {
	X int `firestore:"x" json:"x"`
	Y int `firestore:"y" json:"y"`
}

// Size is a widget's extent in grid cells.
type Size struct {
	Width  int `firestore:"width" json:"width"`
	Height int `firestore:"height" json:"height"`
}

// Widget is one placed widget instance inside a layout.
type Widget struct {
	ID       string         `firestore:"id" json:"id"`
	Type     WidgetType     `firestore:"type" json:"type"`
	Enabled  bool           `firestore:"enabled" json:"enabled"`
	Position Position       `firestore:"position" json:"position"`
	Size     Size           `firestore:"size" json:"size"`
	Settings WidgetSettings `firestore:"settings" json:"settings"`
}

// Rect returns the cell rectangle the widget occupies.
func (w Widget) Rect() Rect {
	return Rect{X: w.Position.X, Y: w.Position.Y, Width: w.Size.Width, Height: w.Size.Height}
}

// Clone returns a deep copy of the widget.
func (w Widget) Clone() Widget {
	w.Settings = w.Settings.Clone()
	return w
}

// Rect is an axis-aligned rectangle in grid cells. Right and Bottom are exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }
