package models

import "time"

const (
	// DefaultLayoutID is the well-known id of the built-in seed layout.
	DefaultLayoutID = "default"
	// DefaultGridSize is the column count of the seed layout.
	DefaultGridSize = 12
)

// DashboardLayout is a named arrangement of widgets sharing one column count.
type DashboardLayout struct {
	ID           string    `firestore:"id" json:"id"`
	Name         string    `firestore:"name" json:"name"`
	Description  string    `firestore:"description,omitempty" json:"description,omitempty"`
	IsDefault    bool      `firestore:"isDefault" json:"isDefault"`
	Widgets      []Widget  `firestore:"widgets" json:"widgets"`
	GridSize     int       `firestore:"gridSize" json:"gridSize"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	LastModified time.Time `firestore:"lastModified" json:"lastModified"`
}

// Clone returns a deep copy of the layout, widgets and settings included.
func (l DashboardLayout) Clone() DashboardLayout {
	if l.Widgets != nil {
		widgets := make([]Widget, len(l.Widgets))
		for i, w := range l.Widgets {
			widgets[i] = w.Clone()
		}
		l.Widgets = widgets
	}
	return l
}

// WidgetIndex returns the index of the first widget of type t, or -1.
func (l DashboardLayout) WidgetIndex(t WidgetType) int {
	for i, w := range l.Widgets {
		if w.Type == t {
			return i
		}
	}
	return -1
}

// LayoutState is the complete persisted value of the layout store.
type LayoutState struct {
	Layouts         []DashboardLayout `firestore:"layouts" json:"layouts"`
	CurrentLayoutID string            `firestore:"currentLayoutId" json:"currentLayoutId"`
	EditMode        bool              `firestore:"editMode" json:"editMode"`
}

// Clone returns a deep copy of the state.
func (s LayoutState) Clone() LayoutState {
	if s.Layouts != nil {
		layouts := make([]DashboardLayout, len(s.Layouts))
		for i, l := range s.Layouts {
			layouts[i] = l.Clone()
		}
		s.Layouts = layouts
	}
	return s
}

// LayoutIndex returns the index of the layout with the given id, or -1.
func (s LayoutState) LayoutIndex(id string) int {
	for i, l := range s.Layouts {
		if l.ID == id {
			return i
		}
	}
	return -1
}

type seedWidget struct {
	t       WidgetType
	enabled bool
	x, y    int
	w, h    int
}

var seedWidgets = []seedWidget{
	{WidgetPortfolio, true, 0, 0, 4, 2},
	{WidgetStats, true, 4, 0, 4, 2},
	{WidgetIndices, true, 8, 0, 4, 2},
	{WidgetChart, true, 0, 2, 8, 4},
	{WidgetSignals, true, 8, 2, 4, 4},
	{WidgetOrders, true, 0, 6, 6, 3},
	{WidgetAllocation, true, 6, 6, 3, 3},
	{WidgetReturns, true, 9, 6, 3, 3},
	{WidgetCorrelation, false, 0, 9, 6, 4},
	{WidgetHeatmap, false, 6, 9, 6, 4},
	{WidgetJournal, false, 0, 13, 6, 3},
	{WidgetModel, false, 6, 13, 6, 3},
	{WidgetCandlestick, false, 0, 16, 12, 5},
}

// SeedWidget returns the built-in default placement for widget type t.
func SeedWidget(t WidgetType) (Widget, bool) {
	for _, s := range seedWidgets {
		if s.t == t {
			return s.widget(), true
		}
	}
	return Widget{}, false
}

func (s seedWidget) widget() Widget {
	return Widget{
		ID:       "widget-" + string(s.t),
		Type:     s.t,
		Enabled:  s.enabled,
		Position: Position{X: s.x, Y: s.y},
		Size:     Size{Width: s.w, Height: s.h},
	}
}

// DefaultLayout builds a fresh copy of the built-in seed layout.
func DefaultLayout(now time.Time) DashboardLayout {
	widgets := make([]Widget, len(seedWidgets))
	for i, s := range seedWidgets {
		widgets[i] = s.widget()
	}
	return DashboardLayout{
		ID:           DefaultLayoutID,
		Name:         "Default Layout",
		Description:  "Built-in dashboard layout",
		IsDefault:    true,
		Widgets:      widgets,
		GridSize:     DefaultGridSize,
		CreatedAt:    now,
		LastModified: now,
	}
}

// DefaultState returns a state holding only the seed layout, edit mode off.
func DefaultState(now time.Time) LayoutState {
	return LayoutState{
		Layouts:         []DashboardLayout{DefaultLayout(now)},
		CurrentLayoutID: DefaultLayoutID,
	}
}
