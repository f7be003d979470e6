package dto

import (
	"github.com/GregMSThompson/dashboard-layout/internal/grid"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

// --- Layout requests ---

type CreateLayoutRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateLayoutResponse struct {
	ID string `json:"id"`
}

type SetCurrentLayoutRequest struct {
	ID string `json:"id"`
}

type RenameLayoutRequest struct {
	Name string `json:"name"`
}

// LayoutPatch carries the layout fields to shallow-merge. Nil fields are left
// unchanged; a non-nil Widgets replaces the whole widget list.
type LayoutPatch struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Widgets     []models.Widget `json:"widgets,omitempty"`
	GridSize    *int            `json:"gridSize,omitempty"`
}

type EditModeRequest struct {
	Enabled bool `json:"enabled"`
}

// --- Widget requests ---

type WidgetPositionRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type WidgetSizeRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type WidgetEnabledResponse struct {
	Type    models.WidgetType `json:"type"`
	Enabled bool              `json:"enabled"`
}

// --- Editor requests ---

type EditorSelectRequest struct {
	Type models.WidgetType `json:"type"`
}

type PointerDownRequest struct {
	Type  models.WidgetType `json:"type"`
	Point grid.Point        `json:"point"`
}

type PointerMoveRequest struct {
	Point    grid.Point    `json:"point"`
	Viewport grid.Viewport `json:"viewport"`
}

type PointerMoveResponse struct {
	Moved bool `json:"moved"`
}

type PointerUpResponse struct {
	Click bool `json:"click"`
}

// WidgetForm is the discrete numeric edit of a selected widget. Nil fields keep
// the widget's current value.
type WidgetForm struct {
	X      *int `json:"x,omitempty"`
	Y      *int `json:"y,omitempty"`
	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`
}
