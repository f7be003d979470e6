// Package editor implements the interactive layout editor: widget selection, the
// pointer drag gesture and the discrete position/size form.
package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/GregMSThompson/dashboard-layout/internal/dto"
	"github.com/GregMSThompson/dashboard-layout/internal/errs"
	"github.com/GregMSThompson/dashboard-layout/internal/grid"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
	"github.com/GregMSThompson/dashboard-layout/pkg/helpers"
	"github.com/GregMSThompson/dashboard-layout/pkg/logger"
)

// layoutEditor is the slice of the layout service the editor drives.
type layoutEditor interface {
	CurrentLayout() (models.DashboardLayout, bool)
	EditMode() bool
	UpdateWidgetPosition(ctx context.Context, t models.WidgetType, x, y int) error
	UpdateWidgetSize(ctx context.Context, t models.WidgetType, width, height int) error
}

// DragState describes the gesture in progress. Moving turns true once the
// pointer has travelled past the drag threshold.
type DragState struct {
	Type   models.WidgetType `json:"type"`
	Start  grid.Point        `json:"start"`
	Moving bool              `json:"moving"`
}

// State is a point-in-time view of the editor.
type State struct {
	EditMode bool              `json:"editMode"`
	Selected models.WidgetType `json:"selected,omitempty"`
	Drag     *DragState        `json:"drag,omitempty"`
}

type editor struct {
	layouts   layoutEditor
	metrics   grid.Metrics
	threshold float64

	mu       sync.Mutex
	selected models.WidgetType
	drag     *DragState
}

func NewEditor(layouts layoutEditor, metrics grid.Metrics, threshold float64) *editor {
	return &editor{
		layouts:   layouts,
		metrics:   metrics,
		threshold: threshold,
	}
}

// Select marks t as the widget the form edits. An empty type clears the selection.
func (e *editor) Select(t models.WidgetType) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if t == "" {
		e.selected = ""
		return nil
	}
	if _, err := e.widget(t); err != nil {
		return err
	}
	e.selected = t
	return nil
}

func (e *editor) Selected() (models.WidgetType, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected, e.selected != ""
}

// PointerDown arms a drag on the widget of type t and selects it. Any gesture
// still in progress is dropped.
func (e *editor) PointerDown(ctx context.Context, t models.WidgetType, p grid.Point) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.widget(t); err != nil {
		return err
	}
	e.selected = t
	e.drag = &DragState{Type: t, Start: p}
	logger.FromContext(ctx).Debug("drag armed", "widget_type", t, "x", p.X, "y", p.Y)
	return nil
}

// PointerMove advances the drag. Nothing moves until the pointer has left the
// threshold circle around the start point; after that each event is mapped to a
// grid cell and written through as the widget's position. Frames whose pointer is
// outside the grid content area are skipped. moved reports whether a position
// update was applied.
func (e *editor) PointerMove(ctx context.Context, p grid.Point, vp grid.Viewport) (moved bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.drag == nil {
		return false, nil
	}
	if !e.layouts.EditMode() {
		e.drag = nil
		return false, errs.NewValidationError("edit mode is off")
	}
	if !e.drag.Moving {
		if !grid.ExceedsThreshold(e.drag.Start, p, e.threshold) {
			return false, nil
		}
		e.drag.Moving = true
		logger.FromContext(ctx).Debug("drag started", "widget_type", e.drag.Type)
	}

	cell, ok := e.metrics.CellAt(p, vp)
	if !ok {
		return false, nil
	}
	l, ok := e.layouts.CurrentLayout()
	if !ok {
		e.drag = nil
		return false, errs.NewNotFoundError("no active layout")
	}
	i := l.WidgetIndex(e.drag.Type)
	if i < 0 {
		e.drag = nil
		return false, errs.NewNotFoundError(fmt.Sprintf("widget %q not found in layout", e.drag.Type))
	}
	w := l.Widgets[i]
	pos := grid.ClampPosition(cell.X, cell.Y, w.Size.Width, l.GridSize)
	if pos == w.Position {
		return false, nil
	}
	if err := e.layouts.UpdateWidgetPosition(ctx, w.Type, pos.X, pos.Y); err != nil {
		return false, err
	}
	return true, nil
}

// PointerUp ends the gesture, keeping the last applied position. click is true
// when the pointer never travelled past the threshold.
func (e *editor) PointerUp(ctx context.Context) (click bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.drag == nil {
		return false
	}
	click = !e.drag.Moving
	logger.FromContext(ctx).Debug("drag ended", "widget_type", e.drag.Type, "click", click)
	e.drag = nil
	return click
}

// PointerLeave ends the gesture the same way as PointerUp.
func (e *editor) PointerLeave(ctx context.Context) bool {
	return e.PointerUp(ctx)
}

// ApplyForm writes discrete values from the editor form. Omitted fields keep the
// widget's current value. The size is written first so the position update
// clamps against the new width.
func (e *editor) ApplyForm(ctx context.Context, t models.WidgetType, form dto.WidgetForm) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	w, err := e.widget(t)
	if err != nil {
		return err
	}
	width := helpers.ValueOr(form.Width, w.Size.Width)
	height := helpers.ValueOr(form.Height, w.Size.Height)
	if form.Width != nil || form.Height != nil {
		if err := e.layouts.UpdateWidgetSize(ctx, t, width, height); err != nil {
			return err
		}
	}
	x := helpers.ValueOr(form.X, w.Position.X)
	y := helpers.ValueOr(form.Y, w.Position.Y)
	if err := e.layouts.UpdateWidgetPosition(ctx, t, x, y); err != nil {
		return err
	}
	e.selected = t
	return nil
}

func (e *editor) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := State{EditMode: e.layouts.EditMode(), Selected: e.selected}
	if e.drag != nil {
		d := *e.drag
		st.Drag = &d
	}
	return st
}

// widget checks edit mode and resolves t in the active layout. Callers hold mu.
func (e *editor) widget(t models.WidgetType) (models.Widget, error) {
	if !t.Valid() {
		return models.Widget{}, errs.NewValidationError("unknown widget type: " + string(t))
	}
	if !e.layouts.EditMode() {
		return models.Widget{}, errs.NewValidationError("edit mode is off")
	}
	l, ok := e.layouts.CurrentLayout()
	if !ok {
		return models.Widget{}, errs.NewNotFoundError("no active layout")
	}
	i := l.WidgetIndex(t)
	if i < 0 {
		return models.Widget{}, errs.NewNotFoundError(fmt.Sprintf("widget %q not found in layout", t))
	}
	return l.Widgets[i], nil
}
