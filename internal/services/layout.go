package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GregMSThompson/dashboard-layout/internal/dto"
	"github.com/GregMSThompson/dashboard-layout/internal/errs"
	"github.com/GregMSThompson/dashboard-layout/internal/grid"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
	"github.com/GregMSThompson/dashboard-layout/pkg/logger"
)

// layoutStateStore is the persistence interface for the layout state.
type layoutStateStore interface {
	Load(ctx context.Context) (*models.LayoutState, error)
	Save(ctx context.Context, state models.LayoutState) error
}

// Subscriber receives a snapshot of the state after every successful mutation.
// Subscribers run synchronously and must not call mutating methods.
type Subscriber func(state models.LayoutState)

type subscription struct {
	id int
	fn Subscriber
}

// layoutService owns the collection of layouts, the active layout id and the
// edit-mode flag. Widget operations act on the active layout and look widgets up
// by type.
type layoutService struct {
	store   layoutStateStore
	presets []models.Preset
	now     func() time.Time
	newID   func() string

	mu    sync.RWMutex
	state models.LayoutState

	// notifyMu is taken before mu is released so subscribers observe
	// mutations in the order they were applied.
	notifyMu sync.Mutex
	subsMu   sync.Mutex
	subs     []subscription
	nextSub  int
}

func NewLayoutService(store layoutStateStore, presets []models.Preset) *layoutService {
	if len(presets) == 0 {
		presets = DefaultPresets()
	}
	return &layoutService{
		store:   store,
		presets: presets,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
		state:   models.DefaultState(time.Now()),
	}
}

// --- Lifecycle ---

// Load rehydrates the state from the store. Missing state keeps the seed layout;
// state persisted under an unsupported version is discarded in favour of the seed.
func (s *layoutService) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	state, err := s.store.Load(ctx)
	var nf *errs.NotFoundError
	var ve *errs.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &nf):
		log.Info("no persisted layout state, starting from the default layout")
	case errors.As(err, &ve):
		log.Warn("discarding persisted layout state", "error", ve.Message)
	default:
		return err
	}

	s.mu.Lock()
	if state != nil {
		s.state = *state
	} else {
		s.state = models.DefaultState(s.now())
	}
	s.mu.Unlock()

	log.Debug("layout state loaded", "layouts", len(s.State().Layouts))
	return nil
}

// --- Queries ---

// State returns a deep copy of the whole state.
func (s *layoutService) State() models.LayoutState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// CurrentLayout resolves the active layout id. ok is false when the id does not
// match any layout.
func (s *layoutService) CurrentLayout() (models.DashboardLayout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.state.LayoutIndex(s.state.CurrentLayoutID)
	if i < 0 {
		return models.DashboardLayout{}, false
	}
	return s.state.Layouts[i].Clone(), true
}

// WidgetEnabled reports whether the active layout has an enabled widget of type t.
func (s *layoutService) WidgetEnabled(t models.WidgetType) bool {
	l, ok := s.CurrentLayout()
	if !ok {
		return false
	}
	i := l.WidgetIndex(t)
	return i >= 0 && l.Widgets[i].Enabled
}

func (s *layoutService) EditMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.EditMode
}

// Subscribe registers fn for change notifications and returns its cancel func.
func (s *layoutService) Subscribe(fn Subscriber) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// --- Layout commands ---

func (s *layoutService) CreateLayout(ctx context.Context, name, description string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValidationError("layout name is required")
	}
	var id string
	err := s.mutate(ctx, "create_layout", func(st *models.LayoutState) error {
		l, err := s.copyActive(st, name, description)
		if err != nil {
			return err
		}
		id = l.ID
		return nil
	})
	return id, err
}

func (s *layoutService) DeleteLayout(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete_layout", func(st *models.LayoutState) error {
		i := st.LayoutIndex(id)
		if i < 0 {
			return errs.NewNotFoundError("layout not found")
		}
		if id == models.DefaultLayoutID || st.Layouts[i].IsDefault {
			return errs.NewValidationError("the default layout cannot be deleted")
		}
		st.Layouts = append(st.Layouts[:i], st.Layouts[i+1:]...)
		if st.CurrentLayoutID == id {
			st.CurrentLayoutID = models.DefaultLayoutID
		}
		return nil
	})
}

// SetCurrentLayout switches the active layout without checking that id exists.
func (s *layoutService) SetCurrentLayout(ctx context.Context, id string) error {
	return s.mutate(ctx, "set_current_layout", func(st *models.LayoutState) error {
		st.CurrentLayoutID = id
		return nil
	})
}

func (s *layoutService) UpdateLayout(ctx context.Context, id string, patch dto.LayoutPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return errs.NewValidationError("layout name is required")
	}
	if patch.GridSize != nil && *patch.GridSize < 1 {
		return errs.NewValidationError("gridSize must be at least 1")
	}
	if err := validateWidgets(patch.Widgets); err != nil {
		return err
	}
	return s.mutate(ctx, "update_layout", func(st *models.LayoutState) error {
		i := st.LayoutIndex(id)
		if i < 0 {
			return errs.NewNotFoundError("layout not found")
		}
		l := &st.Layouts[i]
		if patch.Name != nil {
			l.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Description != nil {
			l.Description = *patch.Description
		}
		if patch.Widgets != nil {
			l.Widgets = models.DashboardLayout{Widgets: patch.Widgets}.Clone().Widgets
		}
		if patch.GridSize != nil {
			l.GridSize = *patch.GridSize
		}
		l.LastModified = s.now()
		return nil
	})
}

func (s *layoutService) RenameLayout(ctx context.Context, id, name string) error {
	return s.UpdateLayout(ctx, id, dto.LayoutPatch{Name: &name})
}

// ResetToDefault replaces every layout with a fresh seed layout and leaves edit mode.
func (s *layoutService) ResetToDefault(ctx context.Context) error {
	return s.mutate(ctx, "reset_to_default", func(st *models.LayoutState) error {
		*st = models.DefaultState(s.now())
		return nil
	})
}

func (s *layoutService) SetEditMode(ctx context.Context, enabled bool) error {
	return s.mutate(ctx, "set_edit_mode", func(st *models.LayoutState) error {
		st.EditMode = enabled
		return nil
	})
}

// --- Widget commands ---

func (s *layoutService) ToggleWidget(ctx context.Context, t models.WidgetType) error {
	return s.mutateWidget(ctx, "toggle_widget", t, func(_ *models.DashboardLayout, w *models.Widget) error {
		w.Enabled = !w.Enabled
		return nil
	})
}

// UpdateWidgetSettings shallow-merges patch into the widget's settings. The patch
// must carry exactly the variant matching t.
func (s *layoutService) UpdateWidgetSettings(ctx context.Context, t models.WidgetType, patch models.WidgetSettings) error {
	kinds := patch.Kinds()
	if len(kinds) != 1 || kinds[0] != t {
		return errs.NewValidationError(fmt.Sprintf("settings must carry exactly the %q variant", t))
	}
	return s.mutateWidget(ctx, "update_widget_settings", t, func(_ *models.DashboardLayout, w *models.Widget) error {
		if err := w.Settings.Merge(patch); err != nil {
			return errs.NewValidationError("invalid settings: " + err.Error())
		}
		return nil
	})
}

// UpdateWidgetPosition clamps (x, y) into the grid and moves the widget there.
// Overlap with other widgets is not checked.
func (s *layoutService) UpdateWidgetPosition(ctx context.Context, t models.WidgetType, x, y int) error {
	return s.mutateWidget(ctx, "update_widget_position", t, func(l *models.DashboardLayout, w *models.Widget) error {
		w.Position = grid.ClampPosition(x, y, w.Size.Width, l.GridSize)
		return nil
	})
}

// UpdateWidgetSize overwrites the widget's extent, flooring each side at one cell.
// The position is not re-clamped, so the widget may cross the right edge until
// its next position update.
func (s *layoutService) UpdateWidgetSize(ctx context.Context, t models.WidgetType, width, height int) error {
	return s.mutateWidget(ctx, "update_widget_size", t, func(_ *models.DashboardLayout, w *models.Widget) error {
		w.Size = models.Size{Width: max(width, 1), Height: max(height, 1)}
		return nil
	})
}

// --- Internals ---

// mutate applies fn to a copy of the state under the write lock. An error from fn
// discards the copy. Otherwise the copy becomes the state, is persisted and is
// published to subscribers. A persistence failure is returned but the in-memory
// change is kept.
func (s *layoutService) mutate(ctx context.Context, op string, fn func(st *models.LayoutState) error) error {
	log := logger.FromContext(ctx).With("op", op)

	s.mu.Lock()
	next := s.state.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		log.Debug("layout mutation rejected", "error", err)
		return err
	}
	s.state = next
	saveErr := s.store.Save(ctx, next)
	snapshot := next.Clone()
	s.notifyMu.Lock()
	s.mu.Unlock()

	s.publish(snapshot)
	s.notifyMu.Unlock()

	if saveErr != nil {
		log.Error("failed to persist layout state", "error", saveErr)
		var dbe *errs.DatabaseError
		if !errors.As(saveErr, &dbe) {
			saveErr = errs.NewDatabaseError("write", "failed to persist layout state", saveErr)
		}
		return saveErr
	}
	log.Debug("layout state updated", "current_layout_id", snapshot.CurrentLayoutID)
	return nil
}

func (s *layoutService) publish(state models.LayoutState) {
	s.subsMu.Lock()
	subs := append([]subscription(nil), s.subs...)
	s.subsMu.Unlock()
	for _, sub := range subs {
		sub.fn(state)
	}
}

func (s *layoutService) mutateWidget(ctx context.Context, op string, t models.WidgetType, fn func(l *models.DashboardLayout, w *models.Widget) error) error {
	if !t.Valid() {
		return errs.NewValidationError("unknown widget type: " + string(t))
	}
	return s.mutate(ctx, op, func(st *models.LayoutState) error {
		li := st.LayoutIndex(st.CurrentLayoutID)
		if li < 0 {
			return errs.NewNotFoundError("no active layout")
		}
		l := &st.Layouts[li]
		wi := l.WidgetIndex(t)
		if wi < 0 {
			return errs.NewNotFoundError(fmt.Sprintf("widget %q not found in layout", t))
		}
		if err := fn(l, &l.Widgets[wi]); err != nil {
			return err
		}
		l.LastModified = s.now()
		return nil
	})
}

// copyActive appends a deep copy of the active layout under a new id and makes it
// active.
func (s *layoutService) copyActive(st *models.LayoutState, name, description string) (*models.DashboardLayout, error) {
	i := st.LayoutIndex(st.CurrentLayoutID)
	if i < 0 {
		return nil, errs.NewNotFoundError("no active layout to copy")
	}
	src := st.Layouts[i].Clone()
	now := s.now()
	st.Layouts = append(st.Layouts, models.DashboardLayout{
		ID:           s.newID(),
		Name:         name,
		Description:  description,
		IsDefault:    false,
		Widgets:      src.Widgets,
		GridSize:     src.GridSize,
		CreatedAt:    now,
		LastModified: now,
	})
	l := &st.Layouts[len(st.Layouts)-1]
	st.CurrentLayoutID = l.ID
	return l, nil
}

func validateWidgets(widgets []models.Widget) error {
	if widgets == nil {
		return nil
	}
	if len(widgets) == 0 {
		return errs.NewValidationError("a layout needs at least one widget")
	}
	ids := make(map[string]bool, len(widgets))
	for _, w := range widgets {
		if !w.Type.Valid() {
			return errs.NewValidationError("unknown widget type: " + string(w.Type))
		}
		if w.ID == "" || ids[w.ID] {
			return errs.NewValidationError(fmt.Sprintf("widget ids must be unique and non-empty (%q)", w.ID))
		}
		ids[w.ID] = true
		if w.Position.X < 0 || w.Position.Y < 0 {
			return errs.NewValidationError(fmt.Sprintf("widget %q has a negative position", w.ID))
		}
		if w.Size.Width < 1 || w.Size.Height < 1 {
			return errs.NewValidationError(fmt.Sprintf("widget %q must be at least 1x1", w.ID))
		}
		for _, k := range w.Settings.Kinds() {
			if k != w.Type {
				return errs.NewValidationError(fmt.Sprintf("widget %q carries %q settings", w.ID, k))
			}
		}
	}
	return nil
}
