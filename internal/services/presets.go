package services

import (
	"context"
	"slices"

	"github.com/GregMSThompson/dashboard-layout/internal/errs"
	"github.com/GregMSThompson/dashboard-layout/internal/grid"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
	"github.com/GregMSThompson/dashboard-layout/pkg/logger"
)

// DefaultPresets is the built-in preset catalog, used when no catalog file is
// configured.
func DefaultPresets() []models.Preset {
	return []models.Preset{
		{
			Name:        "overview",
			Description: "Portfolio summary with headline stats",
			Widgets: []models.WidgetType{
				models.WidgetPortfolio, models.WidgetStats, models.WidgetIndices,
				models.WidgetChart, models.WidgetAllocation,
			},
		},
		{
			Name:        "trading",
			Description: "Charts, order book and live signals",
			Widgets: []models.WidgetType{
				models.WidgetChart, models.WidgetOrders, models.WidgetSignals, models.WidgetCandlestick,
			},
		},
		{
			Name:        "analytics",
			Description: "Performance and risk breakdowns",
			Widgets: []models.WidgetType{
				models.WidgetStats, models.WidgetReturns, models.WidgetCorrelation,
				models.WidgetHeatmap, models.WidgetAllocation,
			},
		},
		{
			Name:        "research",
			Description: "Model output alongside the trade journal",
			Widgets: []models.WidgetType{
				models.WidgetModel, models.WidgetJournal, models.WidgetSignals, models.WidgetCorrelation,
			},
		},
	}
}

func (s *layoutService) Presets() []models.Preset {
	out := make([]models.Preset, len(s.presets))
	for i, p := range s.presets {
		p.Widgets = slices.Clone(p.Widgets)
		out[i] = p
	}
	return out
}

func (s *layoutService) preset(name string) (models.Preset, bool) {
	for _, p := range s.presets {
		if p.Name == name {
			return p, true
		}
	}
	return models.Preset{}, false
}

// ApplyPreset copies the active layout into a new layout named after the preset,
// enables exactly the preset's widget types and places each of them near its seed
// position without overlapping the widgets placed before it. The new layout
// becomes active and its id is returned.
func (s *layoutService) ApplyPreset(ctx context.Context, name string) (string, error) {
	p, ok := s.preset(name)
	if !ok {
		return "", errs.NewNotFoundError("preset not found: " + name)
	}
	log, ctx := logger.With(ctx, "preset", name)

	var id string
	err := s.mutate(ctx, "apply_preset", func(st *models.LayoutState) error {
		l, err := s.copyActive(st, p.Name, p.Description)
		if err != nil {
			return err
		}
		for i := range l.Widgets {
			l.Widgets[i].Enabled = false
		}
		for i := range l.Widgets {
			w := &l.Widgets[i]
			if !p.Includes(w.Type) {
				continue
			}
			target := w.Position
			if seed, ok := models.SeedWidget(w.Type); ok {
				target = seed.Position
			}
			pos, found := grid.FindPlacement(*l, *w, target)
			if !found {
				log.Warn("no free cell for preset widget, placement may overlap",
					"widget_type", w.Type, "x", pos.X, "y", pos.Y)
			}
			w.Position = pos
			w.Enabled = true
		}
		if logger.IsDebugEnabled(ctx) {
			for _, w := range l.Widgets {
				if w.Enabled {
					log.Debug("preset widget placed", "widget_type", w.Type, "x", w.Position.X, "y", w.Position.Y)
				}
			}
		}
		id = l.ID
		return nil
	})
	return id, err
}
