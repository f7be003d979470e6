package models

import (
	"encoding/json"
	"slices"
)

// WidgetSettings is a union of per-type settings. At most one variant is set and
// it must match the owning widget's type.
type WidgetSettings struct {
	Portfolio   *PortfolioSettings   `firestore:"portfolio,omitempty" json:"portfolio,omitempty"`
	Stats       *StatsSettings       `firestore:"stats,omitempty" json:"stats,omitempty"`
	Chart       *ChartSettings       `firestore:"chart,omitempty" json:"chart,omitempty"`
	Orders      *OrdersSettings      `firestore:"orders,omitempty" json:"orders,omitempty"`
	Signals     *SignalsSettings     `firestore:"signals,omitempty" json:"signals,omitempty"`
	Indices     *IndicesSettings     `firestore:"indices,omitempty" json:"indices,omitempty"`
	Allocation  *AllocationSettings  `firestore:"allocation,omitempty" json:"allocation,omitempty"`
	Returns     *ReturnsSettings     `firestore:"returns,omitempty" json:"returns,omitempty"`
	Correlation *CorrelationSettings `firestore:"correlation,omitempty" json:"correlation,omitempty"`
	Heatmap     *HeatmapSettings     `firestore:"heatmap,omitempty" json:"heatmap,omitempty"`
	Journal     *JournalSettings     `firestore:"journal,omitempty" json:"journal,omitempty"`
	Model       *ModelSettings       `firestore:"model,omitempty" json:"model,omitempty"`
	Candlestick *CandlestickSettings `firestore:"candlestick,omitempty" json:"candlestick,omitempty"`
}

type PortfolioSettings struct {
	Currency string `firestore:"currency,omitempty" json:"currency,omitempty"`
	ShowCash *bool  `firestore:"showCash,omitempty" json:"showCash,omitempty"`
}

type StatsSettings struct {
	Period string `firestore:"period,omitempty" json:"period,omitempty"`
}

type ChartSettings struct {
	Symbol     string `firestore:"symbol,omitempty" json:"symbol,omitempty"`
	Interval   string `firestore:"interval,omitempty" json:"interval,omitempty"`
	ShowVolume *bool  `firestore:"showVolume,omitempty" json:"showVolume,omitempty"`
}

type OrdersSettings struct {
	Limit      int   `firestore:"limit,omitempty" json:"limit,omitempty"`
	ShowFilled *bool `firestore:"showFilled,omitempty" json:"showFilled,omitempty"`
}

type SignalsSettings struct {
	Limit         int     `firestore:"limit,omitempty" json:"limit,omitempty"`
	MinConfidence float64 `firestore:"minConfidence,omitempty" json:"minConfidence,omitempty"`
}

type IndicesSettings struct {
	Symbols []string `firestore:"symbols,omitempty" json:"symbols,omitempty"`
}

type AllocationSettings struct {
	Visualization string `firestore:"visualization,omitempty" json:"visualization,omitempty"` // "pie","bar"
	GroupBy       string `firestore:"groupBy,omitempty" json:"groupBy,omitempty"`
}

type ReturnsSettings struct {
	Period    string `firestore:"period,omitempty" json:"period,omitempty"`
	Benchmark string `firestore:"benchmark,omitempty" json:"benchmark,omitempty"`
}

type CorrelationSettings struct {
	Symbols []string `firestore:"symbols,omitempty" json:"symbols,omitempty"`
	Window  int      `firestore:"window,omitempty" json:"window,omitempty"`
}

type HeatmapSettings struct {
	Metric string `firestore:"metric,omitempty" json:"metric,omitempty"`
}

type JournalSettings struct {
	Limit int `firestore:"limit,omitempty" json:"limit,omitempty"`
}

type ModelSettings struct {
	ModelID string `firestore:"modelId,omitempty" json:"modelId,omitempty"`
}

type CandlestickSettings struct {
	Symbol   string `firestore:"symbol,omitempty" json:"symbol,omitempty"`
	Interval string `firestore:"interval,omitempty" json:"interval,omitempty"`
}

// Kinds returns the widget types whose variants are set, in declaration order.
func (s WidgetSettings) Kinds() []WidgetType {
	var out []WidgetType
	add := func(set bool, t WidgetType) {
		if set {
			out = append(out, t)
		}
	}
	add(s.Portfolio != nil, WidgetPortfolio)
	add(s.Stats != nil, WidgetStats)
	add(s.Chart != nil, WidgetChart)
	add(s.Orders != nil, WidgetOrders)
	add(s.Signals != nil, WidgetSignals)
	add(s.Indices != nil, WidgetIndices)
	add(s.Allocation != nil, WidgetAllocation)
	add(s.Returns != nil, WidgetReturns)
	add(s.Correlation != nil, WidgetCorrelation)
	add(s.Heatmap != nil, WidgetHeatmap)
	add(s.Journal != nil, WidgetJournal)
	add(s.Model != nil, WidgetModel)
	add(s.Candlestick != nil, WidgetCandlestick)
	return out
}

// Merge shallow-merges the fields present in patch into s. Fields left at their
// zero value in patch are treated as absent.
func (s *WidgetSettings) Merge(patch WidgetSettings) error {
	data, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, s)
}

// Clone returns a deep copy so callers never share variant pointers or slices.
func (s WidgetSettings) Clone() WidgetSettings {
	return WidgetSettings{
		Portfolio:   clonePtr(s.Portfolio, func(v *PortfolioSettings) { v.ShowCash = clonePtr(v.ShowCash, nil) }),
		Stats:       clonePtr(s.Stats, nil),
		Chart:       clonePtr(s.Chart, func(v *ChartSettings) { v.ShowVolume = clonePtr(v.ShowVolume, nil) }),
		Orders:      clonePtr(s.Orders, func(v *OrdersSettings) { v.ShowFilled = clonePtr(v.ShowFilled, nil) }),
		Signals:     clonePtr(s.Signals, nil),
		Indices:     clonePtr(s.Indices, func(v *IndicesSettings) { v.Symbols = slices.Clone(v.Symbols) }),
		Allocation:  clonePtr(s.Allocation, nil),
		Returns:     clonePtr(s.Returns, nil),
		Correlation: clonePtr(s.Correlation, func(v *CorrelationSettings) { v.Symbols = slices.Clone(v.Symbols) }),
		Heatmap:     clonePtr(s.Heatmap, nil),
		Journal:     clonePtr(s.Journal, nil),
		Model:       clonePtr(s.Model, nil),
		Candlestick: clonePtr(s.Candlestick, nil),
	}
}

func clonePtr[T any](p *T, deep func(*T)) *T {
	if p == nil {
		return nil
	}
	v := *p
	if deep != nil {
		deep(&v)
	}
	return &v
}
