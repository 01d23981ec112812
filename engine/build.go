package engine

import (
	"fmt"

	"github.com/kielezo-org/kielezo/theme"
)

// ============================================================================
// BUILD — Dispatcher
// ============================================================================
// Entry point: engine.New(surfaces, opts...) then eng.Build(spec) or one of
// the per-kind methods in chart_builder.go.
//
// Pipeline:
//   1. Validate the spec (labels/values alignment)
//   2. Dispatch by kind to a config builder
//   3. Resolve the surface — absent surface is a silent no-op
//   4. Bind a new instance (prior instance on the surface is destroyed)
//
// Everything runs synchronously; a build started runs to completion.
// ============================================================================

// Engine builds chart instances against a fixed surface provider and theme.
type Engine struct {
	surfaces SurfaceProvider
	theme    *theme.Theme
	registry *Registry
}

// New creates an engine over a surface provider.
//
// Options:
//   - WithTheme(t) — override the built-in palette/band/currency theme
func New(surfaces SurfaceProvider, opts ...Option) *Engine {
	cfg := applyOptions(opts)
	return &Engine{
		surfaces: surfaces,
		theme:    cfg.Theme,
		registry: NewRegistry(),
	}
}

// Theme returns the engine's visual theme.
func (e *Engine) Theme() *theme.Theme { return e.theme }

// Registry returns the instance registry.
func (e *Engine) Registry() *Registry { return e.registry }

// configBuilders maps each kind to its config builder. The map doubles as
// the closed-set check: a kind outside it cannot be built.
var configBuilders = map[ChartKind]func(*Engine, ChartSpec) *ChartConfig{
	KindTrend:            (*Engine).trendConfig,
	KindDistribution:     (*Engine).distributionConfig,
	KindComparison:       (*Engine).comparisonConfig,
	KindAttendanceTrend:  (*Engine).attendanceConfig,
	KindCurrencyBar:      (*Engine).currencyBarConfig,
	KindPaymentsPie:      (*Engine).paymentsPieConfig,
	KindExpensesPie:      (*Engine).expensesPieConfig,
	KindStudentVsAverage: (*Engine).versusConfig,
}

// Build constructs a chart instance from a spec and binds it to its surface.
//
// Returns (nil, nil) when the surface does not resolve: charts are optional
// decoration and a page without the surface still renders. Returns an error
// for misaligned label/value sequences or an unregistered kind — both scoped
// to this one chart.
//
// Building on an already-bound surface destroys the prior instance before
// binding the new one.
func (e *Engine) Build(spec ChartSpec) (*Chart, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	build, ok := configBuilders[spec.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, spec.Kind)
	}

	surface, ok := e.surfaces.Surface(spec.SurfaceID)
	if !ok {
		return nil, nil
	}

	chart := &Chart{
		Kind:    spec.Kind,
		Config:  build(e, spec),
		surface: surface,
	}
	chart.Caption = e.caption(spec, chart)
	e.registry.bind(chart)
	return chart, nil
}
