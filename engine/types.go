package engine

import (
	"errors"
	"fmt"
)

// ============================================================================
// KIELEZO ENGINE TYPES — Chart Specs and Render-Ready Configs
// ============================================================================

// ============================================================================
// CHART KIND — closed set of chart variants
// ============================================================================

// ChartKind selects which builder and encoding rules apply.
type ChartKind int

const (
	// KindTrend is a filled time-series line with per-point quality coloring.
	KindTrend ChartKind = iota
	// KindDistribution is a grade-share ring with a fixed 5-slot palette.
	KindDistribution
	// KindComparison is a single-series percentage bar chart.
	KindComparison
	// KindAttendanceTrend is a fixed-color filled time-series line.
	KindAttendanceTrend
	// KindCurrencyBar is a single-series bar chart with currency axis/tooltip.
	KindCurrencyBar
	// KindPaymentsPie is a payment-method share pie, 5-slot palette.
	KindPaymentsPie
	// KindExpensesPie is an expense-category share pie, 6-slot palette.
	KindExpensesPie
	// KindStudentVsAverage compares exactly two bars: a student against
	// the class average.
	KindStudentVsAverage
)

var kindNames = map[ChartKind]string{
	KindTrend:            "trend",
	KindDistribution:     "distribution",
	KindComparison:       "comparison",
	KindAttendanceTrend:  "attendanceTrend",
	KindCurrencyBar:      "currencyBar",
	KindPaymentsPie:      "paymentsPie",
	KindExpensesPie:      "expensesPie",
	KindStudentVsAverage: "studentVsAverage",
}

func (k ChartKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ChartKind(%d)", int(k))
}

// ============================================================================
// CHART SPEC — Contract between markup scanner and engine
// ============================================================================

// Engine errors. All are recoverable and scoped to a single chart.
var (
	// ErrLengthMismatch means labels and values are not index-aligned.
	ErrLengthMismatch = errors.New("labels and values must have equal length")
	// ErrUnknownKind means the spec names a kind with no registered builder.
	ErrUnknownKind = errors.New("unknown chart kind")
)

// ChartSpec describes one chart to build. Labels and Values are
// index-aligned: Labels[i] describes Values[i]. A spec is constructed at
// scan time, consumed by exactly one Build call, and discarded.
type ChartSpec struct {
	SurfaceID string    `json:"surfaceId"`
	Kind      ChartKind `json:"kind"`
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
}

// Validate rejects specs whose label and value sequences are misaligned.
// StudentVsAverage additionally requires exactly two values.
func (s ChartSpec) Validate() error {
	if len(s.Labels) != len(s.Values) {
		return fmt.Errorf("%w: %d labels, %d values (surface %q)",
			ErrLengthMismatch, len(s.Labels), len(s.Values), s.SurfaceID)
	}
	if s.Kind == KindStudentVsAverage && len(s.Values) != 2 {
		return fmt.Errorf("studentVsAverage requires exactly 2 values, got %d (surface %q)",
			len(s.Values), s.SurfaceID)
	}
	return nil
}

// ============================================================================
// SURFACES — addressable rendering targets
// ============================================================================

// Surface is an addressable rendering target. One chart instance per surface.
type Surface interface {
	ID() string
}

// SurfaceProvider resolves surface identifiers. The page package implements
// this over parsed HTML; tests implement it over a plain map.
type SurfaceProvider interface {
	Surface(id string) (Surface, bool)
}

// ============================================================================
// CHART CONFIG — render-ready output
// ============================================================================

// FormatFunc renders a numeric value for an axis tick, table cell, or
// snapshot label.
type FormatFunc func(v float64) string

// TooltipFunc renders the hover text for one data point.
type TooltipFunc func(label string, v float64) string

// ChartConfig defines how to render a chart. The JSON shape matches what
// canvas chart runtimes consume; the formatter functions are the Go-side
// equivalents of their inline callbacks and never marshal.
type ChartConfig struct {
	Type    string       `json:"type"` // "line", "bar", "doughnut", "pie"
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

// ChartData associates ordered labels with one or more datasets.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one rendered series.
type Dataset struct {
	Label                string    `json:"label,omitempty"`
	Data                 []float64 `json:"data"`
	BackgroundColor      []string  `json:"backgroundColor,omitempty"`
	BorderColor          string    `json:"borderColor,omitempty"`
	Fill                 bool      `json:"fill,omitempty"`
	Tension              float64   `json:"tension,omitempty"`
	PointRadius          int       `json:"pointRadius,omitempty"`
	PointBackgroundColor []string  `json:"pointBackgroundColor,omitempty"`
}

// ChartOptions carries legend, scale, and formatting behavior.
type ChartOptions struct {
	Responsive bool            `json:"responsive"`
	Plugins    Plugins         `json:"plugins"`
	Scales     map[string]Axis `json:"scales,omitempty"`

	// FormatValue renders a single value (axis ticks, fallback tables,
	// snapshots). FormatTooltip renders hover text. Both are named pure
	// functions from the encoding rules.
	FormatValue   FormatFunc  `json:"-"`
	FormatTooltip TooltipFunc `json:"-"`

	// TickPrefix and TickSuffix reproduce FormatValue on the scripting
	// side of a hydrated page, where Go closures cannot travel. Tick
	// values themselves are chosen by the page runtime.
	TickPrefix string `json:"-"`
	TickSuffix string `json:"-"`
}

// Plugins mirrors the runtime's plugin options block.
type Plugins struct {
	Legend Legend `json:"legend"`
}

// Legend controls legend visibility.
type Legend struct {
	Display bool `json:"display"`
}

// Axis bounds one scale. Percentage charts pin [0, 100] regardless of the
// actual data range; currency charts only begin at zero.
type Axis struct {
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	BeginAtZero bool     `json:"beginAtZero,omitempty"`
}

// ============================================================================
// CHART — the built instance
// ============================================================================

// Chart is a configured chart instance bound to its surface. The surface
// owns the instance for its lifetime; rebinding the surface destroys the
// prior instance first (see Registry).
type Chart struct {
	Kind    ChartKind
	Config  *ChartConfig
	Caption string

	surface   Surface
	destroyed bool
}

// Surface returns the rendering target this chart is bound to.
func (c *Chart) Surface() Surface { return c.surface }

// SurfaceID returns the bound surface's identifier.
func (c *Chart) SurfaceID() string { return c.surface.ID() }

// Destroy detaches the instance from its surface. Destroying twice is a no-op.
func (c *Chart) Destroy() { c.destroyed = true }

// Destroyed reports whether the instance has been detached.
func (c *Chart) Destroyed() bool { return c.destroyed }
