package engine

import "github.com/kielezo-org/kielezo/theme"

// ============================================================================
// CHART BUILDERS — one per ChartKind
// ============================================================================
// Each builder accepts a surface identifier and index-aligned label/value
// sequences, applies the encoding rules for its kind, and returns a new
// instance bound to the surface. Builders are independent; none calls
// another and none mutates shared state beyond the registry bind.
// ============================================================================

// Fixed category labels for the student-vs-class comparison.
var versusLabels = []string{"Student", "Class Average"}

// Trend builds a filled score line with per-point performance-band colors.
// The value axis is pinned to [0, 100].
func (e *Engine) Trend(surfaceID string, labels []string, values []float64) (*Chart, error) {
	return e.Build(ChartSpec{SurfaceID: surfaceID, Kind: KindTrend, Labels: labels, Values: values})
}

// Distribution builds a grade-share ring with the fixed 5-slot grade
// palette and a student-count tooltip.
func (e *Engine) Distribution(surfaceID string, labels []string, values []float64) (*Chart, error) {
	return e.Build(ChartSpec{SurfaceID: surfaceID, Kind: KindDistribution, Labels: labels, Values: values})
}

// Comparison builds a single-series percentage bar chart.
func (e *Engine) Comparison(surfaceID string, labels []string, values []float64) (*Chart, error) {
	return e.Build(ChartSpec{SurfaceID: surfaceID, Kind: KindComparison, Labels: labels, Values: values})
}

// AttendanceTrend builds a fixed-color filled attendance line, axis [0, 100].
func (e *Engine) AttendanceTrend(surfaceID string, labels []string, values []float64) (*Chart, error) {
	return e.Build(ChartSpec{SurfaceID: surfaceID, Kind: KindAttendanceTrend, Labels: labels, Values: values})
}

// CurrencyBar builds a single-series bar chart with currency-formatted
// axis ticks and tooltips. The value axis is unbounded above.
func (e *Engine) CurrencyBar(surfaceID string, labels []string, values []float64) (*Chart, error) {
	return e.Build(ChartSpec{SurfaceID: surfaceID, Kind: KindCurrencyBar, Labels: labels, Values: values})
}

// PaymentsPie builds a payment-method share pie with currency tooltips.
func (e *Engine) PaymentsPie(surfaceID string, labels []string, values []float64) (*Chart, error) {
	return e.Build(ChartSpec{SurfaceID: surfaceID, Kind: KindPaymentsPie, Labels: labels, Values: values})
}

// ExpensesPie builds an expense-category share pie (6-slot palette) with
// currency tooltips.
func (e *Engine) ExpensesPie(surfaceID string, labels []string, values []float64) (*Chart, error) {
	return e.Build(ChartSpec{SurfaceID: surfaceID, Kind: KindExpensesPie, Labels: labels, Values: values})
}

// StudentVsAverage builds the two-bar student/class comparison. Categories
// are fixed to ["Student", "Class Average"]; the legend is suppressed.
func (e *Engine) StudentVsAverage(surfaceID string, student, classAverage float64) (*Chart, error) {
	return e.Build(ChartSpec{
		SurfaceID: surfaceID,
		Kind:      KindStudentVsAverage,
		Labels:    versusLabels,
		Values:    []float64{student, classAverage},
	})
}

// ============================================================================
// CONFIG BUILDERS
// ============================================================================

func (e *Engine) trendConfig(spec ChartSpec) *ChartConfig {
	return &ChartConfig{
		Type: "line",
		Data: ChartData{
			Labels: spec.Labels,
			Datasets: []Dataset{{
				Label:                "Average Score",
				Data:                 spec.Values,
				BorderColor:          e.theme.TrendLine,
				Fill:                 true,
				Tension:              0.3,
				PointRadius:          6,
				PointBackgroundColor: bandColors(e.theme.Bands, spec.Values),
			}},
		},
		Options: ChartOptions{
			Responsive:    true,
			Plugins:       Plugins{Legend: Legend{Display: true}},
			Scales:        percentScale(),
			FormatValue:   FormatPercent,
			FormatTooltip: PercentTooltip,
			TickSuffix:    "%",
		},
	}
}

func (e *Engine) distributionConfig(spec ChartSpec) *ChartConfig {
	return &ChartConfig{
		Type: "doughnut",
		Data: ChartData{
			Labels: spec.Labels,
			Datasets: []Dataset{{
				Label:           "Students",
				Data:            spec.Values,
				BackgroundColor: theme.Colors(e.theme.GradePalette, len(spec.Labels)),
			}},
		},
		Options: ChartOptions{
			Responsive:    true,
			Plugins:       Plugins{Legend: Legend{Display: true}},
			FormatValue:   FormatCount,
			FormatTooltip: CountTooltip,
		},
	}
}

func (e *Engine) comparisonConfig(spec ChartSpec) *ChartConfig {
	return &ChartConfig{
		Type: "bar",
		Data: ChartData{
			Labels: spec.Labels,
			Datasets: []Dataset{{
				Label:           "Average Score",
				Data:            spec.Values,
				BackgroundColor: theme.Colors([]string{e.theme.ComparisonBar}, len(spec.Labels)),
			}},
		},
		Options: ChartOptions{
			Responsive:    true,
			Plugins:       Plugins{Legend: Legend{Display: false}},
			Scales:        percentScale(),
			FormatValue:   FormatPercent,
			FormatTooltip: PercentTooltip,
			TickSuffix:    "%",
		},
	}
}

func (e *Engine) attendanceConfig(spec ChartSpec) *ChartConfig {
	return &ChartConfig{
		Type: "line",
		Data: ChartData{
			Labels: spec.Labels,
			Datasets: []Dataset{{
				Label:       "Attendance Rate",
				Data:        spec.Values,
				BorderColor: e.theme.AttendanceLine,
				Fill:        true,
				Tension:     0.3,
				PointRadius: 3,
			}},
		},
		Options: ChartOptions{
			Responsive:    true,
			Plugins:       Plugins{Legend: Legend{Display: true}},
			Scales:        percentScale(),
			FormatValue:   FormatPercent,
			FormatTooltip: PercentTooltip,
			TickSuffix:    "%",
		},
	}
}

func (e *Engine) currencyBarConfig(spec ChartSpec) *ChartConfig {
	return &ChartConfig{
		Type: "bar",
		Data: ChartData{
			Labels: spec.Labels,
			Datasets: []Dataset{{
				Label:           "Collections",
				Data:            spec.Values,
				BackgroundColor: theme.Colors([]string{e.theme.FeeBar}, len(spec.Labels)),
			}},
		},
		Options: ChartOptions{
			Responsive:    true,
			Plugins:       Plugins{Legend: Legend{Display: false}},
			Scales:        currencyScale(),
			FormatValue:   currencyFormat(e.theme.CurrencyPrefix),
			FormatTooltip: CurrencyTooltip(e.theme.CurrencyPrefix),
			TickPrefix:    e.theme.CurrencyPrefix + " ",
		},
	}
}

func (e *Engine) paymentsPieConfig(spec ChartSpec) *ChartConfig {
	return e.pieConfig(spec, e.theme.PaymentsPalette)
}

func (e *Engine) expensesPieConfig(spec ChartSpec) *ChartConfig {
	return e.pieConfig(spec, e.theme.ExpensesPalette)
}

// pieConfig is shared by the two financial breakdown pies; only the palette
// differs between them.
func (e *Engine) pieConfig(spec ChartSpec, palette []string) *ChartConfig {
	return &ChartConfig{
		Type: "pie",
		Data: ChartData{
			Labels: spec.Labels,
			Datasets: []Dataset{{
				Data:            spec.Values,
				BackgroundColor: theme.Colors(palette, len(spec.Labels)),
			}},
		},
		Options: ChartOptions{
			Responsive:    true,
			Plugins:       Plugins{Legend: Legend{Display: true}},
			FormatValue:   currencyFormat(e.theme.CurrencyPrefix),
			FormatTooltip: CurrencyTooltip(e.theme.CurrencyPrefix),
		},
	}
}

func (e *Engine) versusConfig(spec ChartSpec) *ChartConfig {
	return &ChartConfig{
		Type: "bar",
		Data: ChartData{
			Labels: spec.Labels,
			Datasets: []Dataset{{
				Data:            spec.Values,
				BackgroundColor: theme.Colors(e.theme.VersusPalette, len(spec.Labels)),
			}},
		},
		Options: ChartOptions{
			Responsive:    true,
			Plugins:       Plugins{Legend: Legend{Display: false}},
			Scales:        percentScale(),
			FormatValue:   FormatPercent,
			FormatTooltip: PercentTooltip,
			TickSuffix:    "%",
		},
	}
}

// ============================================================================
// SCALES
// ============================================================================

// percentScale pins the value axis to [0, 100] regardless of data range.
func percentScale() map[string]Axis {
	min, max := 0.0, 100.0
	return map[string]Axis{
		"y": {Min: &min, Max: &max},
	}
}

// currencyScale starts at zero and is unbounded above.
func currencyScale() map[string]Axis {
	return map[string]Axis{
		"y": {BeginAtZero: true},
	}
}
