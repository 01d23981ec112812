package engine

import "fmt"

// ============================================================================
// CAPTIONS — one-line text summary per chart
// ============================================================================
// Captions back the canvas aria-label and the CLI text format. They reuse
// the same encoding formatters as the chart itself so a screen reader and a
// tooltip agree on how a value reads.
// ============================================================================

// caption produces a short description of the built chart.
func (e *Engine) caption(spec ChartSpec, chart *Chart) string {
	if len(spec.Values) == 0 {
		return fmt.Sprintf("%s chart with no data", spec.Kind)
	}

	format := chart.Config.Options.FormatValue
	if format == nil {
		format = fmtNum
	}

	switch spec.Kind {
	case KindDistribution:
		return fmt.Sprintf("Grade distribution across %d grades, %s students in total",
			len(spec.Values), FormatCount(sum(spec.Values)))

	case KindPaymentsPie, KindExpensesPie, KindCurrencyBar:
		return fmt.Sprintf("%s across %d categories totalling %s",
			titleFor(spec.Kind), len(spec.Values), format(sum(spec.Values)))

	case KindStudentVsAverage:
		return fmt.Sprintf("Student at %s against a class average of %s",
			format(spec.Values[0]), format(spec.Values[1]))

	default:
		lo, hi := minMax(spec.Values)
		return fmt.Sprintf("%s across %d periods, from %s to %s",
			titleFor(spec.Kind), len(spec.Values), format(lo), format(hi))
	}
}

// titleFor returns a human-readable subject for a chart kind.
func titleFor(kind ChartKind) string {
	switch kind {
	case KindTrend:
		return "Score trend"
	case KindComparison:
		return "Score comparison"
	case KindAttendanceTrend:
		return "Attendance trend"
	case KindCurrencyBar:
		return "Fee collections"
	case KindPaymentsPie:
		return "Payments breakdown"
	case KindExpensesPie:
		return "Expenses breakdown"
	default:
		return kind.String()
	}
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func minMax(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
