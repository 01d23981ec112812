// Package scanner wires declarative chart markup to the engine's builders.
// Scan is an explicit entry point over an injected document — there is no
// global ready hook, so the whole flow runs headless under test.
package scanner

import (
	"fmt"

	"github.com/kielezo-org/kielezo/engine"
	"github.com/kielezo-org/kielezo/page"
)

// ============================================================================
// DISPATCH TABLE — markup tag → chart kind
// ============================================================================
// Closed set of six dispatchable tags. Comparison and studentVsAverage are
// API-only: other page components invoke those builders directly, never
// through markup.
// ============================================================================

var dispatch = map[string]engine.ChartKind{
	"performance": engine.KindTrend,
	"grades":      engine.KindDistribution,
	"attendance":  engine.KindAttendanceTrend,
	"fees":        engine.KindCurrencyBar,
	"payments":    engine.KindPaymentsPie,
	"expenses":    engine.KindExpensesPie,
}

// ============================================================================
// REPORT
// ============================================================================

// Report is the outcome of one scan. Errors are per-element and recoverable:
// each entry names the surface it belongs to, and no entry stops the scan.
type Report struct {
	Charts  []*engine.Chart
	Skipped int // unknown kind, missing id, or missing surface
	Errors  []error
}

// ============================================================================
// SCAN
// ============================================================================

// Scan walks every chart-declaring element in document order, decodes its
// payloads, and dispatches to the builder for its kind.
//
// Per-element outcomes:
//   - unknown kind or missing id: skipped silently (counted)
//   - malformed payload: element skipped, error recorded, scan continues
//   - missing surface: builder no-op, counted as skipped
//   - build rejection (e.g. misaligned sequences): error recorded
//
// Each surface's chart is created before Scan returns.
func Scan(doc *page.Document, eng *engine.Engine) *Report {
	report := &Report{}

	for _, decl := range doc.Declarations() {
		kind, ok := dispatch[decl.Kind]
		if !ok {
			report.Skipped++
			continue
		}
		if decl.SurfaceID == "" {
			report.Skipped++
			continue
		}

		labels, err := decodeLabels(decl.Labels)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("surface %q: %w", decl.SurfaceID, err))
			continue
		}
		values, err := decodeValues(decl.Values)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("surface %q: %w", decl.SurfaceID, err))
			continue
		}

		chart, err := eng.Build(engine.ChartSpec{
			SurfaceID: decl.SurfaceID,
			Kind:      kind,
			Labels:    labels,
			Values:    values,
		})
		if err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("surface %q: %w", decl.SurfaceID, err))
			continue
		}
		if chart == nil {
			report.Skipped++
			continue
		}
		report.Charts = append(report.Charts, chart)
	}

	return report
}
