package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/kielezo-org/kielezo/engine"
	"github.com/kielezo-org/kielezo/page"
)

// ============================================================================
// SCAN — dispatch, defaults, and per-element failure isolation
// ============================================================================

const dashboardPage = `<!DOCTYPE html>
<html>
<body>
  <canvas id="performanceChart" data-chart="performance"
          data-labels='["Term 1","Term 2","Term 3","Term 4"]'
          data-values='[45,65,82,58]'></canvas>
  <canvas id="gradesChart" data-chart="grades"
          data-labels='["A","B","C","D","E"]'
          data-values='[10,20,5,3,2]'></canvas>
  <canvas id="attendanceChart" data-chart="attendance"
          data-labels='["Mon","Tue","Wed"]'
          data-values='[92,95,88]'></canvas>
  <canvas id="feesChart" data-chart="fees"
          data-labels='["Form 1","Form 2"]'
          data-values='[250000,310000]'></canvas>
  <canvas id="paymentsChart" data-chart="payments"
          data-labels='["Mpesa","Bank"]'
          data-values='[500000,200000]'></canvas>
  <canvas id="expensesChart" data-chart="expenses"
          data-labels='["Salaries","Utilities"]'
          data-values='[800000,90000]'></canvas>
</body>
</html>`

func scanPage(t *testing.T, html string) (*page.Document, *Report) {
	t.Helper()
	doc, err := page.Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	eng := engine.New(doc)
	return doc, Scan(doc, eng)
}

func TestScanDispatchesAllSixKinds(t *testing.T) {
	_, report := scanPage(t, dashboardPage)

	if len(report.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", report.Errors)
	}
	if len(report.Charts) != 6 {
		t.Fatalf("charts = %d, want 6", len(report.Charts))
	}

	// Document order, tags mapped to their kinds.
	want := []struct {
		surface string
		kind    engine.ChartKind
	}{
		{"performanceChart", engine.KindTrend},
		{"gradesChart", engine.KindDistribution},
		{"attendanceChart", engine.KindAttendanceTrend},
		{"feesChart", engine.KindCurrencyBar},
		{"paymentsChart", engine.KindPaymentsPie},
		{"expensesChart", engine.KindExpensesPie},
	}
	for i, w := range want {
		c := report.Charts[i]
		if c.SurfaceID() != w.surface || c.Kind != w.kind {
			t.Errorf("chart[%d] = %s/%s, want %s/%s",
				i, c.SurfaceID(), c.Kind, w.surface, w.kind)
		}
	}
}

func TestScanSkipsUnknownKind(t *testing.T) {
	html := `<body>
	  <canvas id="a" data-chart="heatmap" data-labels='["x"]' data-values='[1]'></canvas>
	  <canvas id="b" data-chart="grades" data-labels='["A"]' data-values='[3]'></canvas>
	</body>`

	_, report := scanPage(t, html)

	if len(report.Charts) != 1 || report.Charts[0].SurfaceID() != "b" {
		t.Fatalf("charts = %v", report.Charts)
	}
	if report.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", report.Skipped)
	}
	if len(report.Errors) != 0 {
		t.Errorf("unknown kinds are skipped, not errors: %v", report.Errors)
	}
}

func TestScanSkipsDeclarationWithoutID(t *testing.T) {
	html := `<body>
	  <canvas data-chart="grades" data-labels='["A"]' data-values='[3]'></canvas>
	</body>`

	_, report := scanPage(t, html)

	if len(report.Charts) != 0 || report.Skipped != 1 {
		t.Fatalf("report = %+v, want 0 charts / 1 skipped", report)
	}
}

func TestScanMalformedPayloadSkipsOnlyThatElement(t *testing.T) {
	html := `<body>
	  <canvas id="bad" data-chart="grades" data-labels='["A",' data-values='[3]'></canvas>
	  <canvas id="good" data-chart="fees" data-labels='["Form 1"]' data-values='[100]'></canvas>
	</body>`

	_, report := scanPage(t, html)

	if len(report.Charts) != 1 || report.Charts[0].SurfaceID() != "good" {
		t.Fatalf("the scan must continue past a malformed element: %+v", report)
	}
	if len(report.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly 1", report.Errors)
	}
	if !errors.Is(report.Errors[0], ErrMalformedPayload) {
		t.Errorf("error should be ErrMalformedPayload, got %v", report.Errors[0])
	}
	if !strings.Contains(report.Errors[0].Error(), "bad") {
		t.Errorf("error should name the surface: %v", report.Errors[0])
	}
}

func TestScanAbsentPayloadsDefaultToEmpty(t *testing.T) {
	html := `<body><canvas id="g" data-chart="grades"></canvas></body>`

	_, report := scanPage(t, html)

	if len(report.Errors) != 0 {
		t.Fatalf("absent attributes are not malformed: %v", report.Errors)
	}
	if len(report.Charts) != 1 {
		t.Fatalf("charts = %d, want 1 (empty chart)", len(report.Charts))
	}
	if n := len(report.Charts[0].Config.Data.Labels); n != 0 {
		t.Errorf("labels = %d, want 0", n)
	}
}

func TestScanLengthMismatchReportedPerChart(t *testing.T) {
	html := `<body>
	  <canvas id="bad" data-chart="fees" data-labels='["Form 1","Form 2"]' data-values='[100]'></canvas>
	  <canvas id="good" data-chart="fees" data-labels='["Form 1"]' data-values='[100]'></canvas>
	</body>`

	_, report := scanPage(t, html)

	if len(report.Charts) != 1 || report.Charts[0].SurfaceID() != "good" {
		t.Fatalf("report = %+v", report)
	}
	if len(report.Errors) != 1 || !errors.Is(report.Errors[0], engine.ErrLengthMismatch) {
		t.Fatalf("want a single ErrLengthMismatch, got %v", report.Errors)
	}
}

// ============================================================================
// DECODE
// ============================================================================

func TestDecodeDefaults(t *testing.T) {
	labels, err := decodeLabels("")
	if err != nil || len(labels) != 0 {
		t.Errorf("decodeLabels(\"\") = %v, %v", labels, err)
	}
	values, err := decodeValues("  ")
	if err != nil || len(values) != 0 {
		t.Errorf("decodeValues(blank) = %v, %v", values, err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := decodeLabels(`{"not":"an array"}`); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("want ErrMalformedPayload, got %v", err)
	}
	if _, err := decodeValues(`["strings"]`); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("want ErrMalformedPayload, got %v", err)
	}
}
