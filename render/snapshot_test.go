package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kielezo-org/kielezo/engine"
	"github.com/kielezo-org/kielezo/page"
)

// ============================================================================
// SNAPSHOTS — smoke render every chart shape to PNG
// ============================================================================

const snapshotPage = `<body>
  <canvas id="performanceChart"></canvas>
  <canvas id="gradesChart"></canvas>
  <canvas id="feesChart"></canvas>
  <canvas id="paymentsChart"></canvas>
</body>`

func snapshotEngine(t *testing.T) *engine.Engine {
	t.Helper()
	doc, err := page.Parse(strings.NewReader(snapshotPage))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return engine.New(doc)
}

func assertPNG(t *testing.T, name string, c *engine.Chart) {
	t.Helper()
	var buf bytes.Buffer
	if err := Snapshot(c, &buf); err != nil {
		t.Fatalf("%s snapshot failed: %v", name, err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("%s snapshot is not a PNG (%d bytes)", name, buf.Len())
	}
}

func TestSnapshotRendersEveryShape(t *testing.T) {
	eng := snapshotEngine(t)

	trend, err := eng.Trend("performanceChart",
		[]string{"Term 1", "Term 2", "Term 3"}, []float64{45, 65, 82})
	if err != nil {
		t.Fatalf("trend build: %v", err)
	}
	grades, err := eng.Distribution("gradesChart",
		[]string{"A", "B", "C"}, []float64{10, 20, 5})
	if err != nil {
		t.Fatalf("distribution build: %v", err)
	}
	fees, err := eng.CurrencyBar("feesChart",
		[]string{"Form 1", "Form 2"}, []float64{250000, 310000})
	if err != nil {
		t.Fatalf("currency bar build: %v", err)
	}
	payments, err := eng.PaymentsPie("paymentsChart",
		[]string{"Mpesa", "Bank"}, []float64{500000, 200000})
	if err != nil {
		t.Fatalf("payments pie build: %v", err)
	}

	assertPNG(t, "line", trend)
	assertPNG(t, "doughnut", grades)
	assertPNG(t, "bar", fees)
	assertPNG(t, "pie", payments)
}

func TestSnapshotLineNeedsTwoPoints(t *testing.T) {
	eng := snapshotEngine(t)
	trend, err := eng.Trend("performanceChart", []string{"Term 1"}, []float64{45})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	var buf bytes.Buffer
	if err := Snapshot(trend, &buf); err == nil {
		t.Error("single-point line snapshot should be rejected")
	}
}

func TestSnapshotPieNeedsPositiveTotal(t *testing.T) {
	eng := snapshotEngine(t)
	payments, err := eng.PaymentsPie("paymentsChart", []string{"Mpesa"}, []float64{0})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	var buf bytes.Buffer
	if err := Snapshot(payments, &buf); err == nil {
		t.Error("zero-total pie snapshot should be rejected")
	}
}
