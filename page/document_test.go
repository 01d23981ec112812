package page

import (
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Dashboard</title></head>
<body>
  <canvas id="performanceChart" data-chart="performance"
          data-labels='["Term 1","Term 2"]' data-values='[45,82]'></canvas>
  <canvas id="gradesChart" data-chart="grades"></canvas>
  <canvas id="plainCanvas"></canvas>
  <div data-chart="fees" data-labels='["Form 1"]' data-values='[250000]'></div>
</body>
</html>`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestSurfaceLookup(t *testing.T) {
	doc := parseSample(t)

	s, ok := doc.Surface("performanceChart")
	if !ok {
		t.Fatal("performanceChart should resolve")
	}
	if s.ID() != "performanceChart" {
		t.Errorf("surface id = %q", s.ID())
	}

	if _, ok := doc.Surface("nope"); ok {
		t.Error("unknown id should not resolve")
	}
	if _, ok := doc.Surface(""); ok {
		t.Error("empty id should not resolve")
	}
}

func TestDeclarationsInDocumentOrder(t *testing.T) {
	doc := parseSample(t)

	decls := doc.Declarations()
	if len(decls) != 3 {
		t.Fatalf("declarations = %d, want 3", len(decls))
	}

	if decls[0].SurfaceID != "performanceChart" || decls[0].Kind != "performance" {
		t.Errorf("decl[0] = %+v", decls[0])
	}
	if decls[0].Labels != `["Term 1","Term 2"]` || decls[0].Values != `[45,82]` {
		t.Errorf("decl[0] payloads = %q / %q", decls[0].Labels, decls[0].Values)
	}

	// Absent payload attributes stay empty strings.
	if decls[1].SurfaceID != "gradesChart" || decls[1].Labels != "" || decls[1].Values != "" {
		t.Errorf("decl[1] = %+v", decls[1])
	}

	// The fees declaration has no id: reported as-is, scanner decides.
	if decls[2].Kind != "fees" || decls[2].SurfaceID != "" {
		t.Errorf("decl[2] = %+v", decls[2])
	}
}
