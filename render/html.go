// Package render turns built chart instances into output: a hydrated HTML
// page whose canvases carry init scripts, accessible fallback tables, and
// headless PNG snapshots. The engine configures these capabilities; it does
// not rasterize anything itself.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kielezo-org/kielezo/engine"
	"github.com/kielezo-org/kielezo/page"
)

const chartJSCDN = "https://cdn.jsdelivr.net/npm/chart.js"

// ============================================================================
// HYDRATE — inject per-canvas init scripts into a scanned page
// ============================================================================

// Hydrate attaches each built chart to its canvas: a runtime script tag in
// the head (once), an aria-label caption on the canvas, a noscript fallback
// table, and an init script after the canvas. Returns the serialized page.
//
// Surfaces are matched by id; charts whose surface has since disappeared
// from the document are skipped.
func Hydrate(doc *page.Document, charts []*engine.Chart) (string, error) {
	root := doc.Root()

	if root.Find(`script[src="`+chartJSCDN+`"]`).Length() == 0 {
		root.Find("head").AppendHtml(fmt.Sprintf(`<script src=%q></script>`, chartJSCDN))
	}

	for _, chart := range charts {
		if chart.Destroyed() {
			continue
		}
		sel := root.Find("#" + chart.SurfaceID()).First()
		if sel.Length() == 0 {
			continue
		}

		sel.SetAttr("role", "img")
		sel.SetAttr("aria-label", chart.Caption)

		script, err := initScript(chart)
		if err != nil {
			return "", fmt.Errorf("surface %q: %w", chart.SurfaceID(), err)
		}
		sel.AfterHtml(fallbackHTML(chart) + script)
	}

	return doc.Html()
}

// initScript emits the chart construction script for one surface. Tooltip
// text is precomputed with the chart's own formatter so the page shows
// exactly what the engine encoded; only tick callbacks stay dynamic.
func initScript(c *engine.Chart) (string, error) {
	cfg, err := json.Marshal(c.Config)
	if err != nil {
		return "", fmt.Errorf("marshal chart config: %w", err)
	}

	var b strings.Builder
	b.WriteString("<script>(function () {\n")
	fmt.Fprintf(&b, "var cfg = %s;\n", cfg)

	if tips := tooltipLines(c); tips != nil {
		tipsJSON, err := json.Marshal(tips)
		if err != nil {
			return "", fmt.Errorf("marshal tooltips: %w", err)
		}
		fmt.Fprintf(&b, "var tips = %s;\n", tipsJSON)
		b.WriteString("cfg.options.plugins.tooltip = { callbacks: { label: function (c) { return tips[c.dataIndex]; } } };\n")
	}

	opts := c.Config.Options
	if _, hasScale := opts.Scales["y"]; hasScale && (opts.TickPrefix != "" || opts.TickSuffix != "") {
		fmt.Fprintf(&b,
			"cfg.options.scales.y.ticks = { callback: function (v) { return %q + v.toLocaleString(\"en\") + %q; } };\n",
			opts.TickPrefix, opts.TickSuffix)
	}

	fmt.Fprintf(&b, "new Chart(document.getElementById(%q), cfg);\n", c.SurfaceID())
	b.WriteString("})();</script>")
	return b.String(), nil
}

// tooltipLines precomputes hover text per data point.
func tooltipLines(c *engine.Chart) []string {
	format := c.Config.Options.FormatTooltip
	if format == nil {
		return nil
	}
	labels := c.Config.Data.Labels
	if len(c.Config.Data.Datasets) == 0 {
		return nil
	}
	values := c.Config.Data.Datasets[0].Data

	tips := make([]string, len(values))
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		tips[i] = format(label, v)
	}
	return tips
}
