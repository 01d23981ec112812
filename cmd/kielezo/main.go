package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kielezo-org/kielezo/engine"
	"github.com/kielezo-org/kielezo/page"
	"github.com/kielezo-org/kielezo/render"
	"github.com/kielezo-org/kielezo/scanner"
	"github.com/kielezo-org/kielezo/theme"
)

// ============================================================================
// KIELEZO CLI — hydrate dashboard markup into living charts
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	filePath := flag.String("file", "", "Path to dashboard HTML page (required)")
	themePath := flag.String("theme", "", "Path to TOML theme override")
	format := flag.String("format", "html", "Output format: html, json, pretty, text")
	snapshotDir := flag.String("snapshots", "", "Write a PNG snapshot per chart into this directory")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Kielezo — chart engine for school dashboards

Usage:
  kielezo --file dashboard.html --format html --out hydrated.html
  kielezo --file dashboard.html --format json
  kielezo --file dashboard.html --theme school.toml --snapshots charts/

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Formats:
  html      Hydrated page: init script per declared chart (default)
  json      Chart configs and scan report as JSON
  pretty    Pretty-printed JSON
  text      One caption line per chart

Markup contract (per chart element):
  data-chart    kind tag: performance, grades, attendance, fees, payments, expenses
  data-labels   JSON array of category labels
  data-values   JSON array of numbers, index-aligned with data-labels
  id            target surface, unique per page
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("kielezo %s\n", version)
		os.Exit(0)
	}

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		flag.Usage()
		os.Exit(1)
	}

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Theme ─────────────────────────────────────────────────────────────
	th := theme.Default()
	if *themePath != "" {
		loaded, err := theme.Load(*themePath)
		if err != nil {
			fatalf("Failed to load theme: %v", err)
		}
		th = loaded
		log.Printf("🎨 Loaded theme from %s", *themePath)
	}

	// ── Parse page ────────────────────────────────────────────────────────
	f, err := os.Open(*filePath)
	if err != nil {
		fatalf("Failed to open page: %v", err)
	}
	doc, err := page.Parse(f)
	f.Close()
	if err != nil {
		fatalf("Failed to parse page: %v", err)
	}

	// ── Scan and build ────────────────────────────────────────────────────
	eng := engine.New(doc, engine.WithTheme(th))
	report := scanner.Scan(doc, eng)

	log.Printf("📊 Kielezo: %d charts built, %d skipped, %d errors",
		len(report.Charts), report.Skipped, len(report.Errors))
	for _, err := range report.Errors {
		log.Printf("⚠️ %v", err)
	}

	// ── Snapshots ─────────────────────────────────────────────────────────
	if *snapshotDir != "" {
		if err := writeSnapshots(*snapshotDir, report.Charts); err != nil {
			fatalf("Failed to write snapshots: %v", err)
		}
	}

	// ── Render output ─────────────────────────────────────────────────────
	switch *format {
	case "html":
		html, err := render.Hydrate(doc, report.Charts)
		if err != nil {
			fatalf("Failed to hydrate page: %v", err)
		}
		fmt.Fprintln(writer, html)
		if *outFile != "" {
			log.Printf("📄 Hydrated page written to %s", *outFile)
		}

	case "text":
		if len(report.Charts) == 0 {
			fmt.Fprintln(writer, "No charts.")
			break
		}
		for _, c := range report.Charts {
			fmt.Fprintf(writer, "%s (%s): %s\n", c.SurfaceID(), c.Kind, c.Caption)
		}

	default:
		writeJSON(writer, cliOutput{
			Page:    *filePath,
			Charts:  chartOutputs(report.Charts),
			Skipped: report.Skipped,
			Errors:  errorStrings(report.Errors),
		}, *format)
	}
}

// ============================================================================
// OUTPUT TYPES
// ============================================================================

type cliOutput struct {
	Page    string        `json:"page"`
	Charts  []chartOutput `json:"charts"`
	Skipped int           `json:"skipped"`
	Errors  []string      `json:"errors,omitempty"`
}

type chartOutput struct {
	Surface string              `json:"surface"`
	Kind    string              `json:"kind"`
	Caption string              `json:"caption"`
	Config  *engine.ChartConfig `json:"config"`
}

func chartOutputs(charts []*engine.Chart) []chartOutput {
	out := make([]chartOutput, 0, len(charts))
	for _, c := range charts {
		out = append(out, chartOutput{
			Surface: c.SurfaceID(),
			Kind:    c.Kind.String(),
			Caption: c.Caption,
			Config:  c.Config,
		})
	}
	return out
}

func errorStrings(errs []error) []string {
	out := make([]string, 0, len(errs))
	for _, err := range errs {
		out = append(out, err.Error())
	}
	return out
}

// ============================================================================
// SNAPSHOTS
// ============================================================================

func writeSnapshots(dir string, charts []*engine.Chart) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, c := range charts {
		path := filepath.Join(dir, c.SurfaceID()+".png")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		err = render.Snapshot(c, f)
		f.Close()
		if err != nil {
			// Snapshot limits (single-point lines, empty pies) shouldn't
			// kill the run; report and move on.
			log.Printf("⚠️ Snapshot %s skipped: %v", c.SurfaceID(), err)
			os.Remove(path)
			continue
		}
		log.Printf("🖼 Snapshot written to %s", path)
	}
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
