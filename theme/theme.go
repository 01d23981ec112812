// Package theme holds the visual configuration charts are encoded with:
// color palettes, performance-band thresholds, and the currency prefix.
// A built-in default theme covers every chart kind; a TOML file can
// override any part of it.
package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ============================================================================
// THEME — Declarative visual configuration
// ============================================================================

// Band maps a lower bound (inclusive) to a color. Bands are evaluated
// highest bound first; a value belongs to the first band it reaches.
type Band struct {
	Name  string  `toml:"name"`
	Min   float64 `toml:"min"`
	Color string  `toml:"color"`
}

// Theme is the full visual configuration.
// Palettes assign colors to categories strictly by position.
type Theme struct {
	CurrencyPrefix string `toml:"currency_prefix"`

	// Bands color trend data points by score, highest bound first.
	Bands []Band `toml:"bands"`

	// GradePalette colors grade-distribution slots A through E.
	GradePalette []string `toml:"grade_palette"`
	// PaymentsPalette colors payment-method breakdown slices.
	PaymentsPalette []string `toml:"payments_palette"`
	// ExpensesPalette colors expense-category breakdown slices.
	ExpensesPalette []string `toml:"expenses_palette"`
	// VersusPalette colors the student/class-average bar pair.
	VersusPalette []string `toml:"versus_palette"`

	TrendLine      string `toml:"trend_line"`
	AttendanceLine string `toml:"attendance_line"`
	ComparisonBar  string `toml:"comparison_bar"`
	FeeBar         string `toml:"fee_bar"`
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{
		CurrencyPrefix: "KSh",
		Bands: []Band{
			{Name: "high", Min: 80, Color: "#10B981"},
			{Name: "mid", Min: 60, Color: "#3B82F6"},
			{Name: "low", Min: 50, Color: "#F59E0B"},
			{Name: "critical", Min: 0, Color: "#EF4444"},
		},
		GradePalette:    []string{"#10B981", "#3B82F6", "#F59E0B", "#EF4444", "#6B7280"},
		PaymentsPalette: []string{"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6"},
		ExpensesPalette: []string{"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6", "#06B6D4"},
		VersusPalette:   []string{"#4F46E5", "#9CA3AF"},
		TrendLine:       "#4F46E5",
		AttendanceLine:  "#4BC0C0",
		ComparisonBar:   "#F59E0B",
		FeeBar:          "#3B82F6",
	}
}

// Load reads a TOML theme file and merges it over the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}

	t := Default()
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse theme file: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks palette sizes and band ordering.
// Each pie/distribution kind needs enough slots for its category count;
// the backend contract caps categories at the palette size.
func (t *Theme) Validate() error {
	if t.CurrencyPrefix == "" {
		return fmt.Errorf("theme: currency_prefix must not be empty")
	}
	if len(t.Bands) == 0 {
		return fmt.Errorf("theme: at least one band is required")
	}
	for i := 1; i < len(t.Bands); i++ {
		if t.Bands[i].Min >= t.Bands[i-1].Min {
			return fmt.Errorf("theme: bands must be ordered by descending min (band %d: %.0f >= %.0f)",
				i, t.Bands[i].Min, t.Bands[i-1].Min)
		}
	}
	checks := []struct {
		name string
		got  int
		want int
	}{
		{"grade_palette", len(t.GradePalette), 5},
		{"payments_palette", len(t.PaymentsPalette), 5},
		{"expenses_palette", len(t.ExpensesPalette), 6},
		{"versus_palette", len(t.VersusPalette), 2},
	}
	for _, c := range checks {
		if c.got < c.want {
			return fmt.Errorf("theme: %s needs at least %d colors, got %d", c.name, c.want, c.got)
		}
	}
	return nil
}

// ColorAt returns the palette color for a category position.
// Positions beyond the palette length cycle back to the start: the markup
// contract caps categories at the palette size, so cycling only keeps
// rendering defined when that contract is broken upstream.
func ColorAt(palette []string, i int) string {
	if len(palette) == 0 {
		return ""
	}
	return palette[i%len(palette)]
}

// Colors returns one palette color per category, assigned by position.
func Colors(palette []string, n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = ColorAt(palette, i)
	}
	return out
}
