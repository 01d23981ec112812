package engine

import (
	"testing"

	"github.com/kielezo-org/kielezo/theme"
)

// ============================================================================
// ENCODING RULES — bands, formatters, palette assignment
// ============================================================================

func TestBandBoundaries(t *testing.T) {
	bands := theme.Default().Bands

	// Lower bounds are inclusive: 80, 60 and 50 sit in the upper band.
	cases := []struct {
		value float64
		want  string
	}{
		{100, "high"},
		{80, "high"},
		{79.9, "mid"},
		{60, "mid"},
		{59.9, "low"},
		{50, "low"},
		{49.9, "critical"},
		{0, "critical"},
		{-5, "critical"},
	}

	for _, c := range cases {
		if got := BandName(bands, c.value); got != c.want {
			t.Errorf("BandName(%.1f) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestBandColorMatchesName(t *testing.T) {
	th := theme.Default()
	for _, b := range th.Bands {
		if got := BandColor(th.Bands, b.Min); got != b.Color {
			t.Errorf("BandColor(%.0f) = %q, want %q (%s band)", b.Min, got, b.Color, b.Name)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{82, "82%"},
		{0, "0%"},
		{100, "100%"},
		{87.5, "87.50%"},
	}
	for _, c := range cases {
		if got := FormatPercent(c.value); got != c.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{125000, "KSh 125,000"},
		{250000, "KSh 250,000"},
		{950, "KSh 950"},
		{1234567, "KSh 1,234,567"},
	}
	for _, c := range cases {
		if got := FormatCurrency("KSh", c.value); got != c.want {
			t.Errorf("FormatCurrency(KSh, %v) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestCountTooltip(t *testing.T) {
	if got := CountTooltip("A", 10); got != "A: 10 students" {
		t.Errorf("CountTooltip = %q, want %q", got, "A: 10 students")
	}
}

func TestCurrencyTooltip(t *testing.T) {
	tip := CurrencyTooltip("KSh")
	if got := tip("Tuition", 250000); got != "Tuition: KSh 250,000" {
		t.Errorf("CurrencyTooltip = %q, want %q", got, "Tuition: KSh 250,000")
	}
}

func TestPaletteAssignmentByPosition(t *testing.T) {
	palette := theme.Default().GradePalette

	// Colors come strictly from category position, never label content.
	colors := theme.Colors(palette, 5)
	for i, want := range palette {
		if colors[i] != want {
			t.Errorf("color[%d] = %q, want %q", i, colors[i], want)
		}
	}

	// Positions past the palette cycle (documented boundary).
	if got := theme.ColorAt(palette, 5); got != palette[0] {
		t.Errorf("ColorAt(5) = %q, want cycled %q", got, palette[0])
	}
}
