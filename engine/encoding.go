package engine

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/kielezo-org/kielezo/theme"
)

// ============================================================================
// VISUAL ENCODING RULES — pure functions over numeric inputs
// ============================================================================
// Every rule here is stateless: value in, color or formatted string out.
// Builders install these as tick and tooltip formatters; nothing feeds back
// from rendering into the rules.
// ============================================================================

// ============================================================================
// PERFORMANCE BANDS
// ============================================================================

// BandColor classifies a score into its performance band and returns the
// band's color. Bands are ordered highest lower-bound first and bounds are
// inclusive: 80 is "high", 60 is "mid", 50 is "low".
func BandColor(bands []theme.Band, v float64) string {
	for _, b := range bands {
		if v >= b.Min {
			return b.Color
		}
	}
	// Below every bound — the lowest band catches it.
	if len(bands) > 0 {
		return bands[len(bands)-1].Color
	}
	return ""
}

// BandName returns the name of the band a score falls into.
func BandName(bands []theme.Band, v float64) string {
	for _, b := range bands {
		if v >= b.Min {
			return b.Name
		}
	}
	if len(bands) > 0 {
		return bands[len(bands)-1].Name
	}
	return ""
}

// bandColors maps each data point to its band color.
func bandColors(bands []theme.Band, values []float64) []string {
	colors := make([]string, len(values))
	for i, v := range values {
		colors[i] = BandColor(bands, v)
	}
	return colors
}

// ============================================================================
// NUMERIC FORMATTERS
// ============================================================================

var enPrinter = message.NewPrinter(language.English)

// FormatPercent renders a value as "{v}%". Whole numbers drop decimals.
func FormatPercent(v float64) string {
	return fmtNum(v) + "%"
}

// FormatCurrency renders a value with grouping separators and a fixed
// currency prefix: FormatCurrency("KSh", 125000) → "KSh 125,000".
func FormatCurrency(prefix string, v float64) string {
	return enPrinter.Sprintf("%s %v", prefix, number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatCount renders a whole number with grouping separators.
func FormatCount(v float64) string {
	return enPrinter.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// fmtNum renders whole numbers without decimals, fractional values with two.
func fmtNum(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// ============================================================================
// TOOLTIP FORMATTERS
// ============================================================================

// PercentTooltip renders "{label}: {v}%".
func PercentTooltip(label string, v float64) string {
	return label + ": " + FormatPercent(v)
}

// CountTooltip renders "{label}: {value} students" for grade distributions.
func CountTooltip(label string, v float64) string {
	return fmt.Sprintf("%s: %s students", label, FormatCount(v))
}

// CurrencyTooltip returns a tooltip formatter bound to a currency prefix:
// "{label}: KSh 125,000".
func CurrencyTooltip(prefix string) TooltipFunc {
	return func(label string, v float64) string {
		return label + ": " + FormatCurrency(prefix, v)
	}
}

// PlainTooltip renders "{label}: {value}" for non-financial shares.
func PlainTooltip(label string, v float64) string {
	return label + ": " + fmtNum(v)
}

// currencyFormat returns a value formatter bound to a currency prefix.
func currencyFormat(prefix string) FormatFunc {
	return func(v float64) string {
		return FormatCurrency(prefix, v)
	}
}
