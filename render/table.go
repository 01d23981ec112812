package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/kielezo-org/kielezo/engine"
)

// ============================================================================
// FALLBACK TABLES — accessible data tables per chart
// ============================================================================
// Every hydrated canvas gets a <noscript> table carrying the same series,
// formatted with the chart's own value formatter. Pages read without
// scripting still show the numbers.
// ============================================================================

// Table is the tabular rendering of one chart's series.
type Table struct {
	Title   string
	Header  [2]string
	Rows    [][2]string
	Summary string
}

// FallbackTable lays out a chart's labels and values as a two-column table.
func FallbackTable(c *engine.Chart) *Table {
	format := c.Config.Options.FormatValue
	if format == nil {
		format = func(v float64) string { return fmt.Sprintf("%.2f", v) }
	}

	t := &Table{
		Title:  c.Caption,
		Header: [2]string{categoryHeader(c), valueHeader(c)},
	}

	labels := c.Config.Data.Labels
	var values []float64
	if len(c.Config.Data.Datasets) > 0 {
		values = c.Config.Data.Datasets[0].Data
	}

	var total float64
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		t.Rows = append(t.Rows, [2]string{label, format(v)})
		total += v
	}

	if len(values) > 0 {
		switch c.Kind {
		case engine.KindCurrencyBar, engine.KindPaymentsPie, engine.KindExpensesPie:
			t.Summary = "Total: " + format(total)
		case engine.KindDistribution:
			t.Summary = "Total: " + format(total) + " students"
		default:
			// Percent series: a total is meaningless, report the average.
			t.Summary = "Average: " + format(total/float64(len(values)))
		}
	}

	return t
}

func categoryHeader(c *engine.Chart) string {
	switch c.Kind {
	case engine.KindTrend, engine.KindAttendanceTrend:
		return "Period"
	case engine.KindDistribution:
		return "Grade"
	default:
		return "Category"
	}
}

func valueHeader(c *engine.Chart) string {
	if len(c.Config.Data.Datasets) > 0 && c.Config.Data.Datasets[0].Label != "" {
		return c.Config.Data.Datasets[0].Label
	}
	return "Value"
}

// fallbackHTML renders the table as a <noscript> block.
func fallbackHTML(c *engine.Chart) string {
	t := FallbackTable(c)

	var b strings.Builder
	b.WriteString("<noscript><table>")
	fmt.Fprintf(&b, "<caption>%s</caption>", html.EscapeString(t.Title))
	fmt.Fprintf(&b, "<thead><tr><th>%s</th><th>%s</th></tr></thead><tbody>",
		html.EscapeString(t.Header[0]), html.EscapeString(t.Header[1]))
	for _, row := range t.Rows {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>",
			html.EscapeString(row[0]), html.EscapeString(row[1]))
	}
	b.WriteString("</tbody>")
	if t.Summary != "" {
		fmt.Fprintf(&b, "<tfoot><tr><td colspan=\"2\">%s</td></tr></tfoot>", html.EscapeString(t.Summary))
	}
	b.WriteString("</table></noscript>")
	return b.String()
}
