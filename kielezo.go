// Package kielezo provides a chart-rendering and visual-encoding engine
// for school-dashboard metrics.
//
// Usage:
//
//	import "github.com/kielezo-org/kielezo/engine"
//
//	eng := engine.New(surfaces, engine.WithTheme(th))
//	chart, err := eng.Trend("performanceChart",
//	    []string{"Term 1", "Term 2"}, []float64{72, 81})
//
// The engine takes pre-aggregated label/value series (computed upstream by
// the reporting backend) and binds typed, styled chart instances to rendering
// surfaces. Declarative markup is wired up by the scanner package:
//
//	doc, _ := page.Parse(f)
//	report := scanner.Scan(doc, engine.New(doc))
//
// The engine never aggregates, queries, or fetches data — all series arrive
// already computed.
package kielezo
