// Package page adapts parsed HTML into the engine's surface and
// declaration contracts. A Document is both the SurfaceProvider charts
// bind to and the source of chart declarations the scanner walks.
package page

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"

	"github.com/kielezo-org/kielezo/engine"
)

// Attribute names of the declarative markup contract.
const (
	attrKind   = "data-chart"
	attrLabels = "data-labels"
	attrValues = "data-values"
)

// ============================================================================
// DOCUMENT
// ============================================================================

// Document wraps a parsed HTML page.
type Document struct {
	doc *goquery.Document
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Root exposes the underlying parsed document for render-time manipulation.
func (d *Document) Root() *goquery.Document { return d.doc }

// Html serializes the document back to markup.
func (d *Document) Html() (string, error) {
	return d.doc.Html()
}

// ============================================================================
// SURFACE PROVIDER
// ============================================================================

// Surface is a renderable element addressed by its id attribute.
type Surface struct {
	id  string
	sel *goquery.Selection
}

// ID returns the element id the surface was resolved by.
func (s *Surface) ID() string { return s.id }

// Selection returns the surface's element.
func (s *Surface) Selection() *goquery.Selection { return s.sel }

// Surface resolves an element by id. Ids must be unique per page; the first
// match wins, consistent with how the page's own runtime resolves them.
func (d *Document) Surface(id string) (engine.Surface, bool) {
	if id == "" {
		return nil, false
	}
	sel := d.doc.Find("#" + id).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return &Surface{id: id, sel: sel}, true
}

// ============================================================================
// DECLARATIONS
// ============================================================================

// Declaration is one chart-declaring element, payloads still raw. The
// element's own id doubles as the target surface identifier. Absent
// payload attributes stay empty strings — the scanner defaults those to
// empty sequences, which is distinct from a malformed payload.
type Declaration struct {
	SurfaceID string
	Kind      string
	Labels    string
	Values    string
}

// Declarations returns every chart-declaring element in document order.
func (d *Document) Declarations() []Declaration {
	var decls []Declaration
	d.doc.Find("[" + attrKind + "]").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		kind, _ := sel.Attr(attrKind)
		labels, _ := sel.Attr(attrLabels)
		values, _ := sel.Attr(attrValues)
		decls = append(decls, Declaration{
			SurfaceID: id,
			Kind:      kind,
			Labels:    labels,
			Values:    values,
		})
	})
	return decls
}
