// Package docquery provides analytical queries over converted documents:
// content classification, spatial region selection, hierarchy traversal,
// and proximity ranking.
//
// A document arrives fully parsed from an external conversion pipeline
// (see the docjson package) and is never mutated here, so any number of
// queries may run concurrently over the same document.
//
// Basic usage:
//
//	doc, err := docjson.LoadFile("report.json")
//	if err != nil {
//	    // handle error
//	}
//
//	engine := docquery.New(doc)
//	result, err := engine.ClassifyTables(ctx, []classify.KeywordSet{
//	    {Name: "financial", Keywords: []string{"revenue", "income", "margin"}},
//	})
//
// Queries compose by element identity. A "financial tables in the top
// half of page 1" query intersects a content bucket with a spatial
// selection:
//
//	regions, _ := engine.Regions(1)
//	topHalf, _ := engine.Select(docquery.AsElements(doc.Tables()), regions.TopHalf)
//	both := docquery.IntersectByID(result.Bucket("financial"), topHalf)
//
// For advanced use cases the lower-level classify, spatial, hierarchy,
// and proximity packages are also available directly.
package docquery

import (
	"context"
	"fmt"

	"github.com/tsawler/docquery/classify"
	"github.com/tsawler/docquery/hierarchy"
	"github.com/tsawler/docquery/model"
	"github.com/tsawler/docquery/proximity"
	"github.com/tsawler/docquery/spatial"
)

// Engine runs queries over one document. It holds no mutable state, so a
// single Engine may serve concurrent callers.
type Engine struct {
	doc *model.Document
}

// New creates an engine over a converted document.
func New(doc *model.Document) *Engine {
	return &Engine{doc: doc}
}

// Document returns the underlying document.
func (e *Engine) Document() *model.Document {
	return e.doc
}

// Classify partitions elements into buckets by keyword content. See the
// classify package for the matching rules.
func (e *Engine) Classify(ctx context.Context, elements []model.Element, sets []classify.KeywordSet, opts ...classify.Option) (*classify.Result, error) {
	return classify.Classify(ctx, elements, sets, opts...)
}

// ClassifyTables classifies every table in the document, in store order.
func (e *Engine) ClassifyTables(ctx context.Context, sets []classify.KeywordSet, opts ...classify.Option) (*classify.Result, error) {
	return classify.Classify(ctx, AsElements(e.doc.Tables()), sets, opts...)
}

// ClassifyTexts classifies every text element in the document, in store
// order.
func (e *Engine) ClassifyTexts(ctx context.Context, sets []classify.KeywordSet, opts ...classify.Option) (*classify.Result, error) {
	return classify.Classify(ctx, AsElements(e.doc.Texts()), sets, opts...)
}

// Select keeps the elements whose first provenance entry satisfies the
// predicate, order preserved.
func (e *Engine) Select(elements []model.Element, pred spatial.Predicate) ([]model.Element, error) {
	return spatial.Select(elements, pred)
}

// Regions returns the four canonical region predicates for a page, with
// midlines defaulted from that page's geometry.
func (e *Engine) Regions(pageNo int) (spatial.Regions, error) {
	page, ok := e.doc.Page(pageNo)
	if !ok {
		return spatial.Regions{}, fmt.Errorf("%w: no page %d", model.ErrInvalidParameter, pageNo)
	}
	return spatial.RegionsFor(page), nil
}

// Walk traverses the document body depth-first in pre-order.
func (e *Engine) Walk(opts hierarchy.Options, visit hierarchy.Visitor) (hierarchy.Stats, error) {
	return hierarchy.Walk(e.doc, opts, visit)
}

// Nearest ranks candidates by vertical distance from the focal element.
func (e *Engine) Nearest(focal model.Element, candidates []model.Element, k int, opts ...proximity.Option) ([]proximity.Match, error) {
	return proximity.Nearest(focal, candidates, k, opts...)
}

// ElementsOnPage returns, in store order, the elements whose first
// provenance entry sits on the given page.
func (e *Engine) ElementsOnPage(pageNo int) []model.Element {
	var out []model.Element
	for _, el := range e.doc.Elements() {
		if prov, ok := model.FirstProvenance(el); ok && prov.PageNo == pageNo {
			out = append(out, el)
		}
	}
	return out
}

// TablesWhere returns the tables satisfying an arbitrary table predicate,
// in store order. Useful for structural filters such as page ranges or
// minimum column counts:
//
//	large := engine.TablesWhere(func(t *model.Table) bool {
//	    return t.Data.NumCols >= 4
//	})
func (e *Engine) TablesWhere(keep func(*model.Table) bool) []*model.Table {
	var out []*model.Table
	for _, t := range e.doc.Tables() {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// BodyKindCounts tallies the element kinds of the body's direct children.
// Dangling child references are omitted from the tally, matching the
// walker's behavior.
func (e *Engine) BodyKindCounts() (map[model.Kind]int, error) {
	counts := make(map[model.Kind]int)
	_, err := hierarchy.Walk(e.doc, hierarchy.Options{MaxDepth: 1}, func(el model.Element, depth int) bool {
		if depth == 1 {
			counts[el.Kind()]++
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// AsElements widens a slice of a concrete element type to []model.Element.
func AsElements[E model.Element](els []E) []model.Element {
	out := make([]model.Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out
}
