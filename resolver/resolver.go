package resolver

import (
	"github.com/tsawler/docquery/model"
)

// Resolver resolves element references against a document's store.
// The zero value is not usable; construct with New.
type Resolver struct {
	doc *model.Document
}

// New creates a resolver over the given document.
func New(doc *model.Document) *Resolver {
	return &Resolver{doc: doc}
}

// Resolve looks up the element a reference points to. The boolean reports
// whether the reference resolved; an unresolvable reference is an expected
// input shape, not an error. Resolution never mutates the store.
func (r *Resolver) Resolve(ref model.Ref) (model.Element, bool) {
	return r.doc.Element(ref.Target)
}

// ResolveAll resolves a slice of references, preserving order. References
// that do not resolve are skipped; the count of skipped references is
// returned alongside the resolved elements.
func (r *Resolver) ResolveAll(refs []model.Ref) ([]model.Element, int) {
	els := make([]model.Element, 0, len(refs))
	omitted := 0
	for _, ref := range refs {
		el, ok := r.Resolve(ref)
		if !ok {
			omitted++
			continue
		}
		els = append(els, el)
	}
	return els, omitted
}
