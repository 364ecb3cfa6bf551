package hierarchy

import (
	"fmt"

	"github.com/tsawler/docquery/model"
	"github.com/tsawler/docquery/resolver"
)

// Options bounds a walk. The zero value walks the whole tree.
type Options struct {
	// MaxChildren caps the fan-out per node; children beyond the cap are
	// skipped silently. 0 means unbounded.
	MaxChildren int

	// MaxDepth caps the visit depth; the body root is depth 0. Nodes
	// deeper than MaxDepth are not visited. 0 means unbounded.
	MaxDepth int
}

// Stats summarizes what a walk encountered.
type Stats struct {
	Visited int // nodes passed to the visitor
	Omitted int // child references that did not resolve
	Cycles  int // branches cut because a node was already on the path
}

// Visitor receives each visited node with its depth. Returning false
// stops the walk immediately.
type Visitor func(el model.Element, depth int) bool

// Walk traverses the document body depth-first in pre-order, resolving
// child references lazily. Each call starts fresh at the root; the walk
// is single-threaded and its order deterministic.
//
// Negative bounds and a nil visitor are caller contract violations and
// fail immediately. Unresolvable references and cycles in the body tree
// are data-quality issues: they are absorbed into Stats and never abort
// the walk.
func Walk(doc *model.Document, opts Options, visit Visitor) (Stats, error) {
	if doc == nil {
		return Stats{}, fmt.Errorf("%w: nil document", model.ErrInvalidParameter)
	}
	if visit == nil {
		return Stats{}, fmt.Errorf("%w: nil visitor", model.ErrInvalidParameter)
	}
	if opts.MaxChildren < 0 {
		return Stats{}, fmt.Errorf("%w: negative MaxChildren %d", model.ErrInvalidParameter, opts.MaxChildren)
	}
	if opts.MaxDepth < 0 {
		return Stats{}, fmt.Errorf("%w: negative MaxDepth %d", model.ErrInvalidParameter, opts.MaxDepth)
	}

	w := &walker{
		res:    resolver.New(doc),
		opts:   opts,
		visit:  visit,
		onPath: make(map[model.ElementID]bool),
	}
	w.walkNode(doc.Body(), 0)
	return w.stats, nil
}

type walker struct {
	res     *resolver.Resolver
	opts    Options
	visit   Visitor
	onPath  map[model.ElementID]bool
	stats   Stats
	stopped bool
}

func (w *walker) walkNode(el model.Element, depth int) {
	if w.stopped {
		return
	}

	w.stats.Visited++
	if !w.visit(el, depth) {
		w.stopped = true
		return
	}

	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return
	}

	w.onPath[el.ID()] = true
	defer delete(w.onPath, el.ID())

	for i, ref := range el.ChildRefs() {
		if w.stopped {
			return
		}
		if w.opts.MaxChildren > 0 && i >= w.opts.MaxChildren {
			return
		}

		child, ok := w.res.Resolve(ref)
		if !ok {
			w.stats.Omitted++
			continue
		}
		if w.onPath[child.ID()] {
			w.stats.Cycles++
			continue
		}
		w.walkNode(child, depth+1)
	}
}
