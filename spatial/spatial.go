package spatial

import (
	"fmt"

	"github.com/tsawler/docquery/model"
)

// Predicate is a pure test over a bounding box in page coordinates.
type Predicate func(model.BBox) bool

// TopHalf keeps boxes whose top edge lies strictly above the midline.
func TopHalf(midline float64) Predicate {
	return func(b model.BBox) bool { return b.Top > midline }
}

// BottomHalf keeps boxes whose top edge lies at or below the midline.
// It is the exact complement of TopHalf for the same midline.
func BottomHalf(midline float64) Predicate {
	return func(b model.BBox) bool { return b.Top <= midline }
}

// LeftSide keeps boxes whose left edge lies strictly left of the midline.
func LeftSide(midline float64) Predicate {
	return func(b model.BBox) bool { return b.Left < midline }
}

// RightSide keeps boxes whose left edge lies at or right of the midline.
// It is the exact complement of LeftSide for the same midline.
func RightSide(midline float64) Predicate {
	return func(b model.BBox) bool { return b.Left >= midline }
}

// And combines predicates; the result holds when all of them hold.
func And(preds ...Predicate) Predicate {
	return func(b model.BBox) bool {
		for _, p := range preds {
			if !p(b) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates; the result holds when any of them holds.
func Or(preds ...Predicate) Predicate {
	return func(b model.BBox) bool {
		for _, p := range preds {
			if p(b) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(pred Predicate) Predicate {
	return func(b model.BBox) bool { return !pred(b) }
}

// Regions holds the four canonical region predicates for one page.
type Regions struct {
	TopHalf    Predicate
	BottomHalf Predicate
	LeftSide   Predicate
	RightSide  Predicate
}

// RegionsFor builds the canonical predicates for a page, using the page's
// vertical and horizontal midpoints as the default midlines.
func RegionsFor(page model.Page) Regions {
	return Regions{
		TopHalf:    TopHalf(page.VerticalMidpoint()),
		BottomHalf: BottomHalf(page.VerticalMidpoint()),
		LeftSide:   LeftSide(page.HorizontalMidpoint()),
		RightSide:  RightSide(page.HorizontalMidpoint()),
	}
}

// Select returns the subsequence of elements, order preserved, whose
// first provenance entry satisfies the predicate. Elements without
// provenance are excluded silently; that is an expected input shape.
// A nil predicate is a caller contract violation.
func Select(elements []model.Element, pred Predicate) ([]model.Element, error) {
	if pred == nil {
		return nil, fmt.Errorf("%w: nil spatial predicate", model.ErrInvalidParameter)
	}

	var selected []model.Element
	for _, el := range elements {
		prov, ok := model.FirstProvenance(el)
		if !ok {
			continue
		}
		if pred(prov.BBox) {
			selected = append(selected, el)
		}
	}
	return selected, nil
}
