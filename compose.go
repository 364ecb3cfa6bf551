package docquery

import "github.com/tsawler/docquery/model"

// IntersectByID returns the elements of a that also appear in b, compared
// by element id, preserving a's order. No query component bakes in
// combination logic; multi-criteria filters are built from these id-based
// set operations.
func IntersectByID(a, b []model.Element) []model.Element {
	inB := idSet(b)
	var out []model.Element
	for _, el := range a {
		if _, ok := inB[el.ID()]; ok {
			out = append(out, el)
		}
	}
	return out
}

// UnionByID returns a's elements followed by those of b not already
// present in a, compared by element id. Duplicates within either input
// are kept once, first occurrence wins.
func UnionByID(a, b []model.Element) []model.Element {
	seen := make(map[model.ElementID]struct{}, len(a)+len(b))
	out := make([]model.Element, 0, len(a)+len(b))
	for _, el := range a {
		if _, ok := seen[el.ID()]; ok {
			continue
		}
		seen[el.ID()] = struct{}{}
		out = append(out, el)
	}
	for _, el := range b {
		if _, ok := seen[el.ID()]; ok {
			continue
		}
		seen[el.ID()] = struct{}{}
		out = append(out, el)
	}
	return out
}

func idSet(els []model.Element) map[model.ElementID]struct{} {
	set := make(map[model.ElementID]struct{}, len(els))
	for _, el := range els {
		set[el.ID()] = struct{}{}
	}
	return set
}
