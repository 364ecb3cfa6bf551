// Package proximity ranks document elements by vertical distance from a
// focal element.
//
// Distance is one-dimensional: the absolute difference between the top
// coordinates of the first provenance entries of the focal element and a
// candidate. Page flow makes vertically-close elements contextually
// related — the classic use is locating the caption just above or below a
// table:
//
//	matches, err := proximity.Nearest(table, doc.Elements(), 2,
//		proximity.WithMaxDistance(100))
//
// Only candidates on the focal element's page are eligible, and ranking
// is stable: candidates at equal distance keep their input order. A focal
// element without provenance yields an empty result — like everywhere in
// this module, missing provenance is an expected input shape, not an
// error.
package proximity
