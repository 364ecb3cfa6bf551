// Package spatial provides geometric filtering of document elements.
//
// A [Predicate] is a pure function over a bounding box. [Select] applies
// one to a sequence of elements, keeping those whose first provenance
// entry satisfies it; elements without provenance are skipped silently.
//
// # Canonical Regions
//
// Four reference predicates split a page along a midline:
//
//	top    := spatial.TopHalf(396)    // box top above the midline
//	bottom := spatial.BottomHalf(396) // box top at or below the midline
//	left   := spatial.LeftSide(306)   // box left of the midline
//	right  := spatial.RightSide(306)  // box at or right of the midline
//
// The boundary always belongs to exactly one side, so TopHalf and
// BottomHalf with the same midline partition any set of elements with
// provenance. [RegionsFor] derives the default midlines from a page's
// geometry.
//
// # Composition
//
// Predicates compose with [And], [Or], and [Not], so richer regions never
// require changes to this package:
//
//	topLeft := spatial.And(spatial.TopHalf(396), spatial.LeftSide(306))
package spatial
