// Package hierarchy walks a document's body tree.
//
// The walk is depth-first and pre-order: a node is visited, then up to
// [Options].MaxChildren of its child references are resolved lazily and
// descended into, in order. The traversal order is deterministic and part
// of the contract — callers rely on "nearby siblings" appearing adjacently.
//
//	stats, err := hierarchy.Walk(doc, hierarchy.Options{MaxChildren: 3},
//		func(el model.Element, depth int) bool {
//			fmt.Printf("%*s%s\n", depth*2, "", el.Kind())
//			return true // false stops the walk
//		})
//
// # Malformed Trees
//
// Child references that do not resolve are skipped and counted in
// [Stats].Omitted; the walk never aborts on them. A node already on the
// current root-to-node path is a cycle: the branch is cut there, counted
// in [Stats].Cycles, and the walk goes on. Together with the optional
// depth bound this guarantees the walk terminates on any input, cyclic or
// pathologically deep included.
package hierarchy
