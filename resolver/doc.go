// Package resolver provides element reference resolution.
//
// Converted documents express every intra-document relationship as a
// [model.Ref]: an id pointing into the document's flat element store.
// This package turns such references into concrete elements.
//
// # Basic Usage
//
// Create a resolver over a document and resolve references:
//
//	res := resolver.New(doc)
//	el, ok := res.Resolve(ref)
//
// Resolution is a direct store lookup: O(1), side-effect free, and safe
// to call concurrently and repeatedly. A reference whose id is not in the
// store resolves to an explicit absence (ok == false), never an error and
// never a silent default — dangling references are a contract violation
// of the conversion pipeline, and callers such as the hierarchy walker
// absorb them as counted omissions.
package resolver
