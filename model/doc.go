// Package model provides the read-only data model for converted documents.
//
// This package defines the types produced by an external document-conversion
// pipeline and consumed by the query packages. The query engine never parses
// source files itself: a [Document] arrives fully built (typically via the
// docjson package) and is treated as immutable from that point on, which is
// what makes every query in this module safe to run concurrently over the
// same document.
//
// # Document Structure
//
// The [Document] type is the root aggregate. It owns:
//
//   - an ordered sequence of [Page] values carrying page geometry,
//   - a flat store mapping [ElementID] to [Element],
//   - a Body tree of [Ref] values expressing the reading-order hierarchy.
//
// # Elements
//
// All document content implements the [Element] interface. The concrete
// variants are:
//
//   - [Text] - text blocks (titles, headers, paragraphs, captions)
//   - [Table] - tables with dimensions and an on-demand cell grid
//   - [Picture] - images and figures
//   - [Group] - purely structural containers
//
// Each variant declares exactly which payload fields it carries, so callers
// dispatch on [Element.Kind] rather than probing for optional fields.
//
// # References
//
// Intra-document relationships are always expressed as a [Ref]: an id-typed
// pointer into the document's element store. Resolving a Ref is a lookup,
// never a transfer of ownership, so cyclic or dangling references in a
// malformed document cannot corrupt the model. The resolver package performs
// the lookups.
//
// # Provenance
//
// An element may carry zero or more [Provenance] entries tying it to a page
// and bounding box. Spatial and proximity queries operate on the first entry
// by convention; elements without provenance are simply skipped by those
// queries.
//
// # Geometry
//
// The [BBox] type is an axis-aligned rectangle in page coordinates with a
// bottom-left origin, matching the converter's output: Top is the larger Y
// value. [Page] carries the width and height that define the coordinate
// frame for boxes on that page.
package model
