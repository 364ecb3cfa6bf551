// Package docjson loads converted documents from their JSON export.
//
// The external conversion pipeline serializes its parsed documents as
// JSON: a pages map, flat arrays of texts, tables, pictures, and groups
// (each with a self_ref id, optional provenance, and child references as
// {"$ref": id} objects), and a body node whose children give the
// reading order. This package decodes that format into a [model.Document]
// ready for querying:
//
//	doc, err := docjson.LoadFile("report.json")
//	if err != nil {
//		// handle error
//	}
//	engine := docquery.New(doc)
//
// Table cell grids embedded in the export become each table's on-demand
// grid accessor. Dangling references are preserved as-is — they are the
// converter's contract violation, and the query packages absorb them —
// but structurally malformed JSON (an element without a self_ref, an
// unparseable stream) fails the load.
package docjson
