package model

import (
	"context"
	"errors"
)

// ErrNoGrid is returned by MaterializeGrid when the conversion pipeline
// supplied no grid materializer for a table.
var ErrNoGrid = errors.New("table has no grid materializer")

// TableData describes a table's grid dimensions as reported by the
// conversion pipeline.
type TableData struct {
	NumRows int
	NumCols int
}

// GridFunc materializes a table's 2-D cell grid (rows of cell text) on
// demand. The conversion pipeline supplies the implementation; it may be
// expensive and it may fail, so callers bound it with the context and
// treat errors as data-quality issues rather than fatal ones.
type GridFunc func(ctx context.Context) ([][]string, error)

// Table represents a table element: grid dimensions plus a fallible,
// on-demand cell grid accessor.
type Table struct {
	Self     ElementID
	Prov     []Provenance
	Children []Ref
	Data     TableData
	Grid     GridFunc
}

func (t *Table) ID() ElementID            { return t.Self }
func (t *Table) Kind() Kind               { return KindTable }
func (t *Table) Provenance() []Provenance { return t.Prov }
func (t *Table) ChildRefs() []Ref         { return t.Children }

// MaterializeGrid invokes the converter-supplied grid accessor. It returns
// ErrNoGrid when no accessor was supplied, a context error when the
// caller's budget expires first, and otherwise whatever the accessor
// reports. The result is never cached here; the accessor decides.
func (t *Table) MaterializeGrid(ctx context.Context) ([][]string, error) {
	if t.Grid == nil {
		return nil, ErrNoGrid
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return t.Grid(ctx)
}
