package model

// BodyID is the element id of the document body group, the root of the
// reading-order hierarchy.
const BodyID ElementID = "#/body"

// Document is the root aggregate produced by the conversion pipeline: an
// ordered sequence of pages, a flat id-addressable element store, and a
// body tree of references into that store.
//
// A Document is built once (via the constructors below, normally from the
// docjson package) and is read-only afterwards. Every query package in
// this module relies on that: queries share a Document across goroutines
// without locking.
type Document struct {
	Name string

	pages []Page
	store map[ElementID]Element
	order []ElementID
	body  *Group
}

// NewDocument creates an empty document with an empty body group already
// registered in the store under BodyID.
func NewDocument(name string) *Document {
	d := &Document{
		Name:  name,
		store: make(map[ElementID]Element),
	}
	d.body = &Group{Self: BodyID, Name: "body"}
	d.Add(d.body)
	return d
}

// AddPage appends a page to the document, assigning the next 1-based
// page number.
func (d *Document) AddPage(width, height float64) Page {
	p := Page{No: len(d.pages) + 1, Width: width, Height: height}
	d.pages = append(d.pages, p)
	return p
}

// Add registers an element in the store and returns a Ref to it. Element
// ids must be unique; registering an id twice replaces the stored element
// but keeps its original position in store order.
func (d *Document) Add(el Element) Ref {
	id := el.ID()
	if _, exists := d.store[id]; !exists {
		d.order = append(d.order, id)
	}
	d.store[id] = el
	return Ref{Target: id}
}

// Body returns the root group of the reading-order hierarchy.
func (d *Document) Body() *Group {
	return d.body
}

// Element looks up an element by id. The boolean reports whether the id
// is present in the store.
func (d *Document) Element(id ElementID) (Element, bool) {
	el, ok := d.store[id]
	return el, ok
}

// Elements returns all stored elements in registration order, excluding
// the body group itself.
func (d *Document) Elements() []Element {
	els := make([]Element, 0, len(d.order))
	for _, id := range d.order {
		if id == BodyID {
			continue
		}
		els = append(els, d.store[id])
	}
	return els
}

// Tables returns all table elements in registration order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, id := range d.order {
		if t, ok := d.store[id].(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// Texts returns all text elements in registration order.
func (d *Document) Texts() []*Text {
	var texts []*Text
	for _, id := range d.order {
		if t, ok := d.store[id].(*Text); ok {
			texts = append(texts, t)
		}
	}
	return texts
}

// Pictures returns all picture elements in registration order.
func (d *Document) Pictures() []*Picture {
	var pics []*Picture
	for _, id := range d.order {
		if p, ok := d.store[id].(*Picture); ok {
			pics = append(pics, p)
		}
	}
	return pics
}

// Page returns the page with the given 1-based number.
func (d *Document) Page(no int) (Page, bool) {
	if no < 1 || no > len(d.pages) {
		return Page{}, false
	}
	return d.pages[no-1], true
}

// Pages returns the ordered page sequence.
func (d *Document) Pages() []Page {
	return d.pages
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}
