package model

// ElementID uniquely identifies an element within a document's store.
// The conversion pipeline assigns ids; this module only compares them.
type ElementID string

// Ref is an id-typed pointer into a document's element store. Refs are
// weak, lookup-only relations: resolving one never mutates the store and
// never transfers ownership.
type Ref struct {
	Target ElementID
}

// Provenance ties an element occurrence to a physical location in the
// source document: a 1-based page number plus a bounding box in that
// page's coordinate frame. An element may carry multiple entries when it
// spans pages; queries in this module use the first entry by convention.
type Provenance struct {
	PageNo int // 1-based
	BBox   BBox
}

// Kind identifies the variant of an element
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindTable
	KindPicture
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindTable:
		return "Table"
	case KindPicture:
		return "Picture"
	case KindGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// Element is the interface for all document elements. Each variant
// declares which payload fields it carries; callers dispatch on Kind
// rather than probing for optional fields.
type Element interface {
	ID() ElementID
	Kind() Kind
	Provenance() []Provenance
	ChildRefs() []Ref
}

// FirstProvenance returns the element's first provenance entry, or false
// when the element carries none. Spatial and proximity queries operate on
// this entry by convention.
func FirstProvenance(el Element) (Provenance, bool) {
	prov := el.Provenance()
	if len(prov) == 0 {
		return Provenance{}, false
	}
	return prov[0], true
}

// Text represents a text block: a title, section header, paragraph,
// caption, or similar string-bearing element.
type Text struct {
	Self     ElementID
	Prov     []Provenance
	Children []Ref
	Text     string
	Label    string // converter-assigned role, e.g. "title", "section_header"
}

func (t *Text) ID() ElementID            { return t.Self }
func (t *Text) Kind() Kind               { return KindText }
func (t *Text) Provenance() []Provenance { return t.Prov }
func (t *Text) ChildRefs() []Ref         { return t.Children }

// Picture represents an image or figure. The query engine needs no pixel
// payload; position and identity are enough.
type Picture struct {
	Self     ElementID
	Prov     []Provenance
	Children []Ref
}

func (p *Picture) ID() ElementID            { return p.Self }
func (p *Picture) Kind() Kind               { return KindPicture }
func (p *Picture) Provenance() []Provenance { return p.Prov }
func (p *Picture) ChildRefs() []Ref         { return p.Children }

// Group is a purely structural element carrying children only. The
// document body is a Group.
type Group struct {
	Self     ElementID
	Children []Ref
	Name     string
}

func (g *Group) ID() ElementID            { return g.Self }
func (g *Group) Kind() Kind               { return KindGroup }
func (g *Group) Provenance() []Provenance { return nil }
func (g *Group) ChildRefs() []Ref         { return g.Children }
