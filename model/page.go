package model

// Page represents a single page of the converted document. Width and
// Height define the coordinate frame for bounding boxes on that page.
type Page struct {
	No     int // 1-based page number
	Width  float64
	Height float64
}

// VerticalMidpoint returns the Y coordinate halfway up the page, the
// default midline for top-half/bottom-half region queries.
func (p Page) VerticalMidpoint() float64 {
	return p.Height / 2
}

// HorizontalMidpoint returns the X coordinate halfway across the page,
// the default midline for left-side/right-side region queries.
func (p Page) HorizontalMidpoint() float64 {
	return p.Width / 2
}
