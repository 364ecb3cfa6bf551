package proximity

import (
	"fmt"
	"math"
	"sort"

	"github.com/tsawler/docquery/model"
)

// Match pairs a candidate element with its vertical distance from the
// focal element.
type Match struct {
	Element  model.Element
	Distance float64
}

// Option configures a proximity query.
type Option func(*query) error

// WithMaxDistance excludes candidates farther than d from the focal
// element. The cutoff is inclusive: a candidate at exactly d qualifies.
// The default is no cutoff.
func WithMaxDistance(d float64) Option {
	return func(q *query) error {
		if d < 0 {
			return fmt.Errorf("%w: negative max distance %v", model.ErrInvalidParameter, d)
		}
		q.maxDistance = d
		return nil
	}
}

type query struct {
	maxDistance float64
}

// Nearest returns up to k candidates closest to the focal element,
// ordered by increasing vertical distance. Only candidates on the focal
// element's page (first provenance entry) are eligible; candidates
// without provenance, and the focal element itself, are excluded. Ties
// keep their input order. Fewer than k qualifying candidates is not an
// error; a focal element without provenance yields an empty result.
func Nearest(focal model.Element, candidates []model.Element, k int, opts ...Option) ([]Match, error) {
	if focal == nil {
		return nil, fmt.Errorf("%w: nil focal element", model.ErrInvalidParameter)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", model.ErrInvalidParameter, k)
	}

	q := &query{maxDistance: math.Inf(1)}
	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}

	focalProv, ok := model.FirstProvenance(focal)
	if !ok {
		return nil, nil
	}

	var matches []Match
	for _, cand := range candidates {
		if cand.ID() == focal.ID() {
			continue
		}
		prov, ok := model.FirstProvenance(cand)
		if !ok || prov.PageNo != focalProv.PageNo {
			continue
		}
		d := math.Abs(prov.BBox.Top - focalProv.BBox.Top)
		if d > q.maxDistance {
			continue
		}
		matches = append(matches, Match{Element: cand, Distance: d})
	}

	// Stable: equal distances preserve candidate input order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}
