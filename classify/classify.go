package classify

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/tsawler/docquery/model"
)

// Unclassified is the reserved bucket name for elements that match no
// keyword set, carry no extractable text, or whose grid materialization
// failed.
const Unclassified = "unclassified"

// KeywordSet names a bucket and the keywords that route elements into it.
// Matching is a case-insensitive substring test, so keywords should be
// plain lowercase words or phrases.
type KeywordSet struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Failure records a grid materialization error absorbed during
// classification. Failures are diagnostics; the affected element is in
// the Unclassified bucket.
type Failure struct {
	ID  model.ElementID
	Err error
}

// Result is the outcome of one classification run.
type Result struct {
	// Order lists bucket names in classification order: the keyword sets
	// as given, then Unclassified.
	Order []string

	// Buckets maps each bucket name to its elements, input order
	// preserved. Every name in Order has an entry, possibly empty.
	Buckets map[string][]model.Element

	// Failures records absorbed grid materialization errors.
	Failures []Failure
}

// Bucket returns the elements assigned to the named bucket.
func (r *Result) Bucket(name string) []model.Element {
	return r.Buckets[name]
}

// Option configures a classification run.
type Option func(*classifier)

// WithLogger sets the logger used to record absorbed grid failures.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *classifier) {
		c.log = log
	}
}

type classifier struct {
	log *zap.Logger
}

// Classify partitions elements into buckets, testing the keyword sets in
// the given order and assigning each element to the first matching set
// (first match wins). Input order is preserved within every bucket, and
// the run is deterministic for identical inputs.
//
// Elements that are neither text nor tables, carry empty text, or whose
// grid cannot be materialized within ctx land in Unclassified. Malformed
// keyword sets fail immediately with an error wrapping
// model.ErrInvalidParameter.
func Classify(ctx context.Context, elements []model.Element, sets []KeywordSet, opts ...Option) (*Result, error) {
	if err := ValidateSets(sets); err != nil {
		return nil, err
	}

	c := &classifier{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	caser := cases.Fold()

	// Fold all keywords once up front.
	folded := make([][]string, len(sets))
	for i, set := range sets {
		folded[i] = make([]string, len(set.Keywords))
		for j, kw := range set.Keywords {
			folded[i][j] = caser.String(kw)
		}
	}

	result := &Result{
		Order:   make([]string, 0, len(sets)+1),
		Buckets: make(map[string][]model.Element, len(sets)+1),
	}
	for _, set := range sets {
		result.Order = append(result.Order, set.Name)
		result.Buckets[set.Name] = nil
	}
	result.Order = append(result.Order, Unclassified)
	result.Buckets[Unclassified] = nil

	for _, el := range elements {
		text, err := c.representative(ctx, el)
		if err != nil {
			result.Failures = append(result.Failures, Failure{ID: el.ID(), Err: err})
			c.log.Warn("grid materialization failed, routing table to unclassified",
				zap.String("element", string(el.ID())),
				zap.Error(err))
			result.Buckets[Unclassified] = append(result.Buckets[Unclassified], el)
			continue
		}

		bucket := Unclassified
		if text != "" {
			foldedText := caser.String(text)
			for i, set := range sets {
				if containsAny(foldedText, folded[i]) {
					bucket = set.Name
					break
				}
			}
		}
		result.Buckets[bucket] = append(result.Buckets[bucket], el)
	}

	return result, nil
}

// ValidateSets checks a keyword-set list for caller contract violations:
// empty names, duplicate names, and use of the reserved Unclassified name.
func ValidateSets(sets []KeywordSet) error {
	seen := make(map[string]bool, len(sets))
	for _, set := range sets {
		if set.Name == "" {
			return fmt.Errorf("%w: keyword set with empty name", model.ErrInvalidParameter)
		}
		if set.Name == Unclassified {
			return fmt.Errorf("%w: keyword set uses reserved name %q", model.ErrInvalidParameter, Unclassified)
		}
		if seen[set.Name] {
			return fmt.Errorf("%w: duplicate keyword set name %q", model.ErrInvalidParameter, set.Name)
		}
		seen[set.Name] = true
	}
	return nil
}

// representative extracts the string an element is classified by. Text
// elements contribute their payload; tables contribute the first row of
// the materialized grid joined with single spaces. Other kinds have no
// extractable text. Only table grid errors are reported.
func (c *classifier) representative(ctx context.Context, el model.Element) (string, error) {
	switch v := el.(type) {
	case *model.Text:
		return v.Text, nil
	case *model.Table:
		grid, err := v.MaterializeGrid(ctx)
		if err != nil {
			return "", err
		}
		if len(grid) == 0 {
			return "", nil
		}
		return strings.Join(grid[0], " "), nil
	default:
		return "", nil
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
