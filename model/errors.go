package model

import "errors"

// ErrInvalidParameter marks caller contract violations: a non-positive
// result bound, a negative depth limit, a nil predicate, and similar.
// Query packages wrap it with detail, so callers test with errors.Is.
//
// Data-quality problems in the document itself (missing provenance,
// dangling references, failed grid materialization) are deliberately NOT
// errors of this kind: queries absorb them as exclusions or omissions.
var ErrInvalidParameter = errors.New("invalid query parameter")
