package boolde

import "gonum.org/v1/gonum/floats"

// Tolerance decides whether two timestamps are "the same" time, combining
// absolute and relative slack. It is carried explicitly by every component
// that compares real-valued times (the engine, BooleanSeries merge/cut/
// hamming_distance) rather than read from a package global, so a caller can
// tighten or loosen it per solve.
type Tolerance struct {
	AbsTol float64
	RelTol float64
}

// DefaultTolerance mirrors standard floating point proximity semantics.
var DefaultTolerance = Tolerance{AbsTol: 0, RelTol: 1e-9}

// Equal reports whether a and b are equal within the combined absolute and
// relative tolerance: |a-b| <= max(RelTol*max(|a|,|b|), AbsTol).
func (tol Tolerance) Equal(a, b float64) bool {
	if tol == (Tolerance{}) {
		tol = DefaultTolerance
	}
	return floats.EqualWithinAbsOrRel(a, b, tol.AbsTol, tol.RelTol)
}

// Less reports whether a is strictly less than b outside of tolerance.
func (tol Tolerance) Less(a, b float64) bool {
	return a < b && !tol.Equal(a, b)
}

// withDefault returns tol if it is non-zero, else DefaultTolerance.
func (tol Tolerance) withDefault() Tolerance {
	if tol == (Tolerance{}) {
		return DefaultTolerance
	}
	return tol
}
