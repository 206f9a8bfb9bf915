// Package series implements BooleanSeries, the immutable record of a single
// Boolean variable's state over a closed interval, plus the pure
// operations on it (evaluate, cut, Hamming distance, threshold conversion,
// merge/unmerge). Every operation that compares times takes an explicit
// boolde.Tolerance-shaped comparator rather than reading a package global.
// Numeric plumbing lives in its own package, separate from the engine that
// drives it.
package series

import (
	"fmt"
	"sort"

	"github.com/soypat/boolde/errs"
)

// Tolerance is the equality predicate passed into operations that compare
// real-valued times. It is the same shape as boolde.Tolerance; duplicated
// here (rather than imported) to keep this package free of a dependency on
// the root package, which itself depends on series.
type Tolerance struct {
	AbsTol float64
	RelTol float64
}

func (tol Tolerance) equal(a, b float64) bool {
	if tol.AbsTol == 0 && tol.RelTol == 0 {
		tol = Tolerance{RelTol: 1e-9}
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	amax := a
	if amax < 0 {
		amax = -amax
	}
	bmax := b
	if bmax < 0 {
		bmax = -bmax
	}
	max := amax
	if bmax > max {
		max = bmax
	}
	tolVal := tol.RelTol * max
	if tol.AbsTol > tolVal {
		tolVal = tol.AbsTol
	}
	return diff <= tolVal
}

// BooleanSeries is the state of one Boolean variable over the closed
// interval [t[0], end]. y[i] is in force from t[i] inclusive until t[i+1]
// exclusive, or end. BooleanSeries values are conceptually immutable after
// construction: every operation below returns a fresh instance.
type BooleanSeries struct {
	t     []float64
	y     []bool
	end   float64
	label string
	style string
}

// Option configures presentation attributes that are not part of a
// BooleanSeries' semantic identity (never consulted by evaluate_at, cut,
// hamming_distance, merge, or unmerge).
type Option func(*BooleanSeries)

// WithLabel sets the series' display label (used by plotdata adapters).
func WithLabel(label string) Option {
	return func(s *BooleanSeries) { s.label = label }
}

// WithStyle sets a free-form presentation style string (e.g. a plot line
// style) carried alongside the series but never compared.
func WithStyle(style string) Option {
	return func(s *BooleanSeries) { s.style = style }
}

// New constructs a BooleanSeries, validating the invariants from the data
// model: len(times) == len(values) after the single-value padding rule,
// times strictly increasing under tol, and end >= times[-1].
//
// If len(values) == 1, values is extended with alternating booleans
// (v, !v, v, !v, ...) to len(times) before validation, so callers may supply
// a single initial state alongside a full switch-time vector.
func New(times []float64, values []bool, end float64, tol Tolerance, opts ...Option) (BooleanSeries, error) {
	if len(times) == 0 {
		return BooleanSeries{}, errs.New(errs.InvalidSeriesShape, "times must have at least one element")
	}
	if len(values) == 1 && len(times) > 1 {
		padded := make([]bool, len(times))
		v := values[0]
		for i := range padded {
			padded[i] = v
			v = !v
		}
		values = padded
	}
	if len(times) != len(values) {
		return BooleanSeries{}, errs.New(errs.InvalidSeriesShape,
			"len(times)=%d != len(values)=%d", len(times), len(values))
	}
	for i := 1; i < len(times); i++ {
		if !tol.equal(times[i], times[i-1]) && times[i] > times[i-1] {
			continue
		}
		return BooleanSeries{}, errs.New(errs.TimesNotSorted,
			"times[%d]=%g not strictly greater than times[%d]=%g", i, times[i], i-1, times[i-1])
	}
	last := times[len(times)-1]
	if end < last && !tol.equal(end, last) {
		return BooleanSeries{}, errs.New(errs.EndBeforeLastSwitch,
			"end=%g before last switch time %g", end, last)
	}
	if end < last {
		end = last
	}
	s := BooleanSeries{
		t:   append([]float64(nil), times...),
		y:   append([]bool(nil), values...),
		end: end,
	}
	for _, o := range opts {
		o(&s)
	}
	return s, nil
}

// Times returns a copy of the series' switch times.
func (s BooleanSeries) Times() []float64 { return append([]float64(nil), s.t...) }

// States returns a copy of the series' switch-indexed states.
func (s BooleanSeries) States() []bool { return append([]bool(nil), s.y...) }

// Start returns t[0].
func (s BooleanSeries) Start() float64 { return s.t[0] }

// End returns the series' end time.
func (s BooleanSeries) End() float64 { return s.end }

// Label returns the series' presentation label, or "" if unset.
func (s BooleanSeries) Label() string { return s.label }

// Style returns the series' presentation style, or "" if unset.
func (s BooleanSeries) Style() string { return s.style }

// Len returns the number of switches in the series.
func (s BooleanSeries) Len() int { return len(s.t) }

// LastState returns the state in force at the series' end.
func (s BooleanSeries) LastState() bool { return s.y[len(s.y)-1] }

// EvaluateAt returns the state in force at time t: the state y[i] for the
// largest i with t[i] <= t (tolerant equality included, taking the
// right-limit value at an exact switch time). Returns OutOfRange for
// t < t[0] or t > end (both under tolerance).
func (s BooleanSeries) EvaluateAt(t float64, tol Tolerance) (bool, error) {
	if t < s.t[0] && !tol.equal(t, s.t[0]) {
		return false, errs.New(errs.OutOfRange, "t=%g before series start %g", t, s.t[0]).WithTime(t)
	}
	if t > s.end && !tol.equal(t, s.end) {
		return false, errs.New(errs.OutOfRange, "t=%g after series end %g", t, s.end).WithTime(t)
	}
	// Binary search for the largest i with t[i] <= t, treating tolerant
	// equality as "<=" so that evaluating exactly at a switch time uses that
	// switch's (right-limit) state.
	i := sort.Search(len(s.t), func(i int) bool {
		return s.t[i] > t && !tol.equal(s.t[i], t)
	})
	if i == 0 {
		// t tolerantly equals or precedes t[0]; t[0] is the right-limit value.
		return s.y[0], nil
	}
	return s.y[i-1], nil
}

// Canonicalise returns a series with consecutive duplicate states removed
// (keeping only switches that actually change state), which is what
// genuinely distinguishes two BooleanSeries that differ only by redundant
// bookkeeping switches (used by the cut-idempotence and merge/unmerge
// round-trip properties).
func (s BooleanSeries) Canonicalise() BooleanSeries {
	t := make([]float64, 0, len(s.t))
	y := make([]bool, 0, len(s.y))
	for i := range s.t {
		if i > 0 && s.y[i] == y[len(y)-1] {
			continue
		}
		t = append(t, s.t[i])
		y = append(y, s.y[i])
	}
	return BooleanSeries{t: t, y: y, end: s.end, label: s.label, style: s.style}
}

// Equal reports whether s and o have identical switch times (under tol) and
// states, and equal end (under tol). Presentation attributes are ignored.
func (s BooleanSeries) Equal(o BooleanSeries, tol Tolerance) bool {
	if len(s.t) != len(o.t) {
		return false
	}
	if !tol.equal(s.end, o.end) {
		return false
	}
	for i := range s.t {
		if !tol.equal(s.t[i], o.t[i]) || s.y[i] != o.y[i] {
			return false
		}
	}
	return true
}

func (s BooleanSeries) String() string {
	return fmt.Sprintf("BooleanSeries{t=%v, y=%v, end=%g}", s.t, s.y, s.end)
}
