package series

import (
	"testing"

	"github.com/soypat/boolde/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tol = Tolerance{RelTol: 1e-9}

func TestNewPaddingRule(t *testing.T) {
	s, err := New([]float64{0, 1, 2, 3}, []bool{true}, 4, tol)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, false}, s.States())
}

func TestNewRejectsUnsortedTimes(t *testing.T) {
	_, err := New([]float64{0, 1, 0.5}, []bool{true, false, true}, 2, tol)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.TimesNotSorted, e.Kind)
}

func TestNewRejectsEndBeforeLastSwitch(t *testing.T) {
	_, err := New([]float64{0, 1, 2}, []bool{true, false, true}, 1, tol)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.EndBeforeLastSwitch, e.Kind)
}

func TestNewRejectsShapeMismatch(t *testing.T) {
	_, err := New([]float64{0, 1, 2}, []bool{true, false}, 2, tol)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.InvalidSeriesShape, e.Kind)
}

func TestEvaluateAt(t *testing.T) {
	s, err := New([]float64{0, 1, 2, 3}, []bool{true, false, true, false}, 5, tol)
	require.NoError(t, err)

	cases := []struct {
		at   float64
		want bool
	}{
		{0, true}, {0.5, true}, {1, false}, {1.5, false},
		{2, true}, {2.9999999999, false}, {3, false}, {5, false}, // 2.9999999999 is within tolerance of 3
	}
	for _, c := range cases {
		got, err := s.EvaluateAt(c.at, tol)
		require.NoError(t, err, "at %g", c.at)
		assert.Equal(t, c.want, got, "at %g", c.at)
	}
}

func TestEvaluateAtOutOfRange(t *testing.T) {
	s, err := New([]float64{0, 1}, []bool{true, false}, 2, tol)
	require.NoError(t, err)
	_, err = s.EvaluateAt(-0.1, tol)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.OutOfRange, e.Kind)

	_, err = s.EvaluateAt(2.1, tol)
	require.Error(t, err)
}

func TestCutIdempotence(t *testing.T) {
	s, err := New([]float64{0, 1, 2, 3}, []bool{true, false, true, false}, 4, tol)
	require.NoError(t, err)
	cut, err := s.Cut(s.Start(), s.End(), false, tol)
	require.NoError(t, err)
	assert.True(t, cut.Canonicalise().Equal(s.Canonicalise(), tol))
}

func TestCutSynthesisesLeadingSwitch(t *testing.T) {
	s, err := New([]float64{0, 1, 2, 3}, []bool{true, false, true, false}, 4, tol)
	require.NoError(t, err)
	cut, err := s.Cut(0.5, 2.5, false, tol)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 2}, cut.Times())
	assert.Equal(t, []bool{true, false, true}, cut.States())
	assert.Equal(t, 2.5, cut.End())
}

func TestCutKeepSwitchOnEnd(t *testing.T) {
	s, err := New([]float64{0, 1, 2, 3}, []bool{true, false, true, false}, 4, tol)
	require.NoError(t, err)

	dropped, err := s.Cut(0, 2, false, tol)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, dropped.Times())

	kept, err := s.Cut(0, 2, true, tol)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, kept.Times())
}

func TestCutOutOfRange(t *testing.T) {
	s, err := New([]float64{0, 1}, []bool{true, false}, 2, tol)
	require.NoError(t, err)
	_, err = s.Cut(-1, 1, false, tol)
	require.Error(t, err)
	_, err = s.Cut(0, 3, false, tol)
	require.Error(t, err)
}

func TestHammingLaw(t *testing.T) {
	a, err := New([]float64{0, 1, 2, 3, 4, 5, 6}, []bool{true, false, true, false, true, false, true}, 7, tol)
	require.NoError(t, err)
	b, err := New([]float64{0, 1.5, 2, 3, 4.3, 5, 6}, []bool{true, false, true, false, true, false, true}, 7, tol)
	require.NoError(t, err)

	dAB, err := a.HammingDistance(b, tol)
	require.NoError(t, err)
	dBA, err := b.HammingDistance(a, tol)
	require.NoError(t, err)
	assert.InDelta(t, dAB, dBA, 1e-12)
	assert.InDelta(t, 0.8, dAB, 1e-9)

	dSelf, err := a.HammingDistance(a, tol)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dSelf)
}

func TestHammingDomainMismatch(t *testing.T) {
	a, _ := New([]float64{5, 6}, []bool{true, false}, 7, tol)
	b, _ := New([]float64{0, 1}, []bool{true, false}, 2, tol)
	_, err := a.HammingDistance(b, tol)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.DomainMismatch, e.Kind)
}

func TestEqualIgnoresPresentation(t *testing.T) {
	a, _ := New([]float64{0, 1}, []bool{true, false}, 2, tol, WithLabel("a"))
	b, _ := New([]float64{0, 1}, []bool{true, false}, 2, tol, WithLabel("b"), WithStyle("dashed"))
	assert.True(t, a.Equal(b, tol))
}

func TestCanonicaliseDropsNonAlternating(t *testing.T) {
	// successive states need not alternate per the data model invariants.
	s, err := New([]float64{0, 1, 2, 3}, []bool{true, true, false, false}, 4, tol)
	require.NoError(t, err)
	c := s.Canonicalise()
	assert.Equal(t, []float64{0, 2}, c.Times())
	assert.Equal(t, []bool{true, false}, c.States())
}

func TestZeroValueToleranceFallsBackToDefault(t *testing.T) {
	// guards against treating a zero Tolerance{} as "no tolerance at all".
	s, _ := New([]float64{0, 1}, []bool{true, false}, 2, Tolerance{})
	v, err := s.EvaluateAt(1-1e-12, Tolerance{})
	require.NoError(t, err)
	assert.False(t, v) // 1-1e-12 tolerantly equals 1, so the right-limit state applies
}
