package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsoluteThresholdScenario(t *testing.T) {
	tSamples := []float64{0, 1, 2, 3, 4}
	ySamples := []float64{0, 10, 8, 3, 12}
	s, err := AbsoluteThreshold(tSamples, ySamples, 5, tol)
	require.NoError(t, err)

	wantT := []float64{0, 0.5, 2.6, 3 + 2./9.}
	wantY := []bool{false, true, false, true}
	require.Equal(t, len(wantT), s.Len())
	for i := range wantT {
		assert.InDelta(t, wantT[i], s.Times()[i], 1e-9)
	}
	assert.Equal(t, wantY, s.States())
	assert.Equal(t, 4.0, s.End())
}

func TestRelativeThresholdScenario(t *testing.T) {
	tSamples := []float64{0, 1, 2, 3, 4}
	ySamples := []float64{4, 10, 8, 2, 12}
	s, err := RelativeThreshold(tSamples, ySamples, 0.5, tol)
	require.NoError(t, err)

	wantT := []float64{0, 0.5, 2 + 1./6., 3.5}
	wantY := []bool{false, true, false, true}
	require.Equal(t, len(wantT), s.Len())
	for i := range wantT {
		assert.InDelta(t, wantT[i], s.Times()[i], 1e-9)
	}
	assert.Equal(t, wantY, s.States())
}

func TestThresholdMonotone(t *testing.T) {
	// Increasing theta can only remove True intervals (shrink total True
	// measure), never introduce new ones.
	tSamples := []float64{0, 1, 2, 3, 4, 5}
	ySamples := []float64{1, 5, 9, 4, 2, 8}

	trueMeasure := func(s BooleanSeries) float64 {
		var total float64
		for i := range s.t {
			end := s.end
			if i+1 < len(s.t) {
				end = s.t[i+1]
			}
			if s.y[i] {
				total += end - s.t[i]
			}
		}
		return total
	}

	thetas := []float64{0, 2, 4, 6, 8, 10}
	var prev float64 = -1
	for _, th := range thetas {
		s, err := AbsoluteThreshold(tSamples, ySamples, th, tol)
		require.NoError(t, err)
		m := trueMeasure(s)
		if prev >= 0 {
			assert.LessOrEqual(t, m, prev+1e-9)
		}
		prev = m
	}
}

func TestThresholdEndpointCrossing(t *testing.T) {
	// sample exactly on theta: crossing is taken at that endpoint, not interpolated.
	tSamples := []float64{0, 1, 2}
	ySamples := []float64{0, 5, 10}
	s, err := AbsoluteThreshold(tSamples, ySamples, 5, tol)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, s.Times())
	assert.Equal(t, []bool{false, true}, s.States())
}
