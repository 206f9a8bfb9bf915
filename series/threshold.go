package series

import (
	"github.com/soypat/boolde/errs"
	"gonum.org/v1/gonum/floats"
)

// AbsoluteThreshold converts sampled numeric data into a BooleanSeries: the
// state at sample i is true iff ySamples[i] >= theta. Between two samples
// whose states differ, the crossing time is found by linear interpolation
// on the numeric signal. The returned series starts at tSamples[0] and ends
// at tSamples[len-1]; a crossing that coincides (under tol) with an already
// emitted switch is not duplicated.
func AbsoluteThreshold(tSamples, ySamples []float64, theta float64, tol Tolerance, opts ...Option) (BooleanSeries, error) {
	if len(tSamples) != len(ySamples) {
		return BooleanSeries{}, errs.New(errs.InvalidSeriesShape,
			"len(tSamples)=%d != len(ySamples)=%d", len(tSamples), len(ySamples))
	}
	if len(tSamples) == 0 {
		return BooleanSeries{}, errs.New(errs.InvalidSeriesShape, "threshold requires at least one sample")
	}
	return thresholdAt(tSamples, ySamples, theta, tol, opts...)
}

// RelativeThreshold is AbsoluteThreshold using a threshold value of
// min(ySamples) + theta*(max(ySamples)-min(ySamples)), theta in [0,1].
func RelativeThreshold(tSamples, ySamples []float64, theta float64, tol Tolerance, opts ...Option) (BooleanSeries, error) {
	if len(ySamples) == 0 {
		return BooleanSeries{}, errs.New(errs.InvalidSeriesShape, "threshold requires at least one sample")
	}
	lo, hi := floats.Min(ySamples), floats.Max(ySamples)
	return AbsoluteThreshold(tSamples, ySamples, lo+theta*(hi-lo), tol, opts...)
}

func thresholdAt(tSamples, ySamples []float64, theta float64, tol Tolerance, opts ...Option) (BooleanSeries, error) {
	n := len(tSamples)
	t := make([]float64, 0, n)
	y := make([]bool, 0, n)

	state0 := ySamples[0] >= theta
	t = append(t, tSamples[0])
	y = append(y, state0)
	cur := state0

	for i := 0; i < n-1; i++ {
		next := ySamples[i+1] >= theta
		if next == cur {
			continue
		}
		// A crossing occurred between sample i and i+1. If either endpoint
		// sits exactly on theta, the crossing is taken at that endpoint.
		var tCross float64
		switch {
		case ySamples[i] == theta:
			tCross = tSamples[i]
		case ySamples[i+1] == theta:
			tCross = tSamples[i+1]
		case ySamples[i+1] == ySamples[i]:
			// Flat segment that is exactly on theta handled above; any other
			// flat segment cannot straddle the threshold, so this is
			// unreachable in practice but guarded defensively.
			cur = next
			continue
		default:
			tCross = tSamples[i] + (theta-ySamples[i])/(ySamples[i+1]-ySamples[i])*(tSamples[i+1]-tSamples[i])
		}
		if len(t) == 0 || !tol.equal(t[len(t)-1], tCross) {
			t = append(t, tCross)
			y = append(y, next)
		}
		cur = next
	}

	end := tSamples[n-1]
	return New(t, y, end, tol, opts...)
}
