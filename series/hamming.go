package series

import "github.com/soypat/boolde/errs"

// HammingDistance returns the total measure of time over which s and o
// disagree, computed over the intersection of their domains. It is
// commutative and HammingDistance(s, s) == 0.
func (s BooleanSeries) HammingDistance(o BooleanSeries, tol Tolerance) (float64, error) {
	lo := s.t[0]
	if o.t[0] > lo {
		lo = o.t[0]
	}
	hi := s.end
	if o.end < hi {
		hi = o.end
	}
	if hi < lo && !tol.equal(hi, lo) {
		return 0, errs.New(errs.DomainMismatch, "series domains do not overlap: [%g,%g] vs [%g,%g]",
			s.t[0], s.end, o.t[0], o.end)
	}

	// Merge the two switch-time grids over [lo, hi] and accumulate the
	// length of every sub-interval where the two states differ.
	grid := mergeTimes([]BooleanSeries{s, o}, tol)
	var dist float64
	for i, t := range grid {
		if t < lo && !tol.equal(t, lo) {
			continue
		}
		if t > hi && !tol.equal(t, hi) {
			continue
		}
		var next float64
		if i+1 < len(grid) {
			next = grid[i+1]
		} else {
			next = hi
		}
		if next > hi {
			next = hi
		}
		if next <= t {
			continue
		}
		sv, err := s.EvaluateAt(clamp(t, s.t[0], s.end), tol)
		if err != nil {
			return 0, err
		}
		ov, err := o.EvaluateAt(clamp(t, o.t[0], o.end), tol)
		if err != nil {
			return 0, err
		}
		if sv != ov {
			dist += next - t
		}
	}
	return dist, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
