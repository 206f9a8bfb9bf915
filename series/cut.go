package series

import "github.com/soypat/boolde/errs"

// Cut returns the sub-series of s on [newStart, newEnd]. If newStart falls
// strictly inside an existing interval, a leading switch is synthesised at
// newStart carrying the state in force there. Switches strictly before
// newStart are dropped, as are switches strictly after newEnd. A switch
// exactly at newEnd is dropped unless keepSwitchOnEnd is set. Returns
// OutOfRange if [newStart, newEnd] is not a subset of [s.Start(), s.End()].
func (s BooleanSeries) Cut(newStart, newEnd float64, keepSwitchOnEnd bool, tol Tolerance) (BooleanSeries, error) {
	if newStart < s.t[0] && !tol.equal(newStart, s.t[0]) {
		return BooleanSeries{}, errs.New(errs.OutOfRange, "cut start %g before series start %g", newStart, s.t[0])
	}
	if newEnd > s.end && !tol.equal(newEnd, s.end) {
		return BooleanSeries{}, errs.New(errs.OutOfRange, "cut end %g after series end %g", newEnd, s.end)
	}
	if newEnd < newStart && !tol.equal(newEnd, newStart) {
		return BooleanSeries{}, errs.New(errs.OutOfRange, "cut end %g before cut start %g", newEnd, newStart)
	}

	startState, err := s.EvaluateAt(newStart, tol)
	if err != nil {
		return BooleanSeries{}, err
	}

	t := make([]float64, 0, len(s.t))
	y := make([]bool, 0, len(s.y))
	t = append(t, newStart)
	y = append(y, startState)

	for i := range s.t {
		ti := s.t[i]
		if ti < newStart || tol.equal(ti, newStart) {
			continue // covered by the synthesised leading switch
		}
		if ti > newEnd && !tol.equal(ti, newEnd) {
			continue // strictly after newEnd
		}
		if tol.equal(ti, newEnd) && !keepSwitchOnEnd {
			continue // switch at newEnd dropped unless requested
		}
		t = append(t, ti)
		y = append(y, s.y[i])
	}

	return BooleanSeries{t: t, y: y, end: newEnd, label: s.label, style: s.style}, nil
}
