package series

import (
	"sort"

	"github.com/soypat/boolde/errs"
)

// Merge combines several BooleanSeries sharing a common end into a single
// shared time grid: tShared is the sorted, tolerance-deduplicated union of
// every series' switch times, and yShared[i] is the vector of each series'
// state at tShared[i] (yShared[i][k] is the k-th input series' state).
// Series domains must share the same end; DomainMismatch otherwise.
func Merge(list []BooleanSeries, tol Tolerance) (tShared []float64, yShared [][]bool, err error) {
	if len(list) == 0 {
		return nil, nil, errs.New(errs.DomainMismatch, "merge requires at least one series")
	}
	end := list[0].end
	start := list[0].t[0]
	for _, s := range list[1:] {
		if !tol.equal(s.end, end) {
			return nil, nil, errs.New(errs.DomainMismatch, "series end %g != %g", s.end, end)
		}
		if s.t[0] > start {
			start = s.t[0]
		}
	}

	grid := mergeTimes(list, tol)
	tShared = make([]float64, 0, len(grid))
	for _, t := range grid {
		if t < start && !tol.equal(t, start) {
			continue
		}
		tShared = append(tShared, t)
	}
	if len(tShared) == 0 || !tol.equal(tShared[0], start) {
		tShared = append([]float64{start}, tShared...)
	}

	yShared = make([][]bool, len(tShared))
	for i, t := range tShared {
		row := make([]bool, len(list))
		for k, s := range list {
			v, e := s.EvaluateAt(t, tol)
			if e != nil {
				return nil, nil, e
			}
			row[k] = v
		}
		yShared[i] = row
	}
	return tShared, yShared, nil
}

// Unmerge is Merge's inverse: given the shared grid produced by Merge (or an
// equivalent one), it reconstructs one canonical BooleanSeries per variable,
// dropping consecutive switches that do not change that variable's state.
func Unmerge(tShared []float64, yShared [][]bool, end float64, tol Tolerance) ([]BooleanSeries, error) {
	if len(tShared) == 0 {
		return nil, errs.New(errs.InvalidSeriesShape, "unmerge requires at least one time point")
	}
	nvars := len(yShared[0])
	out := make([]BooleanSeries, nvars)
	for k := 0; k < nvars; k++ {
		t := make([]float64, 0, len(tShared))
		y := make([]bool, 0, len(tShared))
		for i, row := range yShared {
			v := row[k]
			if i > 0 && v == y[len(y)-1] {
				continue
			}
			t = append(t, tShared[i])
			y = append(y, v)
		}
		s, err := New(t, y, end, tol)
		if err != nil {
			return nil, err
		}
		out[k] = s
	}
	return out, nil
}

// mergeTimes returns the sorted, tolerance-deduplicated union of every
// series' switch times in list.
func mergeTimes(list []BooleanSeries, tol Tolerance) []float64 {
	var all []float64
	for _, s := range list {
		all = append(all, s.t...)
	}
	sort.Float64s(all)
	out := make([]float64, 0, len(all))
	for _, t := range all {
		if len(out) > 0 && tol.equal(out[len(out)-1], t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
