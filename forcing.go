package boolde

import "github.com/soypat/boolde/series"

// ForcingView is a read-only adapter over a BooleanSeries letting the engine
// ask "what is this forcing variable's state at time t?" without exposing
// series mutation. One ForcingView is created per forcing input, once per
// solve, and keeps a single-slot cache of its last query since the engine
// loop repeatedly asks for the same handful of delay-shifted times.
type ForcingView struct {
	s         series.BooleanSeries
	cachedAt  float64
	cachedVal bool
	hasCache  bool
}

// NewForcingView wraps s for read-only evaluation.
func NewForcingView(s series.BooleanSeries) *ForcingView {
	return &ForcingView{s: s}
}

// At returns the forcing variable's state at time t.
func (v *ForcingView) At(t float64, tol Tolerance) (bool, error) {
	if v.hasCache && tol.Equal(v.cachedAt, t) {
		return v.cachedVal, nil
	}
	stol := series.Tolerance{AbsTol: tol.withDefault().AbsTol, RelTol: tol.withDefault().RelTol}
	val, err := v.s.EvaluateAt(t, stol)
	if err != nil {
		return false, err
	}
	v.cachedAt, v.cachedVal, v.hasCache = t, val, true
	return val, nil
}
