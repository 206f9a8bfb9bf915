package boolde

import (
	"github.com/soypat/boolde/errs"
	"github.com/soypat/boolde/series"
)

// Model bundles everything a solve needs: the transition function, the
// delay vector, one history BooleanSeries per modelled variable, and
// optionally one BooleanSeries per forcing input.
type Model struct {
	// Variables names each modelled variable; its order defines the variable
	// index exposed to Transition as z[d][v].
	Variables []Symbol
	// Forcing names each forcing input; its order defines the forcing index
	// exposed to Transition as f[d][k]. May be empty.
	Forcing []Symbol
	// Delays holds the strictly positive delay vector; Delays[d] is the
	// delay exposed to Transition as index d.
	Delays []float64
	// Transition is the user-supplied Boolean transition function.
	Transition Transition
	// History holds one BooleanSeries per modelled variable, in Variables order.
	History []series.BooleanSeries
	// ForcingSeries holds one BooleanSeries per forcing input, in Forcing order.
	// Required to cover [tSimStart-maxDelay, endTime] once EndTime is known.
	ForcingSeries []series.BooleanSeries
	// Tolerance is the comparator used throughout the solve. The zero value
	// falls back to DefaultTolerance.
	Tolerance Tolerance
}

// tSimStart returns the simulation start time: the shared end of all
// histories. Callers must have already verified histories share an end.
func (m Model) tSimStart() float64 {
	return m.History[0].End()
}

func (m Model) maxDelay() float64 {
	max := m.Delays[0]
	for _, d := range m.Delays[1:] {
		if d > max {
			max = d
		}
	}
	return max
}

func (m Model) seriesTol() series.Tolerance {
	tol := m.Tolerance.withDefault()
	return series.Tolerance{AbsTol: tol.AbsTol, RelTol: tol.RelTol}
}

// validate checks the construction-time invariants that do not depend on the
// solve end time: positive delays, matching history and forcing counts, a
// shared history end, sufficiently long histories, and no history ending on
// a switch. Forcing coverage depends on the end time and is checked
// separately by validateForcingCoverage when Solve is called.
func (m Model) validate() error {
	if len(m.Delays) == 0 {
		return errs.New(errs.InvalidDelay, "model requires at least one delay")
	}
	for i, d := range m.Delays {
		if d <= 0 {
			return errs.New(errs.InvalidDelay, "delay[%d]=%g must be strictly positive", i, d).WithVarIndex(i)
		}
	}
	if len(m.Variables) == 0 {
		return errs.New(errs.InvalidSeriesShape, "model requires at least one variable")
	}
	if len(m.History) != len(m.Variables) {
		return errs.New(errs.InvalidSeriesShape,
			"len(History)=%d != len(Variables)=%d", len(m.History), len(m.Variables))
	}
	if len(m.ForcingSeries) != len(m.Forcing) {
		return errs.New(errs.InvalidSeriesShape,
			"len(ForcingSeries)=%d != len(Forcing)=%d", len(m.ForcingSeries), len(m.Forcing))
	}

	stol := m.seriesTol()
	sharedEnd := m.History[0].End()
	for i, h := range m.History {
		if !stol.Equal(h.End(), sharedEnd) {
			return errs.New(errs.DomainMismatch, "history end %g != %g", h.End(), sharedEnd).
				WithSymbol(string(m.Variables[i])).WithVarIndex(i)
		}
	}

	maxDelay := m.maxDelay()
	tSimStart := sharedEnd
	for i, h := range m.History {
		if tSimStart-h.Start() < maxDelay && !stol.Equal(tSimStart-h.Start(), maxDelay) {
			return errs.New(errs.HistoryTooShort,
				"history span %g shorter than max delay %g", tSimStart-h.Start(), maxDelay).
				WithSymbol(string(m.Variables[i])).WithVarIndex(i)
		}
		lastSwitch := h.Times()[h.Len()-1]
		if stol.Equal(h.End(), lastSwitch) {
			return errs.New(errs.HistoryEndsOnSwitch,
				"history end %g coincides with its last switch", h.End()).
				WithSymbol(string(m.Variables[i])).WithVarIndex(i)
		}
	}
	return nil
}

// validateForcingCoverage checks that every forcing series covers
// [tSimStart-maxDelay, endTime], given the eventual solve end time.
func (m Model) validateForcingCoverage(endTime float64) error {
	stol := m.seriesTol()
	need0 := m.tSimStart() - m.maxDelay()
	for i, f := range m.ForcingSeries {
		if f.Start() > need0 && !stol.Equal(f.Start(), need0) {
			return errs.New(errs.ForcingTooShort,
				"forcing start %g after required %g", f.Start(), need0).
				WithSymbol(string(m.Forcing[i])).WithVarIndex(i)
		}
		if f.End() < endTime && !stol.Equal(f.End(), endTime) {
			return errs.New(errs.ForcingTooShort,
				"forcing end %g before required %g", f.End(), endTime).
				WithSymbol(string(m.Forcing[i])).WithVarIndex(i)
		}
	}
	return nil
}
