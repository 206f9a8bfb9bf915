package boolde

import (
	"sort"

	"github.com/soypat/boolde/errs"
	"github.com/soypat/boolde/series"
)

// Engine is a constructed, validated BDE solver ready to Solve over some
// end time. Apart from the event log of the most recent successful Solve, it
// holds no per-solve mutable state itself; Solve rebuilds its working copies
// fresh each call so a single Engine can be solved multiple times (e.g. over
// a growing end time, or repeatedly from a CLI loop).
type Engine struct {
	model  Model
	tol    Tolerance
	config Config
	log    *Logger
	events []EventRecord
}

// NewEngine validates model and wraps it for solving. cfg is optional; the
// zero Config is used when omitted.
func NewEngine(model Model, cfg ...Config) (*Engine, error) {
	if err := model.validate(); err != nil {
		return nil, err
	}
	var c Config
	if len(cfg) > 0 {
		c = cfg[0]
	}
	c = c.withDefaults()
	return &Engine{
		model:  model,
		tol:    model.Tolerance.withDefault(),
		config: c,
		log:    newLogger(c.Log),
	}, nil
}

// runningSeries is the engine's internal growing representation of a
// variable's trajectory during a solve. Unlike series.BooleanSeries it has
// no fixed end: evaluateAt clamps any query past the last known switch to
// the last known state, which is always correct mid-solve because no
// committable switch can exist between the solve frontier and the next
// candidate time (that next candidate is, by construction, the earliest
// one left in the queue).
type runningSeries struct {
	t []float64
	y []bool
}

func newRunningSeries(h series.BooleanSeries) *runningSeries {
	t := append([]float64(nil), h.Times()...)
	y := append([]bool(nil), h.States()...)
	return &runningSeries{t: t, y: y}
}

func (r *runningSeries) evaluateAt(q float64, tol Tolerance) bool {
	i := sort.Search(len(r.t), func(i int) bool {
		return r.t[i] > q && !tol.Equal(r.t[i], q)
	})
	if i == 0 {
		return r.y[0]
	}
	return r.y[i-1]
}

func (r *runningSeries) lastState() bool { return r.y[len(r.y)-1] }

// commit appends a new switch. Callers only invoke this for variables whose
// state actually changed; the switch-density budget counts these commits,
// not every candidate evaluation.
func (r *runningSeries) commit(t float64, v bool) {
	r.t = append(r.t, t)
	r.y = append(r.y, v)
}

// Solve runs the event-driven delay-propagation loop from tSimStart to
// endTime and returns the resulting BooleanSeries, one per modelled
// variable, keyed by Symbol.
func (e *Engine) Solve(endTime float64) (map[Symbol]series.BooleanSeries, error) {
	if err := e.model.validateForcingCoverage(endTime); err != nil {
		return nil, err
	}
	tSimStart := e.model.tSimStart()
	if endTime < tSimStart && !e.tol.Equal(endTime, tSimStart) {
		return nil, errs.New(errs.OutOfRange, "end time %g precedes simulation start %g", endTime, tSimStart)
	}

	running := make([]*runningSeries, len(e.model.Variables))
	for i, h := range e.model.History {
		running[i] = newRunningSeries(h)
	}
	forcingViews := make([]*ForcingView, len(e.model.Forcing))
	for i, f := range e.model.ForcingSeries {
		forcingViews[i] = NewForcingView(f)
	}

	sched := newScheduler()
	seedFrom := func(h series.BooleanSeries, tag string) {
		for _, ts := range h.Times() {
			for _, d := range e.model.Delays {
				tc := ts + d
				if (tc > tSimStart || e.tol.Equal(tc, tSimStart)) && (tc < endTime || e.tol.Equal(tc, endTime)) {
					sched.push(tc, tag)
				}
			}
		}
	}
	for i, h := range e.model.History {
		seedFrom(h, "history:"+string(e.model.Variables[i]))
	}
	for i, f := range e.model.ForcingSeries {
		seedFrom(f, "forcing:"+string(e.model.Forcing[i]))
	}

	switchCount := 0
	events := make([]EventRecord, 0)

	for !sched.empty() {
		tc, sources := sched.popCoalesced(e.tol)
		if tc > endTime && !e.tol.Equal(tc, endTime) {
			break
		}

		z := make([][]bool, len(e.model.Delays))
		for d, delay := range e.model.Delays {
			z[d] = make([]bool, len(running))
			for v, rs := range running {
				z[d][v] = rs.evaluateAt(tc-delay, e.tol)
			}
		}
		var f [][]bool
		if len(e.model.Forcing) > 0 {
			f = make([][]bool, len(e.model.Delays))
			for d, delay := range e.model.Delays {
				f[d] = make([]bool, len(forcingViews))
				for k, fv := range forcingViews {
					val, err := fv.At(tc-delay, e.tol)
					if err != nil {
						return nil, err
					}
					f[d][k] = val
				}
			}
		}

		next, err := e.model.Transition.Evaluate(z, f)
		if err != nil {
			return nil, err
		}
		if len(next) != len(e.model.Variables) {
			return nil, errs.New(errs.TransitionArityMismatch,
				"transition returned %d states, model has %d variables", len(next), len(e.model.Variables))
		}

		changed := make([]int, 0, len(next))
		for v, rs := range running {
			if next[v] != rs.lastState() {
				changed = append(changed, v)
			}
		}
		for _, v := range changed {
			running[v].commit(tc, next[v])
		}
		switchCount += len(changed)
		e.log.Tracef("t=%g sources=%v changed=%v", tc, sources, changed)
		events = append(events, EventRecord{Time: tc, Sources: sources, Changed: symbolsOf(e.model.Variables, changed)})

		if e.config.Algorithm.MaxSwitchDensity > 0 {
			span := tc - tSimStart
			if span > 0 && float64(switchCount)/span > e.config.Algorithm.MaxSwitchDensity {
				return nil, errs.New(errs.SwitchDensityExceeded,
					"switch density %g/unit exceeded budget %g at t=%g",
					float64(switchCount)/span, e.config.Algorithm.MaxSwitchDensity, tc)
			}
		}

		for _, v := range changed {
			for _, d := range e.model.Delays {
				nc := tc + d
				if nc < endTime || e.tol.Equal(nc, endTime) {
					sched.push(nc, "switch:"+string(e.model.Variables[v]))
				}
			}
		}
	}

	out := make(map[Symbol]series.BooleanSeries, len(e.model.Variables))
	for v, sym := range e.model.Variables {
		s, err := series.New(running[v].t, running[v].y, endTime, e.model.seriesTol(), series.WithLabel(string(sym)))
		if err != nil {
			return nil, err
		}
		out[sym] = s
	}

	e.events = events
	e.log.flush()
	return out, nil
}

func symbolsOf(all []Symbol, idx []int) []Symbol {
	out := make([]Symbol, len(idx))
	for i, v := range idx {
		out[i] = all[v]
	}
	return out
}
