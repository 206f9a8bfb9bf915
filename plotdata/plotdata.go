// Package plotdata adapts solved BooleanSeries into presentation shapes: a
// step-function point stream for plotting, and a fixed-width tabular text
// form for terminal/log output. Neither form round-trips back into a
// BooleanSeries; both are strictly diagnostic/display adapters, kept
// separate from the engine's own solve path.
package plotdata

import (
	"fmt"
	"io"
	"sort"

	"github.com/soypat/boolde/series"
)

// StepPlotData is a step-function rendering of a BooleanSeries: two
// parallel point arrays duplicating each switch time so a line plot drawn
// through (X[i], Y[i]) renders the characteristic vertical riser at every
// switch instead of an interpolated ramp.
type StepPlotData struct {
	Label string
	X     []float64
	Y     []float64
}

// ToStepPlotData converts s into edge-stepped (X, Y) point arrays covering
// [s.Start(), s.End()].
func ToStepPlotData(s series.BooleanSeries) StepPlotData {
	times := s.Times()
	states := s.States()
	x := make([]float64, 0, 2*len(times))
	y := make([]float64, 0, 2*len(times))
	toF := func(b bool) float64 {
		if b {
			return 1
		}
		return 0
	}
	for i, t := range times {
		if i > 0 {
			x = append(x, t)
			y = append(y, toF(states[i-1]))
		}
		x = append(x, t)
		y = append(y, toF(states[i]))
	}
	x = append(x, s.End())
	y = append(y, toF(states[len(states)-1]))
	return StepPlotData{Label: s.Label(), X: x, Y: y}
}

// TabularOptions controls PrintTabular's column layout.
type TabularOptions struct {
	// FormatLen is the fixed column width; columns narrower are space
	// padded, wider are truncated. Defaults to 10 when zero.
	FormatLen int
	// Separator sits between columns on each line. Defaults to " " when empty.
	Separator string
}

func (o TabularOptions) withDefaults() TabularOptions {
	if o.FormatLen == 0 {
		o.FormatLen = 10
	}
	if o.Separator == "" {
		o.Separator = " "
	}
	return o
}

// PrintTabular writes a fixed-width table of domain time against one column
// per series, sampling each series at the union of all switch times.
func PrintTabular(w io.Writer, domain string, list []series.BooleanSeries, opts TabularOptions) error {
	opts = opts.withDefaults()
	if len(list) == 0 {
		return nil
	}
	grid := unionTimes(list, opts)

	header := fixLength(domain, opts.FormatLen)
	for _, s := range list {
		header += opts.Separator + fixLength(s.Label(), opts.FormatLen)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, t := range grid {
		line := fixLength(fmt.Sprintf("%g", t), opts.FormatLen)
		for _, s := range list {
			v, err := s.EvaluateAt(t, series.Tolerance{})
			cell := "?"
			if err == nil {
				cell = boolCell(v)
			}
			line += opts.Separator + fixLength(cell, opts.FormatLen)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func boolCell(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

func unionTimes(list []series.BooleanSeries, opts TabularOptions) []float64 {
	seen := make(map[string]bool)
	var grid []float64
	for _, s := range list {
		for _, t := range s.Times() {
			key := fmt.Sprintf("%.12g", t)
			if !seen[key] {
				seen[key] = true
				grid = append(grid, t)
			}
		}
	}
	sort.Float64s(grid)
	return grid
}

// fixLength pads s with spaces to length l, or truncates it to l.
func fixLength(s string, l int) string {
	const spaces64 = "                                                                "
	if len(s) < l {
		return s + spaces64[:l-len(s)]
	}
	return s[:l]
}
