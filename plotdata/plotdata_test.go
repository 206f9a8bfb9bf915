package plotdata

import (
	"bytes"
	"testing"

	"github.com/soypat/boolde/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStepPlotData(t *testing.T) {
	s, err := series.New([]float64{0, 1, 2}, []bool{true, false, true}, 3, series.Tolerance{}, series.WithLabel("x"))
	require.NoError(t, err)

	pd := ToStepPlotData(s)
	assert.Equal(t, "x", pd.Label)
	require.Equal(t, len(pd.X), len(pd.Y))
	assert.Equal(t, 1.0, pd.Y[0])
	assert.Equal(t, 1.0, pd.Y[len(pd.Y)-1])
}

func TestPrintTabular(t *testing.T) {
	a, err := series.New([]float64{0, 1}, []bool{true, false}, 2, series.Tolerance{}, series.WithLabel("a"))
	require.NoError(t, err)
	b, err := series.New([]float64{0, 1.5}, []bool{false, true}, 2, series.Tolerance{}, series.WithLabel("b"))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = PrintTabular(&buf, "t", []series.BooleanSeries{a, b}, TabularOptions{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "a")
	assert.Contains(t, buf.String(), "b")
}
