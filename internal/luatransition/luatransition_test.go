package luatransition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterEvaluatesNegation(t *testing.T) {
	a, err := New(`
		function transition(z, f)
			return { not z[1][1] }
		end
	`)
	require.NoError(t, err)
	defer a.Close()

	out, err := a.Evaluate([][]bool{{true}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []bool{false}, out)

	out, err = a.Evaluate([][]bool{{false}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, out)
}

func TestNewRejectsScriptWithoutTransition(t *testing.T) {
	_, err := New(`x = 1`)
	require.Error(t, err)
}

func TestAdapterUsesForcing(t *testing.T) {
	a, err := New(`
		function transition(z, f)
			return { z[1][1] and f[1][1] }
		end
	`)
	require.NoError(t, err)
	defer a.Close()

	out, err := a.Evaluate([][]bool{{true}}, [][]bool{{false}})
	require.NoError(t, err)
	assert.Equal(t, []bool{false}, out)
}
