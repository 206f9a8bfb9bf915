// Package luatransition adapts a user-supplied Lua script to boolde's
// Transition interface, so a BDE model's transition logic can be described
// in a model file rather than compiled Go code. Grounded on gopher-lua usage
// elsewhere in the ecosystem: one *lua.LState per adapter, past states
// marshalled into Lua tables before each call, booleans marshalled back out
// after.
package luatransition

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Adapter evaluates a Lua script's global "transition" function as a
// boolde.Transition. The script is expected to define:
//
//	function transition(z, f)
//	  -- z[d][v] and f[d][k] are 1-indexed Lua tables of booleans
//	  return { ... } -- one boolean per modelled variable, in order
//	end
type Adapter struct {
	L *lua.LState
}

// New compiles script and returns an Adapter ready for repeated Evaluate
// calls. The caller must call Close when done with the solve.
func New(script string) (*Adapter, error) {
	L := lua.NewState()
	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("luatransition: loading script: %w", err)
	}
	if fn := L.GetGlobal("transition"); fn == lua.LNil {
		L.Close()
		return nil, fmt.Errorf("luatransition: script does not define a global 'transition' function")
	}
	return &Adapter{L: L}, nil
}

// Close releases the underlying Lua state.
func (a *Adapter) Close() { a.L.Close() }

// Evaluate calls the script's transition(z, f) function and converts its
// return value back to a []bool.
func (a *Adapter) Evaluate(z [][]bool, f [][]bool) ([]bool, error) {
	fn := a.L.GetGlobal("transition")
	a.L.Push(fn)
	a.L.Push(toTable(a.L, z))
	a.L.Push(toTable(a.L, f))
	if err := a.L.PCall(2, 1, nil); err != nil {
		return nil, fmt.Errorf("luatransition: evaluating transition: %w", err)
	}
	ret := a.L.Get(-1)
	a.L.Pop(1)
	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("luatransition: transition must return a table of booleans, got %s", ret.Type().String())
	}
	out := make([]bool, 0, tbl.Len())
	var convErr error
	tbl.ForEach(func(_, v lua.LValue) {
		b, ok := v.(lua.LBool)
		if !ok {
			convErr = fmt.Errorf("luatransition: expected boolean entries, got %s", v.Type().String())
			return
		}
		out = append(out, bool(b))
	})
	if convErr != nil {
		return nil, convErr
	}
	return out, nil
}

func toTable(L *lua.LState, grid [][]bool) *lua.LTable {
	outer := L.NewTable()
	for d, row := range grid {
		inner := L.NewTable()
		for v, val := range row {
			inner.RawSetInt(v+1, lua.LBool(val))
		}
		outer.RawSetInt(d+1, inner)
	}
	return outer
}
