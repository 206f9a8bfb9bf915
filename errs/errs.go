// Package errs collects the distinct, addressable error kinds raised by the
// boolde series and engine packages. Every kind is returned to the caller
// with enough context to diagnose it; none are recovered internally.
package errs

import "fmt"

// Kind identifies one of the error taxonomy entries from the design
// document's error handling table. Switch on (*Error).Kind, or use errors.Is
// against another *Error of the wanted Kind.
type Kind int

const (
	_ Kind = iota
	// InvalidSeriesShape: BooleanSeries constructor, length mismatch or bad end.
	InvalidSeriesShape
	// TimesNotSorted: BooleanSeries constructor, non-strictly-increasing times.
	TimesNotSorted
	// EndBeforeLastSwitch: BooleanSeries constructor, end < t[-1].
	EndBeforeLastSwitch
	// OutOfRange: evaluate_at/cut, point or interval outside series domain.
	OutOfRange
	// DomainMismatch: merge/hamming_distance, series domains differ.
	DomainMismatch
	// InvalidDelay: engine construction, non-positive delay.
	InvalidDelay
	// HistoryTooShort: engine construction, max delay exceeds history span.
	HistoryTooShort
	// ForcingTooShort: engine construction/solve, forcing does not cover required span.
	ForcingTooShort
	// HistoryEndsOnSwitch: engine construction, last switch coincides with history end.
	HistoryEndsOnSwitch
	// TransitionArityMismatch: solve, user function returns wrong length.
	TransitionArityMismatch
	// SwitchDensityExceeded: solve, safety bound tripped.
	SwitchDensityExceeded
)

func (k Kind) String() string {
	switch k {
	case InvalidSeriesShape:
		return "InvalidSeriesShape"
	case TimesNotSorted:
		return "TimesNotSorted"
	case EndBeforeLastSwitch:
		return "EndBeforeLastSwitch"
	case OutOfRange:
		return "OutOfRange"
	case DomainMismatch:
		return "DomainMismatch"
	case InvalidDelay:
		return "InvalidDelay"
	case HistoryTooShort:
		return "HistoryTooShort"
	case ForcingTooShort:
		return "ForcingTooShort"
	case HistoryEndsOnSwitch:
		return "HistoryEndsOnSwitch"
	case TransitionArityMismatch:
		return "TransitionArityMismatch"
	case SwitchDensityExceeded:
		return "SwitchDensityExceeded"
	default:
		return "UnknownErrorKind"
	}
}

// Error is the single error type surfaced by the series and engine packages.
// Callers can inspect Kind directly, or use errors.Is(err, target) with a
// target *Error, since Error.Is treats two *Error values with the same Kind
// as equal. A bare Kind is not an error value and cannot be an errors.Is target.
type Error struct {
	Kind Kind
	// Symbol, when non-empty, names the offending variable or forcing input.
	Symbol string
	// VarIndex is the offending variable index, or -1 if not applicable.
	VarIndex int
	// Time is the offending timestamp; New leaves it 0 until WithTime sets it.
	Time float64
	// Msg is a human-readable detail appended to the formatted error.
	Msg string
}

func (e *Error) Error() string {
	switch {
	case e.Symbol != "" && e.VarIndex >= 0:
		return fmt.Sprintf("boolde: %s: var %s (index %d): %s", e.Kind, e.Symbol, e.VarIndex, e.Msg)
	case e.Symbol != "":
		return fmt.Sprintf("boolde: %s: var %s: %s", e.Kind, e.Symbol, e.Msg)
	case e.VarIndex >= 0:
		return fmt.Sprintf("boolde: %s: var index %d: %s", e.Kind, e.VarIndex, e.Msg)
	default:
		return fmt.Sprintf("boolde: %s: %s", e.Kind, e.Msg)
	}
}

// Is implements errors.Is support for two *Error values sharing a Kind; any
// other target type never matches. For switch-based dispatch read the Kind
// field directly.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New builds an *Error with VarIndex defaulted to -1 and Time to NaN-free 0,
// meant to be overridden by callers via the With* helpers.
func New(kind Kind, msg string, args ...interface{}) *Error {
	return &Error{Kind: kind, VarIndex: -1, Msg: fmt.Sprintf(msg, args...)}
}

// WithSymbol returns a copy of e annotated with the offending Symbol.
func (e *Error) WithSymbol(sym string) *Error {
	cp := *e
	cp.Symbol = sym
	return &cp
}

// WithVarIndex returns a copy of e annotated with the offending variable index.
func (e *Error) WithVarIndex(i int) *Error {
	cp := *e
	cp.VarIndex = i
	return &cp
}

// WithTime returns a copy of e annotated with the offending timestamp.
func (e *Error) WithTime(t float64) *Error {
	cp := *e
	cp.Time = t
	return &cp
}
