package engine

import (
	"strconv"

	"github.com/roach88/termwire/internal/stream"
	"github.com/roach88/termwire/internal/term"
	"github.com/roach88/termwire/internal/wire"
)

// streamArg resolves an argument to an open stream. Anything that is not a
// live handle raises a type error naming "stream".
func (m *Machine) streamArg(v term.Value) (*stream.Stream, error) {
	if h, ok := term.Deref(v).(term.Handle); ok {
		if s, found := m.streams[h]; found {
			return s, nil
		}
	}
	return nil, wire.TypeError(v, "stream")
}

// intArg converts an argument to a native integer. Truncation to 32 bits
// happens at the codec boundary, not here.
func intArg(v term.Value) (int64, error) {
	if i, ok := term.Deref(v).(term.Int); ok {
		return int64(i), nil
	}
	return 0, wire.TypeError(v, "integer")
}

// floatArg converts an argument to a native float. Integers convert
// implicitly, as host engines conventionally allow.
func floatArg(v term.Value) (float64, error) {
	switch val := term.Deref(v).(type) {
	case term.Float:
		return float64(val), nil
	case term.Int:
		return float64(val), nil
	default:
		return 0, wire.TypeError(v, "float")
	}
}

// textArg converts an atomic argument to its text. Numbers convert to
// their printed form; compounds and unbound variables raise a type error.
func textArg(v term.Value) (string, error) {
	switch val := term.Deref(v).(type) {
	case term.Atom:
		return string(val), nil
	case term.Int:
		return strconv.FormatInt(int64(val), 10), nil
	case term.Float:
		return strconv.FormatFloat(float64(val), 'g', -1, 64), nil
	default:
		return "", wire.TypeError(v, "atomic")
	}
}

// Unify makes a and b equal, binding unbound variables as needed.
// Sufficient for the constant and error terms this engine exchanges; no
// occurs check, no trail.
func Unify(a, b term.Value) bool {
	a = term.Deref(a)
	b = term.Deref(b)

	if av, ok := a.(*term.Var); ok {
		if bv, ok := b.(*term.Var); ok && av == bv {
			return true
		}
		av.Ref = b
		return true
	}
	if bv, ok := b.(*term.Var); ok {
		bv.Ref = a
		return true
	}

	switch at := a.(type) {
	case term.Atom:
		bt, ok := b.(term.Atom)
		return ok && at == bt
	case term.Int:
		bt, ok := b.(term.Int)
		return ok && at == bt
	case term.Float:
		bt, ok := b.(term.Float)
		return ok && at == bt
	case term.Handle:
		bt, ok := b.(term.Handle)
		return ok && at == bt
	case term.Compound:
		bt, ok := b.(term.Compound)
		if !ok || at.Functor != bt.Functor || len(at.Args) != len(bt.Args) {
			return false
		}
		for i := range at.Args {
			if !Unify(at.Args[i], bt.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
