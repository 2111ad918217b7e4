package term

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a sealed interface representing the term kinds the wire layer
// exchanges with the host engine.
// Only Atom, Int, Float, Handle, Compound, and *Var implement this.
type Value interface {
	termValue() // Sealed - only these types implement it
}

// Atom represents an atomic text value.
type Atom string

func (Atom) termValue() {}

// Int represents an integer value.
// Always int64 in memory; the wire layer narrows to 32 bits on write.
type Int int64

func (Int) termValue() {}

// Float represents a 64-bit IEEE-754 value.
type Float float64

func (Float) termValue() {}

// Handle is an opaque reference to an engine-owned resource such as an
// open stream. The engine resolves handles; this package never does.
type Handle int64

func (Handle) termValue() {}

// Compound represents a functor applied to one or more arguments,
// e.g. io_error(write, Stream).
type Compound struct {
	Functor string
	Args    []Value
}

func (Compound) termValue() {}

// Var represents a variable. Ref is nil while unbound; binding is done by
// the engine during unification. Var values are always passed by pointer
// so a binding is visible to every holder of the term.
type Var struct {
	Name string
	Ref  Value
}

func (*Var) termValue() {}

// NewCompound creates a Compound from a functor and arguments.
func NewCompound(functor string, args ...Value) Compound {
	return Compound{Functor: functor, Args: args}
}

// NewVar creates a fresh unbound variable.
func NewVar(name string) *Var {
	return &Var{Name: name}
}

// Deref follows variable bindings until it reaches an unbound variable or
// a non-variable value.
func Deref(v Value) Value {
	for {
		vr, ok := v.(*Var)
		if !ok || vr.Ref == nil {
			return v
		}
		v = vr.Ref
	}
}

// String renders a term in functional notation for diagnostics.
func String(v Value) string {
	switch val := Deref(v).(type) {
	case Atom:
		return string(val)
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Float:
		return strconv.FormatFloat(float64(val), 'g', -1, 64)
	case Handle:
		return fmt.Sprintf("<handle>(%d)", int64(val))
	case Compound:
		parts := make([]string, len(val.Args))
		for i, arg := range val.Args {
			parts[i] = String(arg)
		}
		return val.Functor + "(" + strings.Join(parts, ",") + ")"
	case *Var:
		if val.Name != "" {
			return "_" + val.Name
		}
		return "_"
	default:
		return fmt.Sprintf("<unknown:%T>", v)
	}
}
