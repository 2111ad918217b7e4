package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeref(t *testing.T) {
	v := NewVar("X")
	assert.Equal(t, v, Deref(v), "unbound variable derefs to itself")

	v.Ref = Int(3)
	assert.Equal(t, Int(3), Deref(v))

	// Chains of bindings resolve to the final value.
	w := NewVar("Y")
	w.Ref = v
	assert.Equal(t, Int(3), Deref(w))

	assert.Equal(t, Atom("a"), Deref(Atom("a")), "non-variables pass through")
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"atom", Atom("hello"), "hello"},
		{"int", Int(-42), "-42"},
		{"float", Float(1.5), "1.5"},
		{"handle", Handle(3), "<handle>(3)"},
		{"unbound var", NewVar("X"), "_X"},
		{"anonymous var", NewVar(""), "_"},
		{
			"compound",
			NewCompound("io_error", Atom("write"), Atom("out")),
			"io_error(write,out)",
		},
		{
			"nested compound",
			NewCompound("error", NewCompound("resource_error", Atom("memory")), NewVar("")),
			"error(resource_error(memory),_)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.v))
		})
	}
}

func TestString_FollowsBindings(t *testing.T) {
	v := NewVar("X")
	v.Ref = Atom("bound")
	assert.Equal(t, "bound", String(v))

	c := NewCompound("f", v)
	assert.Equal(t, "f(bound)", String(c))
}
