package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/roach88/termwire/internal/stream"
	"github.com/roach88/termwire/internal/term"
)

// ErrFailed is returned when a goal fails without raising an error, e.g.
// when an out-argument does not unify with the decoded value.
var ErrFailed = errors.New("goal failed")

// PredicateFn is the native implementation of a predicate. It either
// succeeds (nil), fails (ErrFailed), or raises a structured error.
type PredicateFn func(m *Machine, args []term.Value) error

// Machine holds the predicate registry and the stream handle table.
//
// Not safe for concurrent use: a single goroutine owns the machine and
// every stream opened on it.
type Machine struct {
	preds      map[string]PredicateFn
	streams    map[term.Handle]*stream.Stream
	nextHandle term.Handle
}

// New creates an empty machine. Predicate sets are installed explicitly,
// e.g. with InstallSerialize.
func New() *Machine {
	return &Machine{
		preds:   make(map[string]PredicateFn),
		streams: make(map[term.Handle]*stream.Stream),
	}
}

// indicator formats the name/arity key predicates are registered under.
func indicator(name string, arity int) string {
	return fmt.Sprintf("%s/%d", name, arity)
}

// Register adds a predicate under its name/arity indicator.
// Registering the same indicator twice is an error.
func (m *Machine) Register(name string, arity int, fn PredicateFn) error {
	key := indicator(name, arity)
	if _, dup := m.preds[key]; dup {
		return fmt.Errorf("register %s: already registered", key)
	}
	m.preds[key] = fn
	return nil
}

// Call dispatches a goal to its registered predicate.
func (m *Machine) Call(name string, args ...term.Value) error {
	fn, ok := m.preds[indicator(name, len(args))]
	if !ok {
		return fmt.Errorf("call %s: unknown predicate", indicator(name, len(args)))
	}
	return fn(m, args)
}

// OpenStream wraps rw as a stream owned by this machine and returns the
// handle term that references it.
func (m *Machine) OpenStream(rw io.ReadWriter, name string) term.Handle {
	m.nextHandle++
	h := m.nextHandle
	m.streams[h] = stream.New(rw, name)
	return h
}

// Stream resolves a handle to its stream.
func (m *Machine) Stream(h term.Handle) (*stream.Stream, bool) {
	s, ok := m.streams[h]
	return s, ok
}

// CloseStream releases a handle. Closing the underlying io.ReadWriter
// stays with whoever opened it; the machine only owns the handle.
func (m *Machine) CloseStream(h term.Handle) error {
	_, ok := m.streams[h]
	if !ok {
		return fmt.Errorf("close stream: unknown handle %d", int64(h))
	}
	delete(m.streams, h)
	return nil
}
