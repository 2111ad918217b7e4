package wire

import (
	"errors"
	"fmt"
	"sync"
	"syscall"

	"github.com/roach88/termwire/internal/stream"
	"github.com/roach88/termwire/internal/term"
)

// ErrorKind categorizes wire errors. The taxonomy is closed: every failure
// this package reports is one of the three kinds below.
type ErrorKind string

const (
	// KindIO indicates a short count or failed transfer on the stream.
	KindIO ErrorKind = "io_error"

	// KindType indicates an argument could not be converted to the
	// required native kind.
	KindType ErrorKind = "type_error"

	// KindResource indicates a required dynamic allocation was refused.
	KindResource ErrorKind = "resource_error"
)

// Error is a structured wire failure. Exactly the fields relevant to its
// Kind are populated; the rest stay zero.
type Error struct {
	// Kind identifies the error category.
	Kind ErrorKind

	// Action is "read" or "write" (I/O errors only).
	Action string

	// Stream references the offending stream (I/O errors only).
	Stream *stream.Stream

	// OSMessage is the platform description of the underlying failure
	// (I/O errors only). "Unknown error" when the platform has none.
	OSMessage string

	// Culprit is the offending value (type errors only).
	Culprit term.Value

	// Expected names the required kind, e.g. "integer" (type errors only).
	Expected string

	// Resource names the exhausted resource, e.g. "memory"
	// (resource errors only).
	Resource string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprintf("%s: %s on %s: %s", e.Kind, e.Action, e.Stream.Name(), e.OSMessage)
	case KindType:
		return fmt.Sprintf("%s: expected %s, got %s", e.Kind, e.Expected, term.String(e.Culprit))
	case KindResource:
		return fmt.Sprintf("%s: insufficient %s", e.Kind, e.Resource)
	default:
		return string(e.Kind)
	}
}

// functorDesc describes one error-shape functor.
type functorDesc struct {
	Name  string
	Arity int
}

// descriptorSet is the process-wide table of error-shape descriptors.
// Built exactly once, then immutable.
type descriptorSet struct {
	Error    functorDesc
	IO       functorDesc
	Context  functorDesc
	Type     functorDesc
	Resource functorDesc
}

var (
	descOnce sync.Once
	descSet  *descriptorSet
)

// descriptors returns the singleton descriptor table, initializing it on
// first use.
func descriptors() *descriptorSet {
	descOnce.Do(func() {
		descSet = &descriptorSet{
			Error:    functorDesc{Name: "error", Arity: 2},
			IO:       functorDesc{Name: "io_error", Arity: 2},
			Context:  functorDesc{Name: "context", Arity: 2},
			Type:     functorDesc{Name: "type_error", Arity: 2},
			Resource: functorDesc{Name: "resource_error", Arity: 1},
		}
	})
	return descSet
}

// Term renders the error as the structured term raised to the host engine:
//
//	error(io_error(Action, Stream), context(_, OSMessage))
//	error(type_error(Expected, Culprit), _)
//	error(resource_error(Resource), _)
//
// The context slot is left unbound for the caller to enrich.
func (e *Error) Term() term.Value {
	d := descriptors()
	switch e.Kind {
	case KindIO:
		return term.NewCompound(d.Error.Name,
			term.NewCompound(d.IO.Name, term.Atom(e.Action), term.Atom(e.Stream.Name())),
			term.NewCompound(d.Context.Name, term.NewVar(""), term.Atom(e.OSMessage)),
		)
	case KindType:
		return term.NewCompound(d.Error.Name,
			term.NewCompound(d.Type.Name, term.Atom(e.Expected), e.Culprit),
			term.NewVar(""),
		)
	case KindResource:
		return term.NewCompound(d.Error.Name,
			term.NewCompound(d.Resource.Name, term.Atom(e.Resource)),
			term.NewVar(""),
		)
	default:
		return term.Atom(string(e.Kind))
	}
}

// IOError builds an I/O error for the given action on s, capturing the
// platform description of the stream's last failed operation.
func IOError(s *stream.Stream, action string) *Error {
	return &Error{
		Kind:      KindIO,
		Action:    action,
		Stream:    s,
		OSMessage: osMessage(s.LastError()),
	}
}

// TypeError builds a type error for a value that could not be converted to
// the expected kind.
func TypeError(culprit term.Value, expected string) *Error {
	return &Error{Kind: KindType, Culprit: culprit, Expected: expected}
}

// ResourceError builds a resource exhaustion error.
func ResourceError(what string) *Error {
	return &Error{Kind: KindResource, Resource: what}
}

// IsIOError returns true if the error is a wire I/O error.
// Uses errors.As to handle wrapped errors.
func IsIOError(err error) bool {
	var we *Error
	return errors.As(err, &we) && we.Kind == KindIO
}

// IsTypeError returns true if the error is a wire type error.
func IsTypeError(err error) bool {
	var we *Error
	return errors.As(err, &we) && we.Kind == KindType
}

// IsResourceError returns true if the error is a wire resource error.
func IsResourceError(err error) bool {
	var we *Error
	return errors.As(err, &we) && we.Kind == KindResource
}

// osMessage maps the underlying cause of a failed stream operation to the
// platform error text, the strerror analog. A bare errno renders through
// syscall; anything else reports its own message.
func osMessage(cause error) string {
	if cause == nil {
		return "Unknown error"
	}
	var errno syscall.Errno
	if errors.As(cause, &errno) {
		return errno.Error()
	}
	return cause.Error()
}
