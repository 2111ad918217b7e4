package engine

import (
	"github.com/roach88/termwire/internal/term"
	"github.com/roach88/termwire/internal/wire"
)

// InstallSerialize registers the six binary serialization predicates, each
// a two-argument mapping onto one wire codec operation:
//
//	write_int32(Stream, Int)    read_int32(Stream, -Int)
//	write_atom(Stream, Atom)    read_atom(Stream, -Atom)
//	write_float(Stream, Float)  read_float(Stream, -Float)
func InstallSerialize(m *Machine) error {
	preds := []struct {
		name string
		fn   PredicateFn
	}{
		{"write_int32", pWriteInt32},
		{"read_int32", pReadInt32},
		{"write_atom", pWriteAtom},
		{"read_atom", pReadAtom},
		{"write_float", pWriteFloat},
		{"read_float", pReadFloat},
	}
	for _, p := range preds {
		if err := m.Register(p.name, 2, p.fn); err != nil {
			return err
		}
	}
	return nil
}

func pWriteInt32(m *Machine, args []term.Value) error {
	s, err := m.streamArg(args[0])
	if err != nil {
		return err
	}
	v, err := intArg(args[1])
	if err != nil {
		return err
	}
	// Narrowing to 32 bits is the caller's responsibility, not validated.
	return wire.WriteInt32(s, int32(v))
}

func pReadInt32(m *Machine, args []term.Value) error {
	s, err := m.streamArg(args[0])
	if err != nil {
		return err
	}
	v, err := wire.ReadInt32(s)
	if err != nil {
		return err
	}
	if !Unify(args[1], term.Int(v)) {
		return ErrFailed
	}
	return nil
}

func pWriteAtom(m *Machine, args []term.Value) error {
	s, err := m.streamArg(args[0])
	if err != nil {
		return err
	}
	text, err := textArg(args[1])
	if err != nil {
		return err
	}
	return wire.WriteAtom(s, text)
}

func pReadAtom(m *Machine, args []term.Value) error {
	s, err := m.streamArg(args[0])
	if err != nil {
		return err
	}
	a, err := wire.ReadAtom(s)
	if err != nil {
		return err
	}
	if !Unify(args[1], term.Atom(a)) {
		return ErrFailed
	}
	return nil
}

func pWriteFloat(m *Machine, args []term.Value) error {
	s, err := m.streamArg(args[0])
	if err != nil {
		return err
	}
	f, err := floatArg(args[1])
	if err != nil {
		return err
	}
	return wire.WriteFloat(s, f)
}

func pReadFloat(m *Machine, args []term.Value) error {
	s, err := m.streamArg(args[0])
	if err != nil {
		return err
	}
	f, err := wire.ReadFloat(s)
	if err != nil {
		return err
	}
	if !Unify(args[1], term.Float(f)) {
		return ErrFailed
	}
	return nil
}
