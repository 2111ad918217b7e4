package store

import (
	"bytes"
	"fmt"

	"github.com/roach88/termwire/internal/stream"
	"github.com/roach88/termwire/internal/term"
	"github.com/roach88/termwire/internal/wire"
)

// Term kinds as stored in the kind column. The wire format is untagged, so
// the store records which codec operation decodes each payload.
const (
	kindInt32 = "int32"
	kindAtom  = "atom"
	kindFloat = "float"
)

// encodeTerm serializes v to its wire payload over an in-memory stream.
// Only the three wire kinds are storable; anything else raises a type
// error, matching what the codec itself would accept.
func encodeTerm(v term.Value) (kind string, payload []byte, err error) {
	var buf bytes.Buffer
	s := stream.New(&buf, "store")

	switch val := term.Deref(v).(type) {
	case term.Int:
		kind = kindInt32
		err = wire.WriteInt32(s, int32(val))
	case term.Atom:
		kind = kindAtom
		err = wire.WriteAtom(s, string(val))
	case term.Float:
		kind = kindFloat
		err = wire.WriteFloat(s, float64(val))
	default:
		return "", nil, wire.TypeError(v, "atomic")
	}

	if err != nil {
		return "", nil, err
	}
	return kind, buf.Bytes(), nil
}

// decodeTerm deserializes a stored payload according to its kind column.
func decodeTerm(kind string, payload []byte) (term.Value, error) {
	s := stream.New(bytes.NewBuffer(payload), "store")

	switch kind {
	case kindInt32:
		v, err := wire.ReadInt32(s)
		if err != nil {
			return nil, err
		}
		return term.Int(v), nil
	case kindAtom:
		a, err := wire.ReadAtom(s)
		if err != nil {
			return nil, err
		}
		return term.Atom(a), nil
	case kindFloat:
		f, err := wire.ReadFloat(s)
		if err != nil {
			return nil, err
		}
		return term.Float(f), nil
	default:
		return nil, fmt.Errorf("decode term: unknown kind %q", kind)
	}
}
