package wire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/roach88/termwire/internal/stream"
)

// MaxAtomLen bounds the declared byte length of an atom read from the wire.
// A corrupted or adversarial length prefix larger than this is reported as
// memory exhaustion before any allocation is attempted.
const MaxAtomLen = 1 << 28

// WriteInt32 encodes v as 4 bytes, most-significant byte first, in a single
// stream write. A short count or write failure reports an I/O error.
func WriteInt32(s *stream.Stream, v int32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	if _, err := s.Write(b[:]); err != nil {
		return IOError(s, "write")
	}
	return nil
}

// ReadInt32 reads exactly 4 bytes and reassembles them most-significant
// byte first. A short read reports an I/O error; no partially-assembled
// value is returned.
func ReadInt32(s *stream.Stream) (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(s, b[:]); err != nil {
		return 0, IOError(s, "read")
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

// WriteAtom encodes text as a 4-byte byte-count prefix followed by the
// UTF-8 code units of text, each emitted through the stream's character
// path with UTF-8 forced for the duration of the call. The prior encoding
// is restored on every exit path.
//
// The prefix counts bytes, not code points.
func WriteAtom(s *stream.Stream, text string) error {
	if err := WriteInt32(s, int32(len(text))); err != nil {
		return err
	}

	prev := s.SwapEncoding(stream.EncUTF8)
	defer s.SetEncoding(prev)

	for i := 0; i < len(text); i++ {
		if err := s.Putcode(rune(text[i])); err != nil {
			return IOError(s, "write")
		}
	}
	return nil
}

// ReadAtom reads a 4-byte length prefix and then that many code units
// through the stream's character path with UTF-8 forced, appending each as
// a single byte. The prior encoding is restored on every exit path,
// including a failure partway through.
//
// The collected bytes are returned as text without further validation of
// UTF-8 well-formedness beyond what the character path itself enforces.
func ReadAtom(s *stream.Stream) (string, error) {
	n, err := ReadInt32(s)
	if err != nil {
		return "", err
	}

	buf, aerr := acquireBuffer(int(n))
	if aerr != nil {
		return "", aerr
	}

	prev := s.SwapEncoding(stream.EncUTF8)
	defer s.SetEncoding(prev)

	for i := range buf {
		c, err := s.Getcode()
		if err != nil {
			return "", IOError(s, "read")
		}
		buf[i] = byte(c)
	}
	return string(buf), nil
}

// acquireBuffer obtains a working buffer of n bytes for an atom read.
// The runtime allocator owns the small/large split; this layer only
// refuses lengths no well-formed stream can carry, reporting them as
// memory exhaustion.
func acquireBuffer(n int) ([]byte, error) {
	if n < 0 || n > MaxAtomLen {
		return nil, ResourceError("memory")
	}
	return make([]byte, n), nil
}

// WriteFloat emits the 8 bytes of f's IEEE-754 bit pattern through the raw
// byte path, permuted from native order into the canonical wire order.
func WriteFloat(s *stream.Stream, f float64) error {
	var native [8]byte
	binary.NativeEndian.PutUint64(native[:], math.Float64bits(f))

	for i := 0; i < len(native); i++ {
		if err := s.Putbyte(native[doubleByteOrder[i]]); err != nil {
			return IOError(s, "write")
		}
	}
	return nil
}

// ReadFloat reads 8 raw bytes, placing each at the native position given by
// the permutation table, and reinterprets the result as a float64. The bit
// pattern is reproduced exactly; no NaN or infinity canonicalization.
func ReadFloat(s *stream.Stream) (float64, error) {
	var native [8]byte
	for i := 0; i < len(native); i++ {
		b, err := s.Getbyte()
		if err != nil {
			return 0, IOError(s, "read")
		}
		native[doubleByteOrder[i]] = b
	}
	return math.Float64frombits(binary.NativeEndian.Uint64(native[:])), nil
}
