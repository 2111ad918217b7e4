package stream

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding identifies the active text encoding of a stream's code-unit path.
type Encoding int

const (
	// EncOctet passes code units through as raw bytes with no translation.
	EncOctet Encoding = iota
	// EncASCII accepts only code points below 0x80.
	EncASCII
	// EncLatin1 maps code points through ISO 8859-1.
	EncLatin1
	// EncUTF8 encodes and decodes code points as UTF-8 sequences.
	EncUTF8
)

// String returns the conventional name of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncOctet:
		return "octet"
	case EncASCII:
		return "ascii"
	case EncLatin1:
		return "iso_latin_1"
	case EncUTF8:
		return "utf8"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// Stream is a byte-oriented stream with an active text encoding.
//
// The zero value is not usable; construct with New.
type Stream struct {
	name    string
	rw      io.ReadWriter
	enc     Encoding
	lastErr error
}

// New wraps rw as a Stream. name identifies the stream in error terms.
// The initial encoding is EncUTF8, matching how the engine opens text
// streams by default.
func New(rw io.ReadWriter, name string) *Stream {
	return &Stream{name: name, rw: rw, enc: EncUTF8}
}

// Name returns the identifier the stream was opened with.
func (s *Stream) Name() string {
	return s.name
}

// Encoding returns the active text encoding.
func (s *Stream) Encoding() Encoding {
	return s.enc
}

// SetEncoding replaces the active text encoding.
func (s *Stream) SetEncoding(e Encoding) {
	s.enc = e
}

// SwapEncoding sets the active encoding and returns the previous one, for
// the save/mutate/restore discipline:
//
//	prev := s.SwapEncoding(stream.EncUTF8)
//	defer s.SetEncoding(prev)
func (s *Stream) SwapEncoding(e Encoding) Encoding {
	prev := s.enc
	s.enc = e
	return prev
}

// LastError returns the error recorded by the most recent failed operation,
// or nil if no operation has failed. This is the errno analog the error
// reporter consults when building an I/O error.
func (s *Stream) LastError() error {
	return s.lastErr
}

// Read reads raw bytes from the underlying stream. Short counts are
// reported exactly as the underlying reader reports them.
func (s *Stream) Read(p []byte) (int, error) {
	n, err := s.rw.Read(p)
	if err != nil {
		s.lastErr = err
	}
	return n, err
}

// Write writes raw bytes to the underlying stream.
func (s *Stream) Write(p []byte) (int, error) {
	n, err := s.rw.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.lastErr = err
	}
	return n, err
}

// Putbyte writes a single raw byte, bypassing the text encoding.
func (s *Stream) Putbyte(b byte) error {
	_, err := s.Write([]byte{b})
	return err
}

// Getbyte reads a single raw byte, bypassing the text encoding.
func (s *Stream) Getbyte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(s.rw, buf[:]); err != nil {
		s.lastErr = err
		return 0, err
	}
	return buf[0], nil
}

// Putcode writes one code point through the active text encoding.
func (s *Stream) Putcode(r rune) error {
	switch s.enc {
	case EncOctet:
		return s.Putbyte(byte(r))
	case EncASCII:
		if r >= 0x80 {
			return s.fail(fmt.Errorf("stream %s: U+%04X not representable in %s", s.name, r, s.enc))
		}
		return s.Putbyte(byte(r))
	case EncLatin1:
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return s.fail(fmt.Errorf("stream %s: U+%04X not representable in %s", s.name, r, s.enc))
		}
		return s.Putbyte(b)
	case EncUTF8:
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		_, err := s.Write(buf[:n])
		return err
	default:
		return s.fail(fmt.Errorf("stream %s: unsupported encoding %s", s.name, s.enc))
	}
}

// Getcode reads one code point through the active text encoding.
// It returns io.EOF when the stream is exhausted at a code-unit boundary
// and io.ErrUnexpectedEOF when it ends inside a multi-byte sequence.
func (s *Stream) Getcode() (rune, error) {
	b0, err := s.Getbyte()
	if err != nil {
		return 0, err
	}

	switch s.enc {
	case EncOctet:
		return rune(b0), nil
	case EncASCII:
		if b0 >= 0x80 {
			return 0, s.fail(fmt.Errorf("stream %s: byte 0x%02X not valid in %s", s.name, b0, s.enc))
		}
		return rune(b0), nil
	case EncLatin1:
		return charmap.ISO8859_1.DecodeByte(b0), nil
	case EncUTF8:
		return s.getcodeUTF8(b0)
	default:
		return 0, s.fail(fmt.Errorf("stream %s: unsupported encoding %s", s.name, s.enc))
	}
}

// getcodeUTF8 completes a UTF-8 sequence whose first byte has been read.
func (s *Stream) getcodeUTF8(b0 byte) (rune, error) {
	if b0 < 0x80 {
		return rune(b0), nil
	}

	var more int
	switch {
	case b0&0xE0 == 0xC0:
		more = 1
	case b0&0xF0 == 0xE0:
		more = 2
	case b0&0xF8 == 0xF0:
		more = 3
	default:
		return 0, s.fail(fmt.Errorf("stream %s: invalid UTF-8 lead byte 0x%02X", s.name, b0))
	}

	buf := [utf8.UTFMax]byte{b0}
	for i := 1; i <= more; i++ {
		b, err := s.Getbyte()
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
			s.lastErr = err
			return 0, err
		}
		if err != nil {
			return 0, err
		}
		buf[i] = b
	}

	r, size := utf8.DecodeRune(buf[:more+1])
	if r == utf8.RuneError && size <= 1 {
		return 0, s.fail(fmt.Errorf("stream %s: invalid UTF-8 sequence", s.name))
	}
	return r, nil
}

// fail records err as the stream's last error and returns it.
func (s *Stream) fail(err error) error {
	s.lastErr = err
	return err
}
