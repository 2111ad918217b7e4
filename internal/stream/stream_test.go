package stream

import (
	"bytes"
	"io"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/termwire/internal/testutil"
)

func TestEncoding_Names(t *testing.T) {
	assert.Equal(t, "octet", EncOctet.String())
	assert.Equal(t, "ascii", EncASCII.String())
	assert.Equal(t, "iso_latin_1", EncLatin1.String())
	assert.Equal(t, "utf8", EncUTF8.String())
}

func TestSwapEncoding(t *testing.T) {
	s := New(&bytes.Buffer{}, "t")
	require.Equal(t, EncUTF8, s.Encoding(), "streams open in UTF-8")

	prev := s.SwapEncoding(EncLatin1)
	assert.Equal(t, EncUTF8, prev)
	assert.Equal(t, EncLatin1, s.Encoding())

	s.SetEncoding(prev)
	assert.Equal(t, EncUTF8, s.Encoding())
}

func TestPutcode_UTF8_MultiByte(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "t")

	require.NoError(t, s.Putcode('é'))
	assert.Equal(t, []byte{0xC3, 0xA9}, buf.Bytes())

	require.NoError(t, s.Putcode('語'))
	assert.Equal(t, []byte{0xC3, 0xA9, 0xE8, 0xAA, 0x9E}, buf.Bytes())
}

func TestGetcode_UTF8_MultiByte(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0xC3, 0xA9, 0xE8, 0xAA, 0x9E, 'x'})
	s := New(buf, "t")

	r, err := s.Getcode()
	require.NoError(t, err)
	assert.Equal(t, 'é', r)

	r, err = s.Getcode()
	require.NoError(t, err)
	assert.Equal(t, '語', r)

	r, err = s.Getcode()
	require.NoError(t, err)
	assert.Equal(t, 'x', r)

	_, err = s.Getcode()
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetcode_UTF8_TruncatedSequence(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0xC3}) // lead byte without continuation
	s := New(buf, "t")

	_, err := s.Getcode()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestLatin1_CodeUnits(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "t")
	s.SetEncoding(EncLatin1)

	require.NoError(t, s.Putcode('é'))
	assert.Equal(t, []byte{0xE9}, buf.Bytes(), "Latin-1 é is a single byte")

	r, err := s.Getcode()
	require.NoError(t, err)
	assert.Equal(t, 'é', r)

	err = s.Putcode('語')
	assert.Error(t, err, "code point outside Latin-1 cannot be represented")
}

func TestASCII_RejectsHighCodePoints(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "t")
	s.SetEncoding(EncASCII)

	require.NoError(t, s.Putcode('A'))
	assert.Error(t, s.Putcode('é'))
}

func TestOctet_PassThrough(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, "t")
	s.SetEncoding(EncOctet)

	require.NoError(t, s.Putcode(rune(0xC3)))
	require.NoError(t, s.Putcode(rune(0xA9)))
	assert.Equal(t, []byte{0xC3, 0xA9}, buf.Bytes(), "octet writes bytes untranslated")

	r, err := s.Getcode()
	require.NoError(t, err)
	assert.Equal(t, rune(0xC3), r)
}

func TestLastError_RecordsFailure(t *testing.T) {
	p := testutil.NewPipe()
	p.WriteLimit = 0
	s := New(p, "t")

	assert.Nil(t, s.LastError())

	err := s.Putbyte('x')
	require.Error(t, err)
	assert.ErrorIs(t, s.LastError(), syscall.EPIPE)
}

func TestWrite_ShortCountIsAnError(t *testing.T) {
	p := testutil.NewPipe()
	p.WriteLimit = 2
	p.WriteErr = syscall.ENOSPC
	s := New(p, "t")

	n, err := s.Write([]byte("abcd"))
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, syscall.ENOSPC)
}

func TestGetbyte_EOF(t *testing.T) {
	s := New(&bytes.Buffer{}, "t")

	_, err := s.Getbyte()
	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, s.LastError(), io.EOF)
}
