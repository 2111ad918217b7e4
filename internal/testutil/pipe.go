package testutil

import (
	"bytes"
	"syscall"
)

// Pipe is an in-memory read/write stream with optional fault injection for
// tests.
//
// A limit of -1 (the default from NewPipe) disables the fault on that
// direction. With a non-negative WriteLimit, writes accept at most that
// many bytes in total and then fail; the bytes accepted before the fault
// stay in the buffer, modeling a short count on a real descriptor. Reads
// behave symmetrically.
//
// Not safe for concurrent use, matching the stream ownership model.
type Pipe struct {
	// WriteLimit is the total number of bytes writes will accept, or -1.
	WriteLimit int

	// WriteErr is returned once WriteLimit is exhausted. Defaults to EPIPE.
	WriteErr error

	// ReadLimit is the total number of bytes reads will yield, or -1.
	ReadLimit int

	// ReadErr is returned once ReadLimit is exhausted. Defaults to EIO.
	ReadErr error

	buf     bytes.Buffer
	written int
	read    int
}

// NewPipe creates a Pipe with no faults configured.
func NewPipe() *Pipe {
	return &Pipe{WriteLimit: -1, ReadLimit: -1}
}

// Preload appends b to the buffer without counting against WriteLimit.
// Use it to stage wire bytes for a read-side test.
func (p *Pipe) Preload(b []byte) {
	p.buf.Write(b)
}

// Bytes returns the buffered contents.
func (p *Pipe) Bytes() []byte {
	return p.buf.Bytes()
}

// Write implements io.Writer with the configured fault.
func (p *Pipe) Write(b []byte) (int, error) {
	if p.WriteLimit >= 0 {
		remain := p.WriteLimit - p.written
		if remain <= 0 {
			return 0, p.writeErr()
		}
		if len(b) > remain {
			n, _ := p.buf.Write(b[:remain])
			p.written += n
			return n, p.writeErr()
		}
	}
	n, err := p.buf.Write(b)
	p.written += n
	return n, err
}

// Read implements io.Reader with the configured fault. Natural exhaustion
// of the buffer still reports io.EOF as bytes.Buffer does.
func (p *Pipe) Read(b []byte) (int, error) {
	if p.ReadLimit >= 0 {
		remain := p.ReadLimit - p.read
		if remain <= 0 {
			return 0, p.readErr()
		}
		if len(b) > remain {
			b = b[:remain]
		}
	}
	n, err := p.buf.Read(b)
	p.read += n
	if err == nil && p.ReadLimit >= 0 && p.read >= p.ReadLimit {
		err = p.readErr()
	}
	return n, err
}

func (p *Pipe) writeErr() error {
	if p.WriteErr != nil {
		return p.WriteErr
	}
	return syscall.EPIPE
}

func (p *Pipe) readErr() error {
	if p.ReadErr != nil {
		return p.ReadErr
	}
	return syscall.EIO
}
