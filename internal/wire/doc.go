// Package wire implements the binary term wire format.
//
// Three value kinds cross the wire, each with a fixed layout and no type
// tag or framing beyond its own envelope:
//
//   - int32: 4 bytes, big-endian, two's complement
//   - atom:  4-byte big-endian byte-count prefix, then that many UTF-8
//     code units written through the stream's character path
//   - float: 8 bytes of the IEEE-754 bit pattern in a canonical byte order
//     independent of host endianness
//
// The format is an implicit convention between matched writer/reader calls;
// sequencing of multiple values is the caller's responsibility.
//
// Failures surface as *Error values from a closed taxonomy (I/O, type,
// resource). No operation retries, and bytes transferred before a failure
// are not rolled back.
package wire
