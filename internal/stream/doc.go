// Package stream provides the byte-oriented stream the wire codec operates
// on.
//
// A Stream layers two access paths over one io.ReadWriter: a raw byte path
// (Putbyte/Getbyte, Read/Write) and a code-unit path (Putcode/Getcode) that
// honors the stream's active text encoding. The active encoding is mutable
// state on the stream; callers that change it are responsible for restoring
// it before returning, including on error paths.
//
// Streams are not safe for concurrent use. The caller owns the stream
// exclusively for the duration of each operation.
package stream
