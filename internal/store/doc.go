// Package store provides durable storage for wire-encoded terms.
//
// Terms are persisted as their exact wire payloads (see internal/wire), one
// row per term, grouped into batches identified by a UUID batch token and
// ordered by sequence number. Because the wire format carries no type tags,
// each row records the kind needed to decode its payload.
package store
