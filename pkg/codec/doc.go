// Package codec serializes order lists for persistence.
//
// Three forms are supported: a compact binary form of repeated
// [int32 length][name bytes][int32 instance] records, a human-readable
// comma-delimited text form, and an XML sidecar wrapping the text form.
// Both directions are lossy with respect to rank (always re-derived by
// renumbering on load) and the binary form does not persist entry names.
//
// Decoding is strict: any out-of-bounds field or truncated record discards
// the entire result and the caller falls back to a default table. A partial
// list is never returned.
package codec
