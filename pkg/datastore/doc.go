// Package datastore persists per-image order state: a version tag selecting
// a built-in canonical table, or the custom sentinel plus the serialized
// list blob.
//
// The engine treats every store failure as "use the default table" — reads
// surface a NOT_FOUND or STORE_READ error and the caller degrades, never
// retries. The SQLite implementation keeps one row per image.
package datastore
