// Package testutil provides shared builders and doubles for the pixelpipe
// test suites: document and list constructors, an in-memory Store and a
// map-backed History.
package testutil
