// Package pipeline holds the per-document context: the live module
// instances of one image and the order list that sequences them.
//
// A Document is passed explicitly into every store, reconciler and movement
// call; there is no process-wide current document. Modules are owned by the
// surrounding application — this package reads and writes their Rank and
// Enabled fields but never creates or destroys instances on its own, except
// for the test/CLI convenience constructors.
package pipeline
