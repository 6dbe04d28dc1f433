// Package styles loads and saves named presets describing an instance
// layout — which operations should exist, how many instances, under what
// names — and applies them to a document through the reconciler.
//
// Styles are YAML files with a stable uuid identity, so a style re-applied
// from disk reconciles the same way every time.
package styles
