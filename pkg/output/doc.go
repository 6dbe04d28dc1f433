// Package output renders pixelpipe state for the terminal: the pipeline
// table, audit results and small status lines. Color is resolved once from
// the configured mode, the terminal's capabilities and whether stdout is a
// TTY.
package output
