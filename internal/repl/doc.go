// Package repl implements the interactive Kin read-parse-print loop.
//
// Session carries the line-independent state and turns each line into a
// Result. Model wraps a Session in a bubbletea program; RunPlain drives the
// same Session over plain streams.
package repl
