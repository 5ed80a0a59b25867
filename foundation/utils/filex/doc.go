// Package filex provides the file helpers of the kin command: existence
// checks, reading sources and expanding directories into source files.
//
//	files, err := filex.Expand([]string{"examples", "main.kin"}, "*.kin")
package filex
