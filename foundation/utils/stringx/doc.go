// Package stringx provides small string helpers used across the foundation
// module. All functions are rune-aware where width matters.
package stringx
