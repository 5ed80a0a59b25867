// Package slicex provides generic slice helpers.
package slicex
