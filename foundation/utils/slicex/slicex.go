// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic slice helpers for transforming and counting
//              token streams, file lists and check results.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-18 v0.2.0: Reduced to Map, Count and Unique

package slicex

// Map returns a new slice with mapper applied to every element
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, v := range slice {
		result[i] = mapper(v)
	}
	return result
}

// Count returns the number of elements that match the predicate
func Count[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return 0
	}

	count := 0
	for _, v := range slice {
		if predicate(v) {
			count++
		}
	}
	return count
}

// Unique returns the elements in order of first occurrence, without
// duplicates
func Unique[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}

	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
