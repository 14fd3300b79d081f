// Package kmp implements exact substring search with the Knuth-Morris-Pratt
// algorithm.
//
// BuildLPS derives the failure table from a pattern alone; the matcher then
// walks the text once, using the table to resume after a mismatch without
// re-reading text. Both run in linear time, so a search costs O(N+M) even
// for adversarial inputs such as "AAA...AB".
//
// Overlapping occurrences are reported: "aa" occurs in "aaaa" at 0, 1 and 2.
// A zero-length pattern is rejected with ErrEmptyPattern.
package kmp

import "unsafe"

// Search scans text for pattern using a caller-supplied failure table, as
// returned by BuildLPS(pattern). The table can be shared across any number
// of texts.
func Search[T comparable](pattern, text []T, lps []int, mode Mode) (Result, error) {
	if len(pattern) == 0 {
		return Result{}, ErrEmptyPattern
	}
	if !validLPS(lps, len(pattern)) {
		return Result{}, ErrInvalidLPS
	}
	if !mode.valid() {
		return Result{}, ErrInvalidMode
	}
	s := scanner[T]{pattern: pattern, lps: lps}
	return s.run(nil, text, mode, -1)
}

// Count returns the number of possibly overlapping occurrences of pattern
// in text.
func Count[T comparable](pattern, text []T) (int, error) {
	res, err := Search(pattern, text, BuildLPS(pattern), ModeCount)
	return res.Count, err
}

// Locate returns the start offsets of all occurrences of pattern in text,
// in increasing order. It returns nil when there are none.
func Locate[T comparable](pattern, text []T) ([]int, error) {
	res, err := Search(pattern, text, BuildLPS(pattern), ModeLocate)
	return res.Offsets, err
}

// Index returns the offset of the first occurrence of pattern in text,
// or -1 if there is none.
func Index[T comparable](pattern, text []T) (int, error) {
	m, err := Compile(pattern)
	if err != nil {
		return -1, err
	}
	return m.Index(text), nil
}

// CountString is Count for strings, comparing bytes.
func CountString(pattern, text string) (int, error) {
	return Count(bytesOf(pattern), bytesOf(text))
}

// LocateString is Locate for strings, comparing bytes.
func LocateString(pattern, text string) ([]int, error) {
	return Locate(bytesOf(pattern), bytesOf(text))
}

// IndexString is Index for strings, comparing bytes.
func IndexString(pattern, text string) (int, error) {
	return Index(bytesOf(pattern), bytesOf(text))
}

// bytesOf returns a read-only view of s. Nothing in this package writes
// through it.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
