package kmp

import (
	"context"
	"slices"

	"github.com/mhr3/kmp/internal/bytealg"
)

// Mode selects what a scan accumulates.
type Mode uint8

const (
	// ModeCount only counts occurrences.
	ModeCount Mode = iota
	// ModeLocate records the start offset of every occurrence.
	ModeLocate
)

func (m Mode) valid() bool {
	return m == ModeCount || m == ModeLocate
}

func (m Mode) String() string {
	switch m {
	case ModeCount:
		return "count"
	case ModeLocate:
		return "locate"
	default:
		return "unknown"
	}
}

// Result is the outcome of one scan. In ModeLocate, Offsets holds Count
// strictly increasing start offsets. In ModeCount, Offsets is nil.
type Result struct {
	Count   int
	Offsets []int
}

// cancelCheckInterval is how many loop steps run between context checks.
const cancelCheckInterval = 1 << 12

// scanner holds everything a scan needs besides the text.
type scanner[T comparable] struct {
	pattern []T
	lps     []int

	// skip, if set, returns the first position >= from where a match could
	// start, or -1 if none can. It is only consulted while no prefix of the
	// pattern is matched.
	skip func(text []T, from int) int
}

// run scans text once. limit < 0 means no limit; otherwise the scan stops
// after limit occurrences. ctx may be nil.
func (s *scanner[T]) run(ctx context.Context, text []T, mode Mode, limit int) (Result, error) {
	var res Result
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return res, err
		}
	}

	p, lps := s.pattern, s.lps
	m, n := len(p), len(text)
	if m == 0 || m > n || limit == 0 {
		return res, nil
	}

	i, j := 0, 0
	for step := 1; i < n; step++ {
		if ctx != nil && step&(cancelCheckInterval-1) == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		// Not enough text left to complete the current partial match.
		if n-i < m-j {
			break
		}
		if j == 0 && s.skip != nil {
			if i = s.skip(text, i); i < 0 {
				break
			}
		}

		if text[i] == p[j] {
			i++
			j++
			if j == m {
				res.Count++
				if mode == ModeLocate {
					res.Offsets = append(res.Offsets, i-m)
				}
				if res.Count == limit {
					break
				}
				j = lps[j-1]
			}
			continue
		}

		if j > 0 {
			j = lps[j-1]
		} else {
			i++
		}
	}
	return res, nil
}

// Matcher is a compiled pattern. It owns a private copy of the pattern and
// its LPS table, so it can be reused across texts and goroutines.
type Matcher[T comparable] struct {
	scan scanner[T]
}

// Compile prepares pattern for repeated searches.
// Byte patterns additionally skip ahead on their rarest byte while no
// partial match is pending; results are the same either way.
func Compile[T comparable](pattern []T) (*Matcher[T], error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	p := slices.Clone(pattern)
	m := &Matcher[T]{scan: scanner[T]{
		pattern: p,
		lps:     BuildLPS(p),
	}}
	if bp, ok := any(p).([]byte); ok {
		m.scan.skip = any(rareByteSkip(bp)).(func([]T, int) int)
	}
	return m, nil
}

// rareByteSkip returns a skip function that jumps to the next start where
// the pattern's rarest byte lines up with the text.
func rareByteSkip(pattern []byte) func([]byte, int) int {
	off := bytealg.Rarest(pattern)
	rare := pattern[off]
	return func(text []byte, from int) int {
		return bytealg.IndexAligned(text, from, off, rare)
	}
}

// Len returns the pattern length.
func (m *Matcher[T]) Len() int {
	return len(m.scan.pattern)
}

// Pattern returns a copy of the compiled pattern.
func (m *Matcher[T]) Pattern() []T {
	return slices.Clone(m.scan.pattern)
}

// LPS returns a copy of the pattern's failure table.
func (m *Matcher[T]) LPS() []int {
	return slices.Clone(m.scan.lps)
}

// Count returns the number of possibly overlapping occurrences in text.
func (m *Matcher[T]) Count(text []T) int {
	res, _ := m.scan.run(nil, text, ModeCount, -1)
	return res.Count
}

// Locate returns the start offsets of all occurrences in text, in
// increasing order. Overlapping occurrences are all reported.
func (m *Matcher[T]) Locate(text []T) []int {
	res, _ := m.scan.run(nil, text, ModeLocate, -1)
	return res.Offsets
}

// LocateN is like Locate but returns at most n offsets.
// If n < 0 all offsets are returned; if n == 0 the result is nil.
func (m *Matcher[T]) LocateN(text []T, n int) []int {
	res, _ := m.scan.run(nil, text, ModeLocate, n)
	return res.Offsets
}

// Index returns the offset of the first occurrence, or -1.
func (m *Matcher[T]) Index(text []T) int {
	res, _ := m.scan.run(nil, text, ModeLocate, 1)
	if res.Count == 0 {
		return -1
	}
	return res.Offsets[0]
}

// Contains reports whether the pattern occurs in text.
func (m *Matcher[T]) Contains(text []T) bool {
	res, _ := m.scan.run(nil, text, ModeCount, 1)
	return res.Count > 0
}

// Search runs a scan in the given mode. Unknown modes fail with
// ErrInvalidMode.
func (m *Matcher[T]) Search(text []T, mode Mode) (Result, error) {
	if !mode.valid() {
		return Result{}, ErrInvalidMode
	}
	return m.scan.run(nil, text, mode, -1)
}

// CountContext is like Count but stops early with ctx.Err() once ctx is done.
func (m *Matcher[T]) CountContext(ctx context.Context, text []T) (int, error) {
	res, err := m.scan.run(ctx, text, ModeCount, -1)
	return res.Count, err
}

// LocateContext is like Locate but stops early with ctx.Err() once ctx is done.
func (m *Matcher[T]) LocateContext(ctx context.Context, text []T) ([]int, error) {
	res, err := m.scan.run(ctx, text, ModeLocate, -1)
	return res.Offsets, err
}
