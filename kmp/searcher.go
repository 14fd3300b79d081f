package kmp

import "context"

// Searcher performs repeated searches for one string pattern.
// Construct once with NewSearcher, then search any number of haystacks.
// Amortizes the failure table cost across many searches.
// The zero Searcher has an empty pattern and never matches.
type Searcher struct {
	m *Matcher[byte]
}

var emptyMatcher Matcher[byte]

func (s Searcher) matcher() *Matcher[byte] {
	if s.m == nil {
		return &emptyMatcher
	}
	return s.m
}

// NewSearcher creates a Searcher for pattern.
func NewSearcher(pattern string) (Searcher, error) {
	m, err := Compile([]byte(pattern))
	if err != nil {
		return Searcher{}, err
	}
	return Searcher{m: m}, nil
}

// MustSearcher is like NewSearcher but panics on an empty pattern.
// It simplifies initialization of package-level searchers.
func MustSearcher(pattern string) Searcher {
	s, err := NewSearcher(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// Pattern returns the pattern the Searcher was created with.
func (s Searcher) Pattern() string {
	return string(s.matcher().scan.pattern)
}

// Count returns the number of possibly overlapping occurrences in haystack.
func (s Searcher) Count(haystack string) int {
	return s.matcher().Count(bytesOf(haystack))
}

// Locate returns the offsets of all occurrences in haystack.
func (s Searcher) Locate(haystack string) []int {
	return s.matcher().Locate(bytesOf(haystack))
}

// LocateN returns at most n offsets; n < 0 means all.
func (s Searcher) LocateN(haystack string, n int) []int {
	return s.matcher().LocateN(bytesOf(haystack), n)
}

// Index finds the first occurrence of the pattern in haystack.
func (s Searcher) Index(haystack string) int {
	return s.matcher().Index(bytesOf(haystack))
}

// Contains reports whether the pattern occurs in haystack.
func (s Searcher) Contains(haystack string) bool {
	return s.matcher().Contains(bytesOf(haystack))
}

// CountContext is like Count but stops early with ctx.Err() once ctx is done.
func (s Searcher) CountContext(ctx context.Context, haystack string) (int, error) {
	return s.matcher().CountContext(ctx, bytesOf(haystack))
}

// LocateContext is like Locate but stops early with ctx.Err() once ctx is done.
func (s Searcher) LocateContext(ctx context.Context, haystack string) ([]int, error) {
	return s.matcher().LocateContext(ctx, bytesOf(haystack))
}
