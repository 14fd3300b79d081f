package kmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lpsBruteForce computes the failure table straight from its definition.
func lpsBruteForce[T comparable](pattern []T) []int {
	lps := make([]int, len(pattern))
	for k := range pattern {
		for l := k; l > 0; l-- {
			if equalSlices(pattern[:l], pattern[k+1-l:k+1]) {
				lps[k] = l
				break
			}
		}
	}
	return lps
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildLPS(t *testing.T) {
	tests := []struct {
		pattern string
		want    []int
	}{
		{"", []int{}},
		{"a", []int{0}},
		{"aa", []int{0, 1}},
		{"ab", []int{0, 0}},
		{"aaaa", []int{0, 1, 2, 3}},
		{"abab", []int{0, 0, 1, 2}},
		{"abcabd", []int{0, 0, 0, 1, 2, 0}},
		{"aabaaab", []int{0, 1, 0, 1, 2, 2, 3}},
		{"AAAAB", []int{0, 1, 2, 3, 0}},
		{"abacabab", []int{0, 0, 1, 0, 1, 2, 3, 2}},
		{"ababaca", []int{0, 0, 1, 2, 3, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := BuildLPS([]byte(tt.pattern))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildLPSEmptyIsNotNil(t *testing.T) {
	lps := BuildLPS([]rune{})
	require.NotNil(t, lps)
	assert.Len(t, lps, 0)
}

// TestBuildLPSExhaustive checks every pattern over {a,b,c} up to length 7
// against the definition.
func TestBuildLPSExhaustive(t *testing.T) {
	alphabet := []byte("abc")
	var walk func(prefix []byte)
	walk = func(prefix []byte) {
		if len(prefix) > 0 {
			got := BuildLPS(prefix)
			want := lpsBruteForce(prefix)
			if !equalSlices(got, want) {
				t.Fatalf("BuildLPS(%q) = %v, want %v", prefix, got, want)
			}
			if got[0] != 0 {
				t.Fatalf("BuildLPS(%q)[0] = %d, want 0", prefix, got[0])
			}
			for k, v := range got {
				if v < 0 || v > k {
					t.Fatalf("BuildLPS(%q)[%d] = %d out of [0, %d]", prefix, k, v, k)
				}
			}
		}
		if len(prefix) == 7 {
			return
		}
		for _, c := range alphabet {
			walk(append(prefix, c))
		}
	}
	walk(make([]byte, 0, 7))
}

func TestBuildLPSGeneric(t *testing.T) {
	ints := []int{1, 2, 1, 2, 1, 3}
	assert.Equal(t, []int{0, 0, 1, 2, 3, 0}, BuildLPS(ints))

	runes := []rune("日本日本語")
	assert.Equal(t, []int{0, 0, 1, 2, 0}, BuildLPS(runes))

	type point struct{ x, y int }
	pts := []point{{0, 0}, {1, 1}, {0, 0}}
	assert.Equal(t, []int{0, 0, 1}, BuildLPS(pts))
}

func TestValidLPS(t *testing.T) {
	assert.True(t, validLPS([]int{}, 0))
	assert.True(t, validLPS([]int{0, 1, 2}, 3))
	assert.False(t, validLPS([]int{0, 1}, 3))
	assert.False(t, validLPS([]int{1, 0}, 2))
	assert.False(t, validLPS([]int{0, 2}, 2))
	assert.False(t, validLPS([]int{0, -1}, 2))
}

func FuzzBuildLPS(f *testing.F) {
	f.Add("a")
	f.Add("abab")
	f.Add("aabaaab")
	f.Add("AAAAAAAAAB")
	f.Add("abacabadabacaba")

	f.Fuzz(func(t *testing.T, pattern string) {
		if len(pattern) > 64 {
			pattern = pattern[:64]
		}
		got := BuildLPS([]byte(pattern))
		want := lpsBruteForce([]byte(pattern))
		if !equalSlices(got, want) {
			t.Fatalf("BuildLPS(%q) = %v, want %v", pattern, got, want)
		}
	})
}
