package bytealg

import (
	"bytes"
	"strings"
	"testing"
)

func TestRarest(t *testing.T) {
	tests := []struct {
		needle string
		want   int
	}{
		{"", -1},
		{"a", 0},
		{"the", 1},        // 'h' ranks below 't' and 'e'
		{"quick", 0},      // 'q' is rare
		{"xylophone", 1},  // 'y' ranks below 'x'
		{"aaaa", 0},       // ties keep the first offset
		{"AAAB", 3},       // 'B' ranks below 'A'
		{"abc\x00def", 3}, // control bytes are rarest
	}

	for _, tt := range tests {
		if got := Rarest([]byte(tt.needle)); got != tt.want {
			t.Errorf("Rarest(%q) = %d, want %d", tt.needle, got, tt.want)
		}
	}
}

func TestRank(t *testing.T) {
	if byteRank['q'] >= byteRank['e'] {
		t.Errorf("byteRank['q'] = %d, want below byteRank['e'] = %d", byteRank['q'], byteRank['e'])
	}
	if byteRank[' '] != 255 {
		t.Errorf("byteRank[' '] = %d, want 255", byteRank[' '])
	}
}

// indexAlignedRef is the obvious quadratic definition.
func indexAlignedRef(haystack []byte, from, off int, b byte) int {
	for s := from; s+off < len(haystack); s++ {
		if haystack[s+off] == b {
			return s
		}
	}
	return -1
}

func TestIndexAligned(t *testing.T) {
	tests := []struct {
		haystack  string
		from, off int
		b         byte
		want      int
	}{
		{"", 0, 0, 'a', -1},
		{"abc", 0, 0, 'a', 0},
		{"abc", 0, 2, 'c', 0},
		{"abc", 1, 0, 'a', -1},
		{"xxxQ", 0, 1, 'Q', 2},
		{"xxxQ", 3, 1, 'Q', -1},
		{"abc", -1, 0, 'a', -1},
		{strings.Repeat("x", 100) + "Z", 10, 5, 'Z', 95},
	}

	for _, tt := range tests {
		got := IndexAligned([]byte(tt.haystack), tt.from, tt.off, tt.b)
		if got != tt.want {
			t.Errorf("IndexAligned(%q, %d, %d, %q) = %d, want %d",
				tt.haystack, tt.from, tt.off, tt.b, got, tt.want)
		}
	}
}

func FuzzIndexAligned(f *testing.F) {
	f.Add([]byte("hello world"), 0, 0, byte('o'))
	f.Add([]byte("hello world"), 3, 2, byte('w'))
	f.Add(bytes.Repeat([]byte("ab"), 50), 7, 9, byte('b'))

	f.Fuzz(func(t *testing.T, haystack []byte, from, off int, b byte) {
		if from < 0 || off < 0 || from > 1<<20 || off > 1<<20 {
			t.Skip()
		}
		got := IndexAligned(haystack, from, off, b)
		want := indexAlignedRef(haystack, from, off, b)
		if got != want {
			t.Fatalf("IndexAligned(%q, %d, %d, %q) = %d, want %d", haystack, from, off, b, got, want)
		}
	})
}
