package kmp

import (
	"bytes"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

var benchSink int

var benchSizes = []struct {
	name string
	size int
}{
	{"1KB", 1024},
	{"64KB", 64 * 1024},
	{"1MB", 1024 * 1024},
}

// BenchmarkWorstCase measures "AAA...AB" inputs, where naive search is quadratic.
func BenchmarkWorstCase(b *testing.B) {
	for _, s := range benchSizes {
		text := worstCase(s.size)
		pattern := worstCase(s.size / 100)
		lps := BuildLPS(pattern)
		m, _ := Compile(pattern)

		b.Run(s.name+"/Search", func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				res, _ := Search(pattern, text, lps, ModeCount)
				benchSink = res.Count
			}
		})

		b.Run(s.name+"/Matcher", func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				benchSink = m.Count(text)
			}
		})

		b.Run(s.name+"/bytes.Index", func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				benchSink = bytes.Index(text, pattern)
			}
		})
	}
}

// BenchmarkRandom measures random lowercase text, the average case.
func BenchmarkRandom(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	for _, s := range benchSizes {
		text := randomBytes(r, s.size, "abcdefghijklmnopqrstuvwxyz")
		pattern := randomBytes(r, 16, "abcdefghijklmnopqrstuvwxyz")
		lps := BuildLPS(pattern)
		m, _ := Compile(pattern)

		b.Run(s.name+"/Search", func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				res, _ := Search(pattern, text, lps, ModeCount)
				benchSink = res.Count
			}
		})

		b.Run(s.name+"/Matcher", func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				benchSink = m.Count(text)
			}
		})
	}
}

func BenchmarkLocateOverlapping(b *testing.B) {
	s := MustSearcher("aa")
	hay := strings.Repeat("a", 64*1024)
	b.SetBytes(int64(len(hay)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = len(s.Locate(hay))
	}
}

func BenchmarkBuildLPS(b *testing.B) {
	for _, n := range []int{16, 1024, 64 * 1024} {
		pattern := worstCase(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				benchSink = BuildLPS(pattern)[n-1]
			}
		})
	}
}
