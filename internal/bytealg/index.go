package bytealg

import "bytes"

// IndexAligned returns the smallest s >= from such that haystack[s+off] == b,
// or -1 if there is none. Callers use it to jump to the next start position
// that can possibly hold a match whose byte at off is b.
func IndexAligned(haystack []byte, from, off int, b byte) int {
	if from < 0 || off < 0 {
		return -1
	}
	at := from + off
	if at >= len(haystack) {
		return -1
	}
	idx := bytes.IndexByte(haystack[at:], b)
	if idx < 0 {
		return -1
	}
	return from + idx
}
