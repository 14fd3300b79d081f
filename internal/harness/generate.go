// Package harness measures the kmp matcher on synthetic inputs and renders
// the results. It depends on kmp only through its counting entry point and
// owns its own random state.
package harness

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
)

// Case selects the shape of generated inputs.
type Case int

const (
	// CaseBest uses a pattern whose first symbol never occurs in the text,
	// so every alignment fails on the first comparison.
	CaseBest Case = iota
	// CaseWorst uses "AAA...AB" for both pattern and text.
	CaseWorst
	// CaseAverage uses random lowercase text and pattern.
	CaseAverage
)

// AllCases lists every case in report order.
var AllCases = []Case{CaseBest, CaseWorst, CaseAverage}

func (c Case) String() string {
	switch c {
	case CaseBest:
		return "best"
	case CaseWorst:
		return "worst"
	case CaseAverage:
		return "average"
	default:
		return fmt.Sprintf("Case(%d)", int(c))
	}
}

// ParseCase parses a case name as printed by String.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "best":
		return CaseBest, nil
	case "worst":
		return CaseWorst, nil
	case "average", "avg", "random":
		return CaseAverage, nil
	default:
		return 0, fmt.Errorf("unknown case %q (use best, worst or average)", s)
	}
}

func (c Case) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Case) UnmarshalText(b []byte) error {
	parsed, err := ParseCase(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

const lowercase = "abcdefghijklmnopqrstuvwxyz"

// absent is a symbol random text never contains.
const absent = 'Z'

// Generator produces inputs from its own seeded source.
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Random returns n random lowercase ASCII letters.
func (g *Generator) Random(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = lowercase[g.rng.Intn(len(lowercase))]
	}
	return b
}

// Repeated returns n-1 copies of fill followed by last.
func Repeated(n int, fill, last byte) []byte {
	if n <= 0 {
		return []byte{}
	}
	b := bytes.Repeat([]byte{fill}, n)
	b[n-1] = last
	return b
}

// Generate returns a pattern and text of the requested lengths shaped by c.
func (g *Generator) Generate(c Case, textLen, patternLen int) (pattern, text []byte, err error) {
	if textLen < 1 || patternLen < 1 {
		return nil, nil, fmt.Errorf("lengths must be positive (text=%d, pattern=%d)", textLen, patternLen)
	}

	switch c {
	case CaseBest:
		text = g.Random(textLen)
		pattern = g.Random(patternLen)
		pattern[0] = absent
	case CaseWorst:
		text = Repeated(textLen, 'A', 'B')
		pattern = Repeated(patternLen, 'A', 'B')
	case CaseAverage:
		text = g.Random(textLen)
		pattern = g.Random(patternLen)
	default:
		return nil, nil, fmt.Errorf("unknown case %d", int(c))
	}
	return pattern, text, nil
}
