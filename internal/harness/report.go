package harness

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
	"gopkg.in/yaml.v3"
)

// Host describes the machine a report was produced on.
type Host struct {
	GOOS     string   `yaml:"goos"`
	GOARCH   string   `yaml:"goarch"`
	CPUs     int      `yaml:"cpus"`
	Features []string `yaml:"features,omitempty"`
}

// DetectHost reports the running platform and its SIMD features.
func DetectHost() Host {
	h := Host{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		CPUs:   runtime.NumCPU(),
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		for _, f := range []struct {
			name string
			has  bool
		}{
			{"sse4.1", cpu.X86.HasSSE41},
			{"sse4.2", cpu.X86.HasSSE42},
			{"popcnt", cpu.X86.HasPOPCNT},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"bmi2", cpu.X86.HasBMI2},
		} {
			if f.has {
				h.Features = append(h.Features, f.name)
			}
		}
	case "arm64":
		for _, f := range []struct {
			name string
			has  bool
		}{
			{"asimd", cpu.ARM64.HasASIMD},
			{"aes", cpu.ARM64.HasAES},
			{"crc32", cpu.ARM64.HasCRC32},
			{"atomics", cpu.ARM64.HasATOMICS},
		} {
			if f.has {
				h.Features = append(h.Features, f.name)
			}
		}
	}
	return h
}

func (h Host) String() string {
	s := fmt.Sprintf("%s/%s cpus=%d", h.GOOS, h.GOARCH, h.CPUs)
	if len(h.Features) > 0 {
		s += " features=" + strings.Join(h.Features, ",")
	}
	return s
}

// Report is everything a run produces.
type Report struct {
	Host         Host          `yaml:"host"`
	Seed         int64         `yaml:"seed"`
	Measurements []Measurement `yaml:"measurements"`
	Growth       []Growth      `yaml:"growth,omitempty"`
	Cases        []CaseDiff    `yaml:"cases,omitempty"`
}

// NewReport analyzes ms and bundles it with the host description.
func NewReport(host Host, seed int64, ms []Measurement) Report {
	return Report{
		Host:         host,
		Seed:         seed,
		Measurements: ms,
		Growth:       GrowthByCase(ms),
		Cases:        CompareCases(ms),
	}
}

const (
	wideRule   = "=================================================="
	narrowRule = "=========================================="
)

// WriteText renders r in the fixed block format, one block per measurement,
// followed by the analysis tables.
func WriteText(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, wideRule)
	fmt.Fprintln(bw, "KMP PERFORMANCE TESTS (Go)")
	fmt.Fprintf(bw, "HOST: %s\n", r.Host)
	fmt.Fprintf(bw, "SEED: %d\n", r.Seed)
	fmt.Fprintln(bw, wideRule)

	for _, m := range r.Measurements {
		writeBlock(bw, m)
	}

	if len(r.Cases) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "WORST vs BEST CASE")
		fmt.Fprintf(bw, "%-12s %-12s %-12s %-12s\n", "n (chars)", "best (s)", "worst (s)", "diff (%)")
		fmt.Fprintln(bw, strings.Repeat("-", 50))
		for _, d := range r.Cases {
			fmt.Fprintf(bw, "%-12d %-12.6f %-12.6f %+.2f%%\n", d.TextLen, d.Best, d.Worst, d.DiffPercent)
		}
	}

	if len(r.Growth) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "GROWTH (normalized time/size ratio, ~1.0 for O(n+m))")
		for _, g := range r.Growth {
			verdict := "deviation from O(n+m)"
			switch {
			case len(g.Ratios) == 0:
				verdict = "not enough sizes"
			case g.Linear(LinearTolerance):
				verdict = "O(n+m) confirmed"
			}
			fmt.Fprintf(bw, "%-8s %.3f ± %.3f over %d steps, R² = %.6f: %s\n",
				g.Case, g.MeanRatio, g.StdRatio, len(g.Ratios), g.R2, verdict)
		}
	}

	return bw.Flush()
}

func writeBlock(w io.Writer, m Measurement) {
	fmt.Fprintf(w, "\n%s\n", narrowRule)
	fmt.Fprintf(w, "CASE: %s\n", m.Case)
	fmt.Fprintf(w, "TEXT = %d\n", m.TextLen)
	fmt.Fprintf(w, "PATTERN = %d\n", m.PatternLen)
	fmt.Fprintf(w, "REPETITIONS = %d\n", m.Repetitions)
	fmt.Fprintf(w, "MEAN: %.6f\n", m.Mean)
	fmt.Fprintf(w, "STDDEV: %.6f\n", m.StdDev)
	fmt.Fprintf(w, "OCCURRENCES: %d\n", m.Occurrences)
	fmt.Fprintf(w, "COMPLEXITY (n+m): %d\n", m.Size())
	fmt.Fprintln(w, narrowRule)
}

// WriteYAML renders r as a YAML document.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// Write renders r in the named format ("text" or "yaml").
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case "", "text":
		return WriteText(w, r)
	case "yaml":
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
