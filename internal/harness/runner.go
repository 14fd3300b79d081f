package harness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mhr3/kmp/kmp"
)

// Experiment is one row of the size table.
type Experiment struct {
	TextLen    int `yaml:"text"`
	PatternLen int `yaml:"pattern"`
}

// Measurement is the timing of one experiment under one case.
// Durations are in seconds.
type Measurement struct {
	Case        Case    `yaml:"case"`
	TextLen     int     `yaml:"text"`
	PatternLen  int     `yaml:"pattern"`
	Repetitions int     `yaml:"repetitions"`
	Mean        float64 `yaml:"mean"`
	StdDev      float64 `yaml:"stddev"`
	Occurrences int     `yaml:"occurrences"`
}

// Size is n+m, the input size the matcher is linear in.
func (m Measurement) Size() int {
	return m.TextLen + m.PatternLen
}

// CountFunc counts occurrences of pattern in text.
type CountFunc func(pattern, text []byte) (int, error)

// Runner times repeated calls of a CountFunc on generated inputs.
type Runner struct {
	gen    *Generator
	reps   int
	count  CountFunc
	logger *slog.Logger
	now    func() time.Time
}

// NewRunner returns a Runner timing kmp.Count. A nil logger discards logs.
func NewRunner(gen *Generator, repetitions int, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(discardHandler{})
	}
	return &Runner{
		gen:    gen,
		reps:   repetitions,
		count:  kmp.Count[byte],
		logger: logger,
		now:    time.Now,
	}
}

// WithCount replaces the function under measurement. Tests use it to time
// a fake with a known cost.
func (r *Runner) WithCount(fn CountFunc) *Runner {
	r.count = fn
	return r
}

// Measure generates inputs once and times reps calls on them. The
// occurrence count is taken from the first call.
func (r *Runner) Measure(ctx context.Context, c Case, e Experiment) (Measurement, error) {
	if r.reps < 1 {
		return Measurement{}, fmt.Errorf("repetitions must be positive, got %d", r.reps)
	}
	pattern, text, err := r.gen.Generate(c, e.TextLen, e.PatternLen)
	if err != nil {
		return Measurement{}, fmt.Errorf("generate %s %d/%d: %w", c, e.TextLen, e.PatternLen, err)
	}

	samples := make([]float64, r.reps)
	occurrences := 0
	for k := range samples {
		if err := ctx.Err(); err != nil {
			return Measurement{}, err
		}
		start := r.now()
		n, err := r.count(pattern, text)
		elapsed := r.now().Sub(start)
		if err != nil {
			return Measurement{}, fmt.Errorf("count %s %d/%d: %w", c, e.TextLen, e.PatternLen, err)
		}
		samples[k] = elapsed.Seconds()
		if k == 0 {
			occurrences = n
		}
	}

	m := Measurement{
		Case:        c,
		TextLen:     e.TextLen,
		PatternLen:  e.PatternLen,
		Repetitions: r.reps,
		Mean:        Mean(samples),
		StdDev:      StdDev(samples),
		Occurrences: occurrences,
	}
	r.logger.Debug("measured",
		slog.String("case", c.String()),
		slog.Int("text", e.TextLen),
		slog.Int("pattern", e.PatternLen),
		slog.Float64("mean", m.Mean),
		slog.Int("occurrences", occurrences))
	return m, nil
}

// Run measures every experiment under every case, experiment-major.
func (r *Runner) Run(ctx context.Context, exps []Experiment, cases []Case) ([]Measurement, error) {
	out := make([]Measurement, 0, len(exps)*len(cases))
	for _, e := range exps {
		for _, c := range cases {
			m, err := r.Measure(ctx, c, e)
			if err != nil {
				return out, err
			}
			out = append(out, m)
		}
		r.logger.Info("experiment done", slog.Int("text", e.TextLen), slog.Int("pattern", e.PatternLen))
	}
	return out, nil
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h discardHandler) WithGroup(string) slog.Handler { return h }
