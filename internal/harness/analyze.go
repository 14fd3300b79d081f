package harness

import "slices"

// Thresholds used by the report verdict.
const (
	LinearTolerance = 0.15
	MinR2           = 0.95
)

// Growth summarizes how one case's mean time scales with input size.
// Each ratio is (t[i]/t[i-1]) / (size[i]/size[i-1]); a linear matcher keeps
// them near 1. Slope, Intercept and R2 describe the least-squares line of
// mean time (seconds) against n+m.
type Growth struct {
	Case      Case      `yaml:"case"`
	Ratios    []float64 `yaml:"ratios"`
	MeanRatio float64   `yaml:"mean_ratio"`
	StdRatio  float64   `yaml:"std_ratio"`
	Slope     float64   `yaml:"slope"`
	Intercept float64   `yaml:"intercept"`
	R2        float64   `yaml:"r2"`
}

// Linear reports whether the fit explains at least MinR2 of the variance and
// the mean ratio lies within tol of 1.
func (g Growth) Linear(tol float64) bool {
	return len(g.Ratios) > 0 && g.R2 >= MinR2 &&
		g.MeanRatio >= 1-tol && g.MeanRatio <= 1+tol
}

// GrowthByCase computes a Growth per case present in ms, in AllCases order.
// Measurements with a zero mean are skipped.
func GrowthByCase(ms []Measurement) []Growth {
	var out []Growth
	for _, c := range AllCases {
		var rows []Measurement
		for _, m := range ms {
			if m.Case == c && m.Mean > 0 && m.Size() > 0 {
				rows = append(rows, m)
			}
		}
		if len(rows) == 0 {
			continue
		}
		slices.SortStableFunc(rows, func(a, b Measurement) int {
			return a.Size() - b.Size()
		})

		g := Growth{Case: c}
		xs := make([]float64, len(rows))
		ys := make([]float64, len(rows))
		for i, m := range rows {
			xs[i], ys[i] = float64(m.Size()), m.Mean
		}
		g.Slope, g.Intercept, g.R2 = LinearFit(xs, ys)
		for i := 1; i < len(rows); i++ {
			timeRatio := rows[i].Mean / rows[i-1].Mean
			sizeRatio := float64(rows[i].Size()) / float64(rows[i-1].Size())
			g.Ratios = append(g.Ratios, timeRatio/sizeRatio)
		}
		g.MeanRatio = Mean(g.Ratios)
		g.StdRatio = StdDev(g.Ratios)
		out = append(out, g)
	}
	return out
}

// CaseDiff compares the worst and best case at one text size.
type CaseDiff struct {
	TextLen     int     `yaml:"text"`
	Best        float64 `yaml:"best"`
	Worst       float64 `yaml:"worst"`
	DiffPercent float64 `yaml:"diff_percent"`
}

// CompareCases pairs best and worst measurements by text size, in
// increasing size order. Sizes missing either case are skipped.
func CompareCases(ms []Measurement) []CaseDiff {
	best := make(map[int]float64)
	worst := make(map[int]float64)
	for _, m := range ms {
		switch m.Case {
		case CaseBest:
			best[m.TextLen] = m.Mean
		case CaseWorst:
			worst[m.TextLen] = m.Mean
		}
	}

	var out []CaseDiff
	for n, b := range best {
		w, ok := worst[n]
		if !ok || b == 0 {
			continue
		}
		out = append(out, CaseDiff{
			TextLen:     n,
			Best:        b,
			Worst:       w,
			DiffPercent: (w - b) / b * 100,
		})
	}
	slices.SortFunc(out, func(a, b CaseDiff) int {
		return a.TextLen - b.TextLen
	})
	return out
}
