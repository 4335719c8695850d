package stats

import "math"

// rate divides with a denominator floor of one so empty windows come out
// as zero instead of NaN or Inf.
func rate(num, den float64) float64 {
	return num / math.Max(1, den)
}

// clamp pins v into [lo, hi]. Radar dimensions are clamped to 0..100,
// except bowling economy which uses 0..6.
func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
