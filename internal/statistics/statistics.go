// Package statistics aggregates repeated estimate trials so convergence can
// be reported (and asserted in tests) with proper error bars.
package statistics

import (
	"math"
	"sort"
)

// Trial is one seeded search run compared against the ground-truth table.
type Trial struct {
	Estimate    float64
	GroundTruth float64
	Iterations  int
	Seed        int64 // RNG seed for this trial (for replay)
}

// AbsError returns the absolute deviation from ground truth.
func (t Trial) AbsError() float64 {
	return math.Abs(t.Estimate - t.GroundTruth)
}

// Summary accumulates a sample of values (typically absolute errors or raw
// estimates) and reports its moments.
type Summary struct {
	N      int
	Sum    float64
	Sum2   float64 // Sum of squares for variance calculation
	Values []float64
}

// Add incorporates one value into the summary.
func (s *Summary) Add(v float64) {
	s.N++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean of the sample.
func (s *Summary) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance.
func (s *Summary) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.N)*mean*mean) / float64(s.N-1)
}

// StdDev returns the sample standard deviation.
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Summary) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Summary) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median of the sample.
func (s *Summary) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Max returns the largest value in the sample.
func (s *Summary) Max() float64 {
	max := math.Inf(-1)
	for _, v := range s.Values {
		if v > max {
			max = v
		}
	}
	if s.N == 0 {
		return 0
	}
	return max
}
