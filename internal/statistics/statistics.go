package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/partybingo/internal/bingo"
)

// RoundResult represents the outcome of a single simulated round
type RoundResult struct {
	Seed         int64          // RNG seed for this round (for replay)
	Players      int            // Cards in play
	DrawsToBingo int            // Draws made when the first line completed
	Winners      int            // Players holding a line at that draw
	FirstLine    bingo.LineKind // Kind of the first winning line found
}

// Statistics tracks draws-until-bingo across simulated rounds
type Statistics struct {
	Rounds int
	Sum    float64
	SumSq  float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	MinDraws int
	MaxDraws int

	SharedWins int    // Rounds where more than one player won on the same draw
	LineWins   [3]int // First winning line, indexed by bingo.LineKind
}

// Mean returns the average number of draws until the first bingo
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.Sum / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	draws := result.DrawsToBingo
	v := float64(draws)

	if s.Rounds == 0 || draws < s.MinDraws {
		s.MinDraws = draws
	}
	if draws > s.MaxDraws {
		s.MaxDraws = draws
	}

	s.Rounds++
	s.Sum += v
	s.SumSq += v * v
	s.Values = append(s.Values, v)

	if result.Winners > 1 {
		s.SharedWins++
	}
	if k := int(result.FirstLine); k >= 0 && k < len(s.LineWins) {
		s.LineWins[k]++
	}
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// LineShare returns the fraction of rounds first won on a line of kind k
func (s *Statistics) LineShare(k bingo.LineKind) float64 {
	if s.Rounds == 0 || int(k) < 0 || int(k) >= len(s.LineWins) {
		return 0
	}
	return float64(s.LineWins[k]) / float64(s.Rounds)
}

// Validate performs consistency checks on the collected data
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)",
			len(s.Values), s.Rounds)
	}

	total := 0
	for _, n := range s.LineWins {
		total += n
	}
	if total != s.Rounds {
		return fmt.Errorf("line wins total (%d) does not match rounds count (%d)", total, s.Rounds)
	}

	// A line needs at least five called items.
	if s.MinDraws < bingo.Size {
		return fmt.Errorf("minimum draws (%d) is below line length %d", s.MinDraws, bingo.Size)
	}

	return nil
}
