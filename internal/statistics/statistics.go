package statistics

import (
	"fmt"
	"math"
	"sort"
)

// TeamTally counts how one team's points were earned in a match
type TeamTally struct {
	Calls       int // Hands where the team named trump
	Made        int // 1 point: makers took 3 or 4 tricks
	Marches     int // 2 points: makers took all 5
	LoneMarches int // 4 points: a lone caller took all 5
	Euchres     int // 2 points: defenders stopped the makers
	LoneEuchres int // 4 points: a lone defender stopped the makers
}

// Points returns the points the tally is worth.
func (t TeamTally) Points() int {
	return t.Made + 2*t.Marches + 4*t.LoneMarches + 2*t.Euchres + 4*t.LoneEuchres
}

func (t *TeamTally) add(o TeamTally) {
	t.Calls += o.Calls
	t.Made += o.Made
	t.Marches += o.Marches
	t.LoneMarches += o.LoneMarches
	t.Euchres += o.Euchres
	t.LoneEuchres += o.LoneEuchres
}

// MatchResult represents the outcome of a single simulated match
type MatchResult struct {
	Seed   int64        // RNG seed for this match (for replay)
	Winner int          // Winning team, 0 or 1
	Scores [2]int       // Final team scores
	Hands  int          // Hands dealt
	Teams  [2]TeamTally // How each team scored
}

// Differential returns team 0's winning margin (negative when it lost).
func (r MatchResult) Differential() float64 {
	return float64(r.Scores[0] - r.Scores[1])
}

// TeamStats aggregates one team's results across matches
type TeamStats struct {
	Wins   int
	Points int
	TeamTally
}

// Statistics tracks match simulation statistics from team 0's point of view
type Statistics struct {
	Matches  int
	Hands    int
	SumDiff  float64
	SumDiff2 float64   // Sum of squares for variance calculation
	Values   []float64 // Store all differentials for median/percentile calculation

	Teams [2]TeamStats

	LongestMatch  int // Most hands in a single match
	ShortestMatch int // Fewest hands in a single match
}

// Mean returns team 0's mean point differential per match
func (s *Statistics) Mean() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.SumDiff / float64(s.Matches)
}

// Variance returns the sample variance of the differentials
func (s *Statistics) Variance() float64 {
	if s.Matches < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumDiff2 - float64(s.Matches)*mean*mean) / float64(s.Matches-1)
}

// StdDev returns the sample standard deviation of the differentials
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Matches))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the fraction of matches the team won
func (s *Statistics) WinRate(team int) float64 {
	if s.Matches == 0 || team < 0 || team > 1 {
		return 0
	}
	return float64(s.Teams[team].Wins) / float64(s.Matches)
}

// AverageHands returns the mean number of hands per match
func (s *Statistics) AverageHands() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.Hands) / float64(s.Matches)
}

// Add incorporates a match result into the statistics
func (s *Statistics) Add(result MatchResult) {
	diff := result.Differential()
	s.Matches++
	s.Hands += result.Hands
	s.SumDiff += diff
	s.SumDiff2 += diff * diff
	s.Values = append(s.Values, diff)

	if result.Winner == 0 || result.Winner == 1 {
		s.Teams[result.Winner].Wins++
	}
	for team := range s.Teams {
		s.Teams[team].Points += result.Scores[team]
		s.Teams[team].TeamTally.add(result.Teams[team])
	}

	if result.Hands > s.LongestMatch {
		s.LongestMatch = result.Hands
	}
	if s.ShortestMatch == 0 || result.Hands < s.ShortestMatch {
		s.ShortestMatch = result.Hands
	}
}

// Median returns the median differential
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the differential at the given percentile (0.0 to 1.0)
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

// IsLedgerBalanced checks that every point scored is explained by a hand result
func (s *Statistics) IsLedgerBalanced() bool {
	for _, team := range s.Teams {
		if team.Points != team.TeamTally.Points() {
			return false
		}
	}
	return true
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if s.Matches <= 0 {
		return fmt.Errorf("invalid match count: %d", s.Matches)
	}

	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: team points %d/%d, tallied %d/%d",
			s.Teams[0].Points, s.Teams[1].Points,
			s.Teams[0].TeamTally.Points(), s.Teams[1].TeamTally.Points())
	}

	if len(s.Values) != s.Matches {
		return fmt.Errorf("values array length (%d) does not match match count (%d)",
			len(s.Values), s.Matches)
	}

	if wins := s.Teams[0].Wins + s.Teams[1].Wins; wins != s.Matches {
		return fmt.Errorf("total wins (%d) does not match match count (%d)", wins, s.Matches)
	}

	// Every hand is called by exactly one team.
	if calls := s.Teams[0].Calls + s.Teams[1].Calls; calls != s.Hands {
		return fmt.Errorf("trump calls (%d) do not match hands played (%d)", calls, s.Hands)
	}

	return nil
}
