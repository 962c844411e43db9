package game

// WinningScore is the number of points that wins a match.
const WinningScore = 10

// Match keeps the running team scores across hands.
type Match struct {
	scores  [2]int
	history []HandScore
}

// NewMatch starts a match at 0-0.
func NewMatch() *Match {
	return &Match{}
}

// Apply adds a scored hand to the match.
func (m *Match) Apply(s HandScore) {
	if m.Over() {
		panic("applying a hand to a finished match")
	}
	m.scores[s.Team] += s.Points
	m.history = append(m.history, s)
}

// Scores returns the points for each team.
func (m *Match) Scores() [2]int { return m.scores }

// Hands returns how many hands have been scored.
func (m *Match) Hands() int { return len(m.history) }

// History returns every scored hand in order.
func (m *Match) History() []HandScore {
	return append([]HandScore(nil), m.history...)
}

// Winner returns the team that has reached WinningScore.
func (m *Match) Winner() (Team, bool) {
	for t, score := range m.scores {
		if score >= WinningScore {
			return Team(t), true
		}
	}
	return 0, false
}

// Over reports whether a team has won.
func (m *Match) Over() bool {
	_, over := m.Winner()
	return over
}
