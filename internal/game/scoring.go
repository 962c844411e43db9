package game

import "fmt"

// ScoreKind names how a hand was scored.
type ScoreKind int

const (
	Made ScoreKind = iota
	March
	LoneMarch
	Euchre
	LoneEuchre
)

func (k ScoreKind) String() string {
	switch k {
	case Made:
		return "made"
	case March:
		return "march"
	case LoneMarch:
		return "lone march"
	case Euchre:
		return "euchre"
	case LoneEuchre:
		return "lone euchre"
	default:
		return "unknown"
	}
}

// Outcome is what scoring needs to know about a finished deal.
type Outcome struct {
	Caller Seat
	Tricks [NumSeats]int
	Dealt  [NumSeats]int
}

// HandScore is the result of scoring one hand: Points go to Team.
type HandScore struct {
	Team           Team
	Points         int
	Kind           ScoreKind
	Maker          Team
	MakerTricks    int
	DefenderTricks int
}

// IsLone reports whether seat played alone: dealt a full hand while its
// partner was dealt nothing.
func IsLone(seat Seat, dealt [NumSeats]int) bool {
	return dealt[seat] == HandSize && dealt[seat.Partner()] == 0
}

func teamLone(t Team, dealt [NumSeats]int) bool {
	for _, seat := range t.Seats() {
		if IsLone(seat, dealt) {
			return true
		}
	}
	return false
}

// ScoreHand applies the scoring table to a finished deal.
func ScoreHand(o Outcome) HandScore {
	if !o.Caller.Valid() {
		panic("scoring a hand without a trump caller")
	}

	maker := o.Caller.Team()
	defender := maker.Other()
	score := HandScore{Maker: maker}
	for _, seat := range maker.Seats() {
		score.MakerTricks += o.Tricks[seat]
	}
	for _, seat := range defender.Seats() {
		score.DefenderTricks += o.Tricks[seat]
	}
	if total := score.MakerTricks + score.DefenderTricks; total != HandSize {
		panic(fmt.Sprintf("scoring a hand with %d tricks played", total))
	}

	switch {
	case score.MakerTricks == HandSize && IsLone(o.Caller, o.Dealt):
		score.Team, score.Points, score.Kind = maker, 4, LoneMarch
	case score.MakerTricks == HandSize:
		score.Team, score.Points, score.Kind = maker, 2, March
	case score.MakerTricks >= 3:
		score.Team, score.Points, score.Kind = maker, 1, Made
	case teamLone(defender, o.Dealt):
		score.Team, score.Points, score.Kind = defender, 4, LoneEuchre
	default:
		score.Team, score.Points, score.Kind = defender, 2, Euchre
	}
	return score
}
