package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchApply(t *testing.T) {
	m := NewMatch()
	assert.Equal(t, [2]int{0, 0}, m.Scores())
	assert.False(t, m.Over())

	m.Apply(HandScore{Team: 0, Points: 2, Kind: March})
	m.Apply(HandScore{Team: 1, Points: 1, Kind: Made})
	m.Apply(HandScore{Team: 0, Points: 4, Kind: LoneMarch})

	assert.Equal(t, [2]int{6, 1}, m.Scores())
	assert.Equal(t, 3, m.Hands())
	assert.Len(t, m.History(), 3)
	_, over := m.Winner()
	assert.False(t, over)
}

func TestMatchWinner(t *testing.T) {
	m := NewMatch()
	for range 4 {
		m.Apply(HandScore{Team: 1, Points: 2, Kind: Euchre})
	}
	assert.False(t, m.Over())

	m.Apply(HandScore{Team: 1, Points: 4, Kind: LoneMarch})
	winner, over := m.Winner()
	assert.True(t, over)
	assert.Equal(t, Team(1), winner)
	assert.Equal(t, 12, m.Scores()[1], "scores can pass ten")

	assert.Panics(t, func() { m.Apply(HandScore{Team: 0, Points: 1}) })
}

func TestMatchHistoryIsCopy(t *testing.T) {
	m := NewMatch()
	m.Apply(HandScore{Team: 0, Points: 1})
	h := m.History()
	h[0].Points = 99
	assert.Equal(t, 1, m.History()[0].Points)
}

func TestTeamsAndSeats(t *testing.T) {
	assert.Equal(t, Team(0), Seat(0).Team())
	assert.Equal(t, Team(0), Seat(2).Team())
	assert.Equal(t, Team(1), Seat(3).Team())
	assert.Equal(t, Seat(2), Seat(0).Partner())
	assert.Equal(t, Seat(0), Seat(3).Next())
	assert.Equal(t, [2]Seat{1, 3}, Team(1).Seats())
	assert.Equal(t, Team(0), Team(1).Other())
	assert.Equal(t, "Seat 2", Seat(2).String())
	assert.Equal(t, "Team 1", Team(0).String())
	assert.Equal(t, "nobody", NoSeat.String())
}
