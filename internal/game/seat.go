package game

import "fmt"

// NumSeats is the number of seats at a euchre table.
const NumSeats = 4

// Seat identifies a position at the table, 0-3. Seat 0 is the human by convention.
type Seat int

// NoSeat marks an unset seat, e.g. before anyone has called trump.
const NoSeat Seat = -1

// Next returns the seat to the left.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return (s + 2) % NumSeats
}

// Team returns the team the seat plays for.
func (s Seat) Team() Team {
	return Team(s % 2)
}

// Valid reports whether s is a real seat.
func (s Seat) Valid() bool {
	return s >= 0 && s < NumSeats
}

func (s Seat) String() string {
	if !s.Valid() {
		return "nobody"
	}
	return fmt.Sprintf("Seat %d", int(s))
}

// Team is one of the two partnerships: seats {0,2} or {1,3}.
type Team int

// Other returns the opposing team.
func (t Team) Other() Team {
	return 1 - t
}

// Seats returns both seats on the team.
func (t Team) Seats() [2]Seat {
	return [2]Seat{Seat(t), Seat(t) + 2}
}

func (t Team) String() string {
	return fmt.Sprintf("Team %d", int(t)+1)
}
