package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/euchre/internal/deck"
	"github.com/lox/euchre/internal/randutil"
)

func TestNewDealConservesDeck(t *testing.T) {
	rng := randutil.New(1)
	for i := range 200 {
		dealer := Seat(i % NumSeats)
		d, err := NewDeal(rng, dealer)
		require.NoError(t, err)

		seen := make(map[deck.Card]bool)
		for seat := range Seat(NumSeats) {
			hand := d.Hand(seat)
			require.Len(t, hand, HandSize)
			for _, c := range hand {
				require.False(t, seen[c], "duplicate %s", c)
				seen[c] = true
			}
		}
		kitty, up := d.Kitty()
		require.True(t, up)
		require.False(t, seen[kitty])
		seen[kitty] = true
		for _, c := range d.Undealt() {
			require.False(t, seen[c])
			seen[c] = true
		}
		assert.Len(t, seen, deck.Size)
	}
}

func TestNewDealInitialState(t *testing.T) {
	d := scenarioDeal()

	assert.Equal(t, Seat(3), d.Dealer())
	assert.Equal(t, Seat(0), d.Leader())
	assert.Equal(t, Seat(0), d.Bidder())
	assert.Equal(t, 1, d.Round())
	assert.Equal(t, 4, d.TurnsLeft())
	assert.Equal(t, deck.NoSuit, d.Trump())
	assert.Equal(t, NoSeat, d.Caller())
	assert.Empty(t, d.Trick())
	assert.Equal(t, PhaseBidding, d.Phase())
	assert.Equal(t, [NumSeats]int{5, 5, 5, 5}, d.DealtSizes())
	assert.Equal(t, cards("JhAhKsQs9c"), d.Hand(0))
	assert.Equal(t, cards("9sTsAdKdTd"), d.Hand(3))

	kitty, up := d.Kitty()
	assert.True(t, up)
	assert.Equal(t, card("9h"), kitty)
	assert.ElementsMatch(t, cards("9dJcQc"), d.Undealt())
}

func TestNewDealRequiresRNGOrDeck(t *testing.T) {
	assert.Panics(t, func() { _, _ = NewDeal(nil, 0) })
	assert.Panics(t, func() { _, _ = NewDeal(randutil.New(1), 4) })
}

func TestLoneDeal(t *testing.T) {
	t.Run("partner is dealt out", func(t *testing.T) {
		d, err := NewDeal(randutil.New(5), 3, WithLoneSeat(0))
		require.NoError(t, err)

		assert.Equal(t, [NumSeats]int{5, 5, 0, 5}, d.DealtSizes())
		assert.False(t, d.Active(2))
		assert.Len(t, d.Undealt(), 8)
		assert.Equal(t, 3, d.activeCount())
	})

	t.Run("partner cannot be dealer", func(t *testing.T) {
		_, err := NewDeal(randutil.New(5), 2, WithLoneSeat(0))
		assert.ErrorIs(t, err, ErrInvalidLoneSeat)
	})

	t.Run("invalid seat", func(t *testing.T) {
		_, err := NewDeal(randutil.New(5), 2, WithLoneSeat(7))
		assert.ErrorIs(t, err, ErrInvalidSeat)
	})
}

func TestLoneChance(t *testing.T) {
	t.Run("certain chance always deals a lone hand", func(t *testing.T) {
		rng := randutil.New(11)
		for i := range 40 {
			dealer := Seat(i % NumSeats)
			d, err := NewDeal(rng, dealer, WithLoneChance(1))
			require.NoError(t, err)

			sizes := d.DealtSizes()
			out := NoSeat
			for seat := range Seat(NumSeats) {
				if sizes[seat] == 0 {
					require.Equal(t, NoSeat, out, "only one seat sits out")
					out = seat
				}
			}
			require.True(t, out.Valid())
			assert.NotEqual(t, dealer, out, "the dealer never sits out")
			assert.Len(t, d.Undealt(), 8)
		}
	})

	t.Run("zero chance deals normally", func(t *testing.T) {
		d, err := NewDeal(randutil.New(11), 1, WithLoneChance(0))
		require.NoError(t, err)
		assert.Equal(t, [NumSeats]int{5, 5, 5, 5}, d.DealtSizes())
	})

	t.Run("explicit lone seat wins", func(t *testing.T) {
		d, err := NewDeal(randutil.New(11), 3, WithLoneChance(1), WithLoneSeat(0))
		require.NoError(t, err)
		assert.Equal(t, [NumSeats]int{5, 5, 0, 5}, d.DealtSizes())
	})
}

func TestPlayOutConservesDeck(t *testing.T) {
	// Play many random deals to completion by always passing and playing the
	// first legal card; the deal panics if a card is lost or duplicated.
	rng := randutil.New(9)
	for i := range 100 {
		d, err := NewDeal(rng, Seat(i%NumSeats))
		require.NoError(t, err)
		for d.Phase() == PhaseBidding {
			require.NoError(t, d.Pass(d.Bidder()))
		}
		require.True(t, d.Forced())
		for d.Phase() == PhasePlaying {
			seat := d.ToAct()
			_, err := d.PlayCard(seat, d.LegalPlays(seat)[0])
			require.NoError(t, err)
		}
		require.True(t, d.Complete())

		total := 0
		for _, n := range d.Tricks() {
			total += n
		}
		assert.Equal(t, HandSize, total)
		assert.Len(t, d.cards(), deck.Size)
	}
}
