package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBowerReclassification(t *testing.T) {
	right := NewCard(Hearts, Jack)
	left := NewCard(Diamonds, Jack)
	ace := NewCard(Hearts, Ace)

	assert.Equal(t, Hearts, EffectiveSuit(left, Hearts))
	assert.Equal(t, Hearts, EffectiveSuit(right, Hearts))
	assert.Equal(t, Diamonds, EffectiveSuit(left, Spades), "jack of another colour keeps its suit")

	assert.Equal(t, 100, Weight(right, Hearts, Hearts))
	assert.Equal(t, 90, Weight(left, Hearts, Hearts))
	assert.Equal(t, 26, Weight(ace, Hearts, Hearts))
	assert.Greater(t, Weight(left, Clubs, Hearts), Weight(ace, Clubs, Hearts))
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name  string
		card  string
		lead  Suit
		trump Suit
		want  int
	}{
		{"nine of trump", "9s", Hearts, Spades, 21},
		{"left bower black", "Jc", Hearts, Spades, 90},
		{"ace of lead", "Ah", Hearts, Spades, 16},
		{"nine of lead", "9h", Hearts, Spades, 11},
		{"off suit", "Ad", Hearts, Spades, 0},
		{"jack of lead is not a bower", "Jh", Hearts, Spades, 13},
		{"no lead, not trump", "Ad", NoSuit, Spades, 0},
		{"no trump yet", "Jh", Hearts, NoSuit, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := MustParseCards(tt.card)[0]
			assert.Equal(t, tt.want, Weight(card, tt.lead, tt.trump))
		})
	}
}

func TestWeightIsStrictWithinTrick(t *testing.T) {
	// Every distinct card that can win a trick has a distinct weight.
	for _, trump := range Suits {
		for _, lead := range Suits {
			seen := map[int]Card{}
			for _, c := range Build() {
				w := Weight(c, lead, trump)
				if w == 0 {
					continue
				}
				prev, dup := seen[w]
				assert.False(t, dup, "trump %s lead %s: %s and %s share weight %d", trump, lead, prev, c, w)
				seen[w] = c
			}
		}
	}
}

func TestCountSuit(t *testing.T) {
	hand := MustParseCards("JdAh9hKsQc")
	assert.Equal(t, 3, CountSuit(hand, Hearts))
	assert.Equal(t, 1, CountSuit(hand, Diamonds), "the jack of diamonds is the right bower")
	assert.Equal(t, 1, CountSuit(hand, Spades))
}

func TestSort(t *testing.T) {
	hand := MustParseCards("9cAhJdKsJh")
	Sort(hand, Hearts)
	assert.Equal(t, MustParseCards("JhJdAhKs9c")[:3], hand[:3])
}
