package deck

import "sort"

// Weights assigned to the bowers by Weight.
const (
	RightBowerWeight = 100
	LeftBowerWeight  = 90
	trumpBase        = 20
	leadBase         = 10
)

// SameColor reports whether two suits share a colour.
func SameColor(a, b Suit) bool {
	return a.IsRed() == b.IsRed()
}

// IsRightBower reports whether c is the jack of the trump suit.
func IsRightBower(c Card, trump Suit) bool {
	return trump.Valid() && c.Rank == Jack && c.Suit == trump
}

// IsLeftBower reports whether c is the jack of the other suit of trump's colour.
func IsLeftBower(c Card, trump Suit) bool {
	return trump.Valid() && c.Rank == Jack && c.Suit != trump && SameColor(c.Suit, trump)
}

// EffectiveSuit returns the suit c belongs to once trump is known. Both bowers
// count as trump; every other card keeps its printed suit.
func EffectiveSuit(c Card, trump Suit) Suit {
	if IsRightBower(c, trump) || IsLeftBower(c, trump) {
		return trump
	}
	return c.Suit
}

// Weight orders cards within a single trick. Higher wins. Cards that neither
// follow lead nor are trump weigh zero and can never take the trick.
func Weight(c Card, lead, trump Suit) int {
	switch {
	case IsRightBower(c, trump):
		return RightBowerWeight
	case IsLeftBower(c, trump):
		return LeftBowerWeight
	}

	eff := EffectiveSuit(c, trump)
	if trump.Valid() && eff == trump {
		return trumpBase + int(c.Rank)
	}
	if lead.Valid() && eff == lead {
		return leadBase + int(c.Rank)
	}
	return 0
}

// CountSuit counts the cards in hand whose effective suit is suit when suit is trump.
func CountSuit(hand []Card, suit Suit) int {
	n := 0
	for _, c := range hand {
		if EffectiveSuit(c, suit) == suit {
			n++
		}
	}
	return n
}

// Sort orders a hand for display: trump first (bowers on top), then the
// remaining suits in canonical order, high cards first within each suit.
func Sort(cards []Card, trump Suit) {
	suitOrder := func(c Card) int {
		eff := EffectiveSuit(c, trump)
		if trump.Valid() && eff == trump {
			return 0
		}
		return int(eff)
	}
	sort.SliceStable(cards, func(i, j int) bool {
		oi, oj := suitOrder(cards[i]), suitOrder(cards[j])
		if oi != oj {
			return oi < oj
		}
		lead := EffectiveSuit(cards[i], trump)
		return Weight(cards[i], lead, trump) > Weight(cards[j], lead, trump)
	})
}
