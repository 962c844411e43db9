package game

import "errors"

// Rejections returned by commands. A command that returns one of these has
// left the deal and match exactly as they were.
var (
	ErrNoDeal             = errors.New("no hand has been dealt")
	ErrMatchOver          = errors.New("match is over")
	ErrBiddingClosed      = errors.New("bidding is closed")
	ErrWrongRound         = errors.New("not available in this bidding round")
	ErrNotYourTurn        = errors.New("not this seat's turn")
	ErrSuitTurnedDown     = errors.New("suit was turned down")
	ErrInvalidSuit        = errors.New("invalid suit")
	ErrSittingOut         = errors.New("seat is sitting out this hand")
	ErrNotAwaitingDiscard = errors.New("dealer is not waiting to discard")
	ErrAwaitingDiscard    = errors.New("waiting for the dealer to discard")
	ErrNotPlaying         = errors.New("tricks are not being played")
	ErrCardNotInHand      = errors.New("card is not in hand")
	ErrMustFollowSuit     = errors.New("must follow the led suit")
	ErrInvalidSeat        = errors.New("invalid seat")
	ErrInvalidLoneSeat    = errors.New("partner of a lone seat cannot be the dealer")
)
