package poker

import "errors"

// ErrInvalidHandSize is returned when a hand does not have exactly five cards
var ErrInvalidHandSize = errors.New("invalid hand size")

// ErrMissingCard is returned when a hand contains a nil card
var ErrMissingCard = errors.New("hand is missing a card")

// ErrCardNotFound is returned when a card to replace is not in the hand
var ErrCardNotFound = errors.New("card not found in hand")
