package poker

import (
	"fmt"

	ph "github.com/paulhankin/poker"
	"pokerhands/pkg/deck"
)

// Describe returns a description of the hand as standard poker rules see it
// This may disagree with the category from Evaluate(). For example, the wheel
// (A-2-3-4-5) is a straight here, but only a high card to Evaluate().
func Describe(hand deck.Hand) (string, error) {
	cards := make([]ph.Card, len(hand))
	for i, card := range hand {
		c, err := toReferenceCard(card)
		if err != nil {
			return "", err
		}

		cards[i] = c
	}

	return ph.Describe(cards)
}

func toReferenceCard(card *deck.Card) (ph.Card, error) {
	var none ph.Card
	if card == nil {
		return none, ErrMissingCard
	}

	var suit ph.Suit
	switch card.Suit {
	case deck.Clubs:
		suit = ph.Club
	case deck.Diamonds:
		suit = ph.Diamond
	case deck.Hearts:
		suit = ph.Heart
	case deck.Spades:
		suit = ph.Spade
	default:
		return none, fmt.Errorf("unknown suit: %s", card.Suit)
	}

	// the library counts an Ace as 1
	rank := ph.Rank(card.Rank)
	if card.Rank == deck.Ace {
		rank = ph.Rank(1)
	}

	return ph.MakeCard(suit, rank)
}
