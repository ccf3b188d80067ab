package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerhands/pkg/deck"
)

func TestToReferenceCard(t *testing.T) {
	a := assert.New(t)
	seen := make(map[interface{}]bool)
	for _, card := range deck.New().Cards {
		c, err := toReferenceCard(card)
		a.NoError(err, card.String())
		seen[c] = true
	}
	a.Equal(52, len(seen))

	_, err := toReferenceCard(nil)
	a.Equal(ErrMissingCard, err)

	_, err = toReferenceCard(&deck.Card{Rank: 2, Suit: "stars"})
	a.EqualError(err, "unknown suit: stars")
}

func TestDescribe_missingCard(t *testing.T) {
	_, err := Describe(deck.Hand{deck.CardFromString("AS"), nil})
	assert.Equal(t, ErrMissingCard, err)
}
