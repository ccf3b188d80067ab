package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := CardsFromString("2c,3c,4d")
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_IndexOf(t *testing.T) {
	hand := CardsFromString("2c,3c,4d")
	assert.Equal(t, 1, hand.IndexOf(hand[1]))
	assert.Equal(t, -1, hand.IndexOf(CardFromString("3c")))
	assert.Equal(t, -1, hand.IndexOf(nil))
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "14s,3c", CardsToString(h))
	assert.Equal(t, "14s", CardToString(h.FirstCard()))
}

func TestHand_Clone(t *testing.T) {
	h := CardsFromString("2c,3c")
	h2 := h.Clone()
	h2[0] = CardFromString("14s")
	assert.Equal(t, "2c,3c", h.String())
	assert.Nil(t, Hand{}.FirstCard())
}
