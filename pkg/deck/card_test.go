package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2♡", card.String())

	card = Card{
		Rank: 11,
		Suit: Clubs,
	}

	assert.Equal(t, "J♣", card.String())

	card = Card{
		Rank: 12,
		Suit: Diamonds,
	}

	assert.Equal(t, "Q♢", card.String())

	card = Card{
		Rank: 13,
		Suit: Spades,
	}

	assert.Equal(t, "K♠", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "A♠", card.String())
}

func TestCard_Value(t *testing.T) {
	a := assert.New(t)
	a.Equal("A", CardFromString("14s").Value())
	a.Equal("10", CardFromString("10d").Value())
	a.Equal("2", CardFromString("2c").Value())
	a.Equal("J", CardFromString("JH").Value())
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	card, err := ParseCard("AS")
	a.NoError(err)
	a.Equal(Ace, card.Rank)
	a.Equal(Spades, card.Suit)
	a.NotEmpty(card.ID)

	card, err = ParseCard("10h")
	a.NoError(err)
	a.Equal(10, card.Rank)
	a.Equal(Hearts, card.Suit)

	card, err = ParseCard(" kd ")
	a.NoError(err)
	a.Equal(King, card.Rank)
	a.Equal(Diamonds, card.Suit)

	for _, s := range []string{"", "1s", "15s", "Ax", "10", "AS,KS"} {
		_, err = ParseCard(s)
		a.True(errors.Is(err, ErrInvalidCard), s)
	}
}

func TestCardFromString(t *testing.T) {
	assert.Nil(t, CardFromString(""))
	assert.PanicsWithValue(t, `could not parse card: invalid card: "zz"`, func() {
		CardFromString("zz")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)
	cards := CardsFromString("AS,KS,QS,JS,10S")
	a.Equal(5, len(cards))
	a.Equal("14s,13s,12s,11s,10s", CardsToString(cards))

	// every parsed card is its own physical card
	c1 := CardFromString("2c")
	c2 := CardFromString("2c")
	a.True(c1.Equal(c2))
	a.False(c1.Same(c2))
	a.True(c1.Same(c1))
	a.False(c1.Same(nil))

	a.Equal(0, len(CardsFromString("")))

	_, err := ParseCards("AS,XX")
	a.True(errors.Is(err, ErrInvalidCard))
}

func TestCardToString(t *testing.T) {
	assert.Equal(t, "", CardToString(nil))
	assert.Equal(t, "14c", CardToString(CardFromString("AC")))
}
