package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"pokerhands/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrInsufficientCards is returned when Deal() asks for more cards than are left
var ErrInsufficientCards = fmt.Errorf("insufficient cards: %w", ErrEndOfDeck)

// suits and values in their canonical order
var (
	suits  = []Suit{Clubs, Diamonds, Hearts, Spades}
	values = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
)

// Deck represents a playing deck
// Deck is not safe for concurrent use
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
		rng:  rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetSeed will set the seed
// Setting the seed is normally handled when you call Shuffle(). A seed of zero uses crypto/rand.
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rng.New(seed)
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, newCard(rank, suit))
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// A non-zero seed gives a repeatable order. A seed of zero shuffles with crypto/rand.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != 52 || d.seed != -1 {
		d.buildDeck()
	}

	d.SetSeed(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Deal removes n cards from the top of the deck
// If fewer than n cards remain, no cards are removed and ErrInsufficientCards is returned
func (d *Deck) Deal(n int) (Hand, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}

	if !d.CanDraw(n) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientCards, n, len(d.Cards))
	}

	hand := make(Hand, 0, n)
	for i := 0; i < n; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		hand.AddCard(card)
	}

	return hand, nil
}

// Sort returns a copy of the hand ordered by rank, highest first
// Cards of equal rank keep their relative order
func (d *Deck) Sort(hand Hand) Hand {
	sorted := hand.Clone()
	sort.Stable(sort.Reverse(sortByRank(sorted)))

	return sorted
}

// Suits returns the four suits in canonical order
func (d *Deck) Suits() []Suit {
	s := make([]Suit, len(suits))
	copy(s, suits)
	return s
}

// Values returns the thirteen face values in canonical order
func (d *Deck) Values() []string {
	v := make([]string, len(values))
	copy(v, values)
	return v
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

type sortByRank []*Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
