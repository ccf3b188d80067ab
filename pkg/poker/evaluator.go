package poker

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"pokerhands/pkg/deck"
)

// handSize is the number of cards in a player's hand
const handSize = 5

// Dealer supplies cards to the evaluator
// *deck.Deck satisfies this interface.
type Dealer interface {
	// Deal removes n cards from the deck
	Deal(n int) (deck.Hand, error)

	// Sort returns a copy of the hand, highest rank first
	Sort(hand deck.Hand) deck.Hand

	// Suits returns the suits in canonical order
	Suits() []deck.Suit

	// Values returns the face values in canonical order
	Values() []string
}

// Player is a participant with a five-card hand
type Player struct {
	ID   string    `json:"id"`
	Hand deck.Hand `json:"hand"`
}

// PlayerResult is the classified hand of a player
type PlayerResult struct {
	ID                 string   `json:"id"`
	HandRank           int      `json:"handRank"`
	HandRankKey        Category `json:"handRankKey"`
	TieBreakerCardRank int      `json:"tieBreakerCardRank"`

	// TieBreakerTotalRank is only set for a high card. It's the sum of every
	// card except the highest.
	TieBreakerTotalRank int    `json:"tieBreakerTotalRank,omitempty"`
	Name                string `json:"name"`
}

// Evaluator classifies and ranks poker hands
// The Dealer is not safe for concurrent use, so neither is the Evaluator.
type Evaluator struct {
	dealer Dealer
	logger logrus.FieldLogger
}

// New returns a new Evaluator backed by the dealer
func New(dealer Dealer) *Evaluator {
	return &Evaluator{
		dealer: dealer,
		logger: logrus.StandardLogger(),
	}
}

// SetLogger overrides the logger
func (e *Evaluator) SetLogger(logger logrus.FieldLogger) {
	e.logger = logger
}

// DealHand deals a new five-card hand
func (e *Evaluator) DealHand() (deck.Hand, error) {
	return e.dealer.Deal(handSize)
}

// Evaluate classifies each player's hand and returns the results, strongest first
// Players that tie keep the order they were passed in.
func (e *Evaluator) Evaluate(players []Player) ([]PlayerResult, error) {
	results := make([]PlayerResult, len(players))
	for i, player := range players {
		result, err := e.Classify(player)
		if err != nil {
			return nil, err
		}

		results[i] = result
	}

	sortResults(results)
	return results, nil
}

// Classify determines the category and tie breakers of a single player's hand
func (e *Evaluator) Classify(player Player) (PlayerResult, error) {
	if err := validateHand(player); err != nil {
		return PlayerResult{}, err
	}

	hand := e.dealer.Sort(player.Hand)
	category, tieBreaker := classify(newHandChecks(hand, e.dealer))

	result := PlayerResult{
		ID:                 player.ID,
		HandRank:           category.Rank(),
		HandRankKey:        category,
		TieBreakerCardRank: tieBreaker,
		Name:               category.String(),
	}

	if category == HighCard {
		total := 0
		for _, card := range hand {
			total += card.Rank
		}

		result.TieBreakerTotalRank = total - hand.FirstCard().Rank
	}

	e.logger.WithFields(logrus.Fields{
		"player":   player.ID,
		"hand":     hand.String(),
		"category": category.Key(),
	}).Debug("classified hand")

	return result, nil
}

// Replace swaps a card in the hand for a new one from the deck
// The new hand keeps the new card in the same position as the discarded card.
// The original hand is not modified. If the card is not in the hand, nothing is
// drawn and ErrCardNotFound is returned.
func (e *Evaluator) Replace(card *deck.Card, hand deck.Hand) (deck.Hand, *deck.Card, error) {
	i := hand.IndexOf(card)
	if i < 0 {
		return nil, nil, ErrCardNotFound
	}

	cards, err := e.dealer.Deal(1)
	if err != nil {
		return nil, nil, fmt.Errorf("could not draw a replacement: %w", err)
	}

	newCard := cards[0]
	newHand := hand.Clone()
	newHand[i] = newCard

	e.logger.WithFields(logrus.Fields{
		"discard": deck.CardToString(card),
		"draw":    deck.CardToString(newCard),
	}).Debug("replaced card")

	return newHand, newCard, nil
}

func validateHand(player Player) error {
	if n := len(player.Hand); n != handSize {
		return fmt.Errorf("%w: player %s has %d cards", ErrInvalidHandSize, player.ID, n)
	}

	for _, card := range player.Hand {
		if card == nil {
			return fmt.Errorf("%w: player %s", ErrMissingCard, player.ID)
		}
	}

	return nil
}
