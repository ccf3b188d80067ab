package poker

import "pokerhands/pkg/deck"

// handChecks holds the outcome of each structural check on a sorted hand
type handChecks struct {
	hand         deck.Hand
	ace          bool
	straightRank int
	isStraight   bool
	flushRank    int
	isFlush      bool
	pairs        pairGrouping
}

func newHandChecks(sorted deck.Hand, dealer Dealer) handChecks {
	c := handChecks{
		hand:  sorted,
		ace:   hasAce(sorted),
		pairs: groupPairs(sorted, dealer.Values()),
	}

	c.straightRank, c.isStraight = checkStraight(sorted)
	c.flushRank, c.isFlush = checkFlush(sorted, dealer.Suits())

	return c
}

// rule matches a category and returns its tie breaker
type rule struct {
	category Category
	match    func(c handChecks) (int, bool)
}

// rules are checked in order, and the first match wins
var rules = []rule{
	{RoyalFlush, func(c handChecks) (int, bool) {
		// the only royal flush is the top sequence, so there's nothing to break ties with
		return 0, c.isStraight && c.isFlush && c.ace
	}},
	{StraightFlush, func(c handChecks) (int, bool) {
		return c.straightRank, c.isStraight && c.isFlush
	}},
	{FourOfAKind, func(c handChecks) (int, bool) {
		return c.pairs.rank, c.pairs.isFourOfAKind()
	}},
	{FullHouse, func(c handChecks) (int, bool) {
		return c.pairs.rank, c.pairs.isFullHouse()
	}},
	{Flush, func(c handChecks) (int, bool) {
		return c.flushRank, c.isFlush
	}},
	{Straight, func(c handChecks) (int, bool) {
		return c.straightRank, c.isStraight
	}},
	{ThreeOfAKind, func(c handChecks) (int, bool) {
		return c.pairs.rank, c.pairs.isThreeOfAKind()
	}},
	{TwoPair, func(c handChecks) (int, bool) {
		return c.pairs.rank, c.pairs.isTwoPair()
	}},
	{Pair, func(c handChecks) (int, bool) {
		return c.pairs.rank, c.pairs.isPair()
	}},
	{HighCard, func(c handChecks) (int, bool) {
		return c.hand.FirstCard().Rank, true
	}},
}

// classify returns the category of the hand and its primary tie breaker
func classify(c handChecks) (Category, int) {
	for _, r := range rules {
		if tieBreaker, ok := r.match(c); ok {
			return r.category, tieBreaker
		}
	}

	// the high card rule always matches
	panic("no category matched")
}
