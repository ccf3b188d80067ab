package poker

import "pokerhands/pkg/deck"

// The checks in this file expect a hand that has already been sorted by rank,
// highest first.

// hasAce only needs to check the first card since the hand is sorted
func hasAce(hand deck.Hand) bool {
	return hand.FirstCard().Rank == deck.Ace
}

// checkStraight returns the high card of the straight, if possible
// An Ace is always high, so A-2-3-4-5 is not a straight.
func checkStraight(hand deck.Hand) (int, bool) {
	for i := 0; i < len(hand)-1; i++ {
		if hand[i].Rank-hand[i+1].Rank != 1 {
			return 0, false
		}
	}

	return hand.FirstCard().Rank, true
}

// checkFlush returns the high card of the flush, if possible
func checkFlush(hand deck.Hand, suits []deck.Suit) (int, bool) {
	for _, suit := range suits {
		count := 0
		for _, card := range hand {
			if card.Suit == suit {
				count++
			}
		}

		if count == handSize {
			return hand.FirstCard().Rank, true
		}
	}

	return 0, false
}

// pairGrouping holds up to two groups of same-valued cards
type pairGrouping struct {
	// sizes are in the order the groups were found. Length is either 0 or 2.
	sizes []int

	// rank of the last group found
	rank int
}

// groupPairs scans the face values in order and records groups of 2, 3 or 4 cards
// Note: rank is overwritten every time a group is recorded. With a full house,
// it belongs to whichever group was found second.
func groupPairs(hand deck.Hand, values []string) pairGrouping {
	g := pairGrouping{sizes: make([]int, 0, 2)}

	for _, value := range values {
		count := 0
		rank := 0
		for _, card := range hand {
			if card.Value() == value {
				count++
				rank = card.Rank
			}
		}

		if count == 4 {
			// nothing else can be grouped with four of a kind
			g.sizes = append(g.sizes, count)
			g.rank = rank
			break
		} else if count == 3 {
			g.sizes = append(g.sizes, count)
			g.rank = rank
		} else if count == 2 {
			g.sizes = append(g.sizes, count)
			g.rank = rank
			if len(g.sizes) == 2 {
				break
			}
		}
	}

	if len(g.sizes) == 1 {
		g.sizes = append(g.sizes, 0)
	}

	return g
}

func (g pairGrouping) is(first, second int) bool {
	return len(g.sizes) == 2 && g.sizes[0] == first && g.sizes[1] == second
}

func (g pairGrouping) isFourOfAKind() bool {
	return g.is(4, 0)
}

// isFullHouse matches both [3, 2] and [2, 3]
func (g pairGrouping) isFullHouse() bool {
	return len(g.sizes) == 2 && g.sizes[0]+g.sizes[1] == 5
}

func (g pairGrouping) isThreeOfAKind() bool {
	return g.is(3, 0)
}

func (g pairGrouping) isTwoPair() bool {
	return g.is(2, 2)
}

func (g pairGrouping) isPair() bool {
	return g.is(2, 0)
}
