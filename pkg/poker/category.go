package poker

import "fmt"

// Category is a poker hand category, i.e., royal flush
// The integer value is the strength of the category; higher is stronger.
type Category int

// Constants for category
const (
	None Category = iota - 1
	HighCard
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Ranking maps each category key to its strength
var Ranking = map[string]int{
	"ROYAL_FLUSH":     int(RoyalFlush),
	"STRAIGHT_FLUSH":  int(StraightFlush),
	"FOUR_OF_A_KIND":  int(FourOfAKind),
	"FULL_HOUSE":      int(FullHouse),
	"FLUSH":           int(Flush),
	"STRAIGHT":        int(Straight),
	"THREE_OF_A_KIND": int(ThreeOfAKind),
	"TWO_PAIR":        int(TwoPair),
	"PAIR":            int(Pair),
	"HIGH_CARD":       int(HighCard),
	"NONE":            int(None),
}

// Rank returns the strength of the category
func (c Category) Rank() int {
	return int(c)
}

// Key returns the constant key of the category, i.e., ROYAL_FLUSH
func (c Category) Key() string {
	switch c {
	case None:
		return "NONE"
	case HighCard:
		return "HIGH_CARD"
	case Pair:
		return "PAIR"
	case TwoPair:
		return "TWO_PAIR"
	case ThreeOfAKind:
		return "THREE_OF_A_KIND"
	case Straight:
		return "STRAIGHT"
	case Flush:
		return "FLUSH"
	case FullHouse:
		return "FULL_HOUSE"
	case FourOfAKind:
		return "FOUR_OF_A_KIND"
	case StraightFlush:
		return "STRAIGHT_FLUSH"
	case RoyalFlush:
		return "ROYAL_FLUSH"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// String returns the human-readable name of the category
func (c Category) String() string {
	switch c {
	case None:
		return "None"
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three-of-a-Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four-of-a-Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// MarshalText encodes the category as its key
func (c Category) MarshalText() ([]byte, error) {
	if c < None || c > RoyalFlush {
		return nil, fmt.Errorf("unknown category: %d", c)
	}

	return []byte(c.Key()), nil
}
