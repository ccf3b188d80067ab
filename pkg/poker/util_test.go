package poker

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"pokerhands/pkg/deck"
)

func newTestEvaluator(t *testing.T) (*Evaluator, *deck.Deck) {
	t.Helper()

	d := deck.New()
	e := New(d)
	e.SetLogger(nullLogger())

	return e, d
}

func nullLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func newPlayer(id, cards string) Player {
	return Player{
		ID:   id,
		Hand: deck.CardsFromString(cards),
	}
}

// hands shared across tests
var (
	royalFlushPlayer    = "AS,KS,QS,JS,10S"
	straightFlushPlayer = "KD,QD,JD,10D,9D"
	fourKindPlayer      = "10H,7D,10D,10S,10C"
	fullHousePlayer     = "7D,7S,9C,9S,9H"
	flushPlayer         = "AH,JH,9H,6H,5H"
	straightPlayer      = "4H,5D,6H,7C,8H"
	threeKindPlayer     = "KH,10S,KS,KD,5C"
	twoPairPlayer       = "KH,AS,AD,8H,8C"
	onePairPlayer       = "8H,8D,2S,3H,9C"
	highPlayer          = "AS,8D,9D,3C,2S"
	highPlayer2         = "KH,7D,QS,2D,3D"
)
