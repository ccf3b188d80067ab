package poker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerhands/pkg/deck"
)

func TestCompare(t *testing.T) {
	a := assert.New(t)

	flush := PlayerResult{HandRank: Flush.Rank(), TieBreakerCardRank: 10}
	straight := PlayerResult{HandRank: Straight.Rank(), TieBreakerCardRank: 14}
	a.True(Compare(flush, straight) < 0)
	a.True(Compare(straight, flush) > 0)

	highFlush := PlayerResult{HandRank: Flush.Rank(), TieBreakerCardRank: 13}
	a.True(Compare(highFlush, flush) < 0)

	// the total only matters for a high card
	a.Equal(0, Compare(
		PlayerResult{HandRank: Pair.Rank(), TieBreakerCardRank: 8, TieBreakerTotalRank: 30},
		PlayerResult{HandRank: Pair.Rank(), TieBreakerCardRank: 8, TieBreakerTotalRank: 10},
	))
	a.True(Compare(
		PlayerResult{HandRank: HighCard.Rank(), TieBreakerCardRank: 14, TieBreakerTotalRank: 30},
		PlayerResult{HandRank: HighCard.Rank(), TieBreakerCardRank: 14, TieBreakerTotalRank: 10},
	) < 0)
	a.Equal(0, Compare(
		PlayerResult{HandRank: HighCard.Rank(), TieBreakerCardRank: 14, TieBreakerTotalRank: 10},
		PlayerResult{HandRank: HighCard.Rank(), TieBreakerCardRank: 14, TieBreakerTotalRank: 10},
	))
}

func TestCompare_transitive(t *testing.T) {
	a := assert.New(t)
	d := deck.New()
	e := New(d)
	e.SetLogger(nullLogger())

	players := make([]Player, 0, 60)
	for i := 0; i < 60; i++ {
		d.Shuffle(int64(i + 100))
		hand, err := e.DealHand()
		a.NoError(err)
		players = append(players, Player{ID: fmt.Sprintf("p%d", i), Hand: hand})
	}

	results, err := e.Evaluate(players)
	a.NoError(err)

	for i := 0; i < len(results)-1; i++ {
		a.True(Compare(results[i], results[i+1]) <= 0, "results must be sorted")
	}

	for _, x := range results {
		for _, y := range results {
			for _, z := range results {
				if Compare(x, y) < 0 && Compare(y, z) < 0 {
					a.True(Compare(x, z) < 0)
				}
			}
		}
	}
}

func TestWinners(t *testing.T) {
	a := assert.New(t)
	a.Nil(Winners(nil))

	results := []PlayerResult{
		{ID: "a", HandRank: Pair.Rank(), TieBreakerCardRank: 8},
		{ID: "b", HandRank: Pair.Rank(), TieBreakerCardRank: 8},
		{ID: "c", HandRank: Pair.Rank(), TieBreakerCardRank: 7},
	}
	a.Equal(results[0:2], Winners(results))
	a.Equal(results[2:], Winners(results[2:]))
}
