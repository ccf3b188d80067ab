package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"pokerhands/pkg/poker"
)

// render prints the ranking as a table, followed by the winners
func render(table []poker.Player, results []poker.PlayerResult) error {
	hands := make(map[string]poker.Player, len(table))
	for _, p := range table {
		hands[p.ID] = p
	}

	data := pterm.TableData{{"#", "Player", "Hand", "Category", "Tie breaker", "Standard"}}
	for i, r := range results {
		player := hands[r.ID]
		standard, err := poker.Describe(player.Hand)
		if err != nil {
			logrus.WithError(err).WithField("player", r.ID).Warn("could not describe hand")
		}

		data = append(data, []string{
			pterm.Sprint(i + 1),
			r.ID,
			handString(player),
			r.Name,
			tieBreakerString(r),
			standard,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	winners := poker.Winners(results)
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = pterm.LightGreen(w.ID)
	}

	if len(winners) > 1 {
		pterm.Success.Printfln("Tie between %s with %s", strings.Join(names, ", "), winners[0].Name)
	} else if len(winners) == 1 {
		pterm.Success.Printfln("%s wins with %s", names[0], winners[0].Name)
	}

	return nil
}

func handString(p poker.Player) string {
	cards := make([]string, len(p.Hand))
	for i, c := range p.Hand {
		cards[i] = c.String()
	}

	return strings.Join(cards, " ")
}

func tieBreakerString(r poker.PlayerResult) string {
	if r.HandRankKey == poker.HighCard {
		return pterm.Sprintf("%d / %d", r.TieBreakerCardRank, r.TieBreakerTotalRank)
	}

	return pterm.Sprint(r.TieBreakerCardRank)
}
