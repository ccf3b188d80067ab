package main

import (
	"fmt"
	"strings"

	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker"
)

// handFlags collects repeated -hand flags
type handFlags []poker.Player

func (h *handFlags) String() string {
	s := make([]string, len(*h))
	for i, p := range *h {
		s[i] = fmt.Sprintf("%s=%s", p.ID, p.Hand)
	}

	return strings.Join(s, " ")
}

// Set parses a hand in the form of id=AS,KS,QS,JS,10S
func (h *handFlags) Set(value string) error {
	parts := strings.SplitN(value, "=", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
		return fmt.Errorf("expected id=cards, got %q", value)
	}

	id := strings.TrimSpace(parts[0])
	for _, p := range *h {
		if p.ID == id {
			return fmt.Errorf("duplicate player: %s", id)
		}
	}

	cards, err := deck.ParseCards(parts[1])
	if err != nil {
		return err
	}

	// a card can only be held once across the table
	var seen deck.Hand
	for _, p := range *h {
		seen = append(seen, p.Hand...)
	}

	for _, card := range cards {
		if seen.HasCard(card) {
			return fmt.Errorf("duplicate card: %s", deck.CardToString(card))
		}

		seen.AddCard(card)
	}

	*h = append(*h, poker.Player{ID: id, Hand: cards})
	return nil
}

func (h handFlags) players() []poker.Player {
	players := make([]poker.Player, len(h))
	copy(players, h)
	return players
}
