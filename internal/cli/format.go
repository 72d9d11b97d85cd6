package cli

import (
	"fmt"
	"strings"

	"blackjack-engine/internal/game"
	"blackjack-engine/internal/player"

	"github.com/pterm/pterm"
)

func formatCard(c game.Card) string {
	var suit string
	switch c.Suit {
	case game.Clubs:
		suit = pterm.White("♣")
	case game.Diamonds:
		suit = pterm.LightRed("♦")
	case game.Hearts:
		suit = pterm.LightRed("♥")
	case game.Spades:
		suit = pterm.White("♠")
	}
	return c.Rank.String() + suit
}

func formatCards(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = formatCard(c)
	}
	return strings.Join(parts, " ")
}

func formatDealer(v game.RoundView) string {
	parts := make([]string, len(v.Dealer))
	for i, cv := range v.Dealer {
		if cv.FaceDown {
			parts[i] = "[?]"
			continue
		}
		parts[i] = formatCard(cv.Card)
	}
	return fmt.Sprintf("%s (%d)", strings.Join(parts, " "), v.DealerScore)
}

func formatRound(v game.RoundView) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dealer: %s\n", formatDealer(v)))
	sb.WriteString(fmt.Sprintf("You:    %s (%d)\n", formatCards(v.Player), v.PlayerScore))
	if v.Bust && v.Phase != game.PhaseResolved {
		sb.WriteString(pterm.LightRed("Bust!") + " Stand to reveal the dealer's hand.\n")
	}
	if v.Phase == game.PhaseResolved {
		sb.WriteString(formatOutcome(v.Outcome) + "\n")
	}
	sb.WriteString(fmt.Sprintf("Money Balance: $%d\n", v.Balance))
	sb.WriteString(formatActions(Actions(v)))
	return sb.String()
}

func formatOutcome(o game.Outcome) string {
	switch o {
	case game.OutcomeWin:
		return pterm.LightGreen("You Win!")
	case game.OutcomeLose:
		return pterm.LightRed("You Lose!")
	case game.OutcomeTie:
		return pterm.Yellow("Tie!")
	}
	return ""
}

func formatActions(actions []string) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = "[" + a + "]"
	}
	return "> " + strings.Join(parts, " ") + "\n"
}

func formatStats(p player.Player) string {
	return fmt.Sprintf(
		"Money Balance: $%d\n"+
			"Games: %d\n"+
			"Wins: %d (%.1f%%)\n"+
			"Losses: %d\n"+
			"Ties: %d\n",
		p.Balance, p.Games, p.Wins, p.WinRate(), p.Losses, p.Draws)
}

func formatHelp(rule game.DealerRule) string {
	dealer := "The dealer draws while the total, aces at 11, is below 17."
	if rule == game.DealerHitsSoft17 {
		dealer = "The dealer draws below 17 and on a soft 17."
	}

	return "Blackjack: get closer to 21 than the dealer without going over.\n\n" +
		"Cards: 2-10 at face value, J Q K count 10, A counts 11 or 1.\n" +
		dealer + fmt.Sprintf(" Every round is played for $%d.\n\n", game.Stake) +
		"hit (h)          take a card\n" +
		"stand (s)        end your turn\n" +
		"again (n)        next round, balance kept\n" +
		"deal <amount>    new game with a starting balance\n" +
		"balance (b)      session statistics\n" +
		"quit (q)         leave the table\n"
}
