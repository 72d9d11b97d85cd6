package cli

import (
	"strings"

	"blackjack-engine/internal/game"
)

const (
	CmdHit     = "hit"
	CmdStand   = "stand"
	CmdAgain   = "again"
	CmdDeal    = "deal"
	CmdBalance = "balance"
	CmdHelp    = "help"
	CmdQuit    = "quit"
)

var aliases = map[string]string{
	"h": CmdHit,
	"s": CmdStand,
	"n": CmdAgain,
	"b": CmdBalance,
	"q": CmdQuit,
	"?": CmdHelp,

	"stay":       CmdStand,
	"play-again": CmdAgain,
}

func normalize(cmd string) string {
	cmd = strings.ToLower(cmd)
	if full, ok := aliases[cmd]; ok {
		return full
	}
	return cmd
}

// Actions lists what the player may do next. Hit drops out once the player
// is bust and Stand once the round is settled.
func Actions(v game.RoundView) []string {
	var actions []string
	if v.CanHit() {
		actions = append(actions, CmdHit)
	}
	if v.CanStand() {
		actions = append(actions, CmdStand)
	}
	if v.Phase == game.PhaseResolved {
		actions = append(actions, CmdAgain, CmdDeal+" <amount>")
	}
	return append(actions, CmdBalance, CmdQuit)
}
