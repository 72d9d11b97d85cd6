package game

// Stake is won or lost on every decided round.
const Stake = 100

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
	OutcomeTie
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeTie:
		return "tie"
	}
	return "none"
}

// Resolve settles a round from the reduced player and dealer scores and
// returns the outcome with its balance delta. A bust player loses even when
// the dealer busts too.
func Resolve(playerScore, dealerScore int) (Outcome, int) {
	switch {
	case playerScore > 21:
		return OutcomeLose, -Stake
	case dealerScore > 21:
		return OutcomeWin, Stake
	case playerScore == dealerScore:
		return OutcomeTie, 0
	case playerScore > dealerScore:
		return OutcomeWin, Stake
	default:
		return OutcomeLose, -Stake
	}
}
