package game

type CardView struct {
	Card     Card
	FaceDown bool
}

// RoundView is a read-only snapshot of the round for rendering.
type RoundView struct {
	RoundID string
	Phase   Phase

	Dealer []CardView
	// DealerScore only counts face-up cards while the hole card is hidden.
	DealerScore int

	Player      []Card
	PlayerScore int
	Bust        bool

	Outcome Outcome
	Delta   int
	Balance int
}

// CanHit reports whether Hit would be accepted.
func (v RoundView) CanHit() bool {
	return v.Phase == PhasePlayerTurn && !v.Bust
}

func (v RoundView) CanStand() bool {
	return v.Phase == PhasePlayerTurn
}

// View snapshots the round. It never changes engine state.
func (e *Engine) View() RoundView {
	v := RoundView{
		RoundID:     e.RoundID(),
		Phase:       e.phase,
		Player:      e.player.Cards(),
		PlayerScore: e.player.peekScore(),
		Outcome:     e.outcome,
		Delta:       e.delta,
		Balance:     e.wallet.Balance,
	}
	v.Bust = v.PlayerScore > 21

	faceDown := e.phase != PhaseResolved
	visible := NewHand()
	for i, c := range e.dealer.cards {
		hidden := faceDown && i == 0
		v.Dealer = append(v.Dealer, CardView{Card: c, FaceDown: hidden})
		if !hidden {
			visible.AddCard(c)
		}
	}
	v.DealerScore = visible.peekScore()

	return v
}
