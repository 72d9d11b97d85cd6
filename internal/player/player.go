package player

// Player is the wallet and session record of the one person at the table.
// It lives in memory for the length of a game.
type Player struct {
	Balance int
	Wins    int
	Losses  int
	Draws   int
	Games   int
}

func New(balance int) *Player {
	return &Player{Balance: balance}
}

// AddWin credits a won round.
func (p *Player) AddWin(amount int) {
	p.Balance += amount
	p.Wins++
	p.Games++
}

// AddLoss takes the stake off the balance. The balance may go negative.
func (p *Player) AddLoss(amount int) {
	p.Balance -= amount
	p.Losses++
	p.Games++
}

// AddDraw records a tie; the stake stays where it was.
func (p *Player) AddDraw() {
	p.Draws++
	p.Games++
}

// CanAfford reports whether the wallet still covers a stake of amount.
func (p *Player) CanAfford(amount int) bool {
	return p.Balance >= amount
}

// WinRate is the percentage of this session's rounds that were won.
func (p *Player) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games) * 100
}
