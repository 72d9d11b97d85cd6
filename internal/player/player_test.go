package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_Settlement(t *testing.T) {
	p := New(1000)

	p.AddWin(100)
	p.AddLoss(100)
	p.AddLoss(100)
	p.AddDraw()

	assert.Equal(t, 900, p.Balance)
	assert.Equal(t, 1, p.Wins)
	assert.Equal(t, 2, p.Losses)
	assert.Equal(t, 1, p.Draws)
	assert.Equal(t, 4, p.Games)
	assert.InDelta(t, 25.0, p.WinRate(), 0.001)
}

func TestPlayer_BalanceCanGoNegative(t *testing.T) {
	p := New(50)
	p.AddLoss(100)

	assert.Equal(t, -50, p.Balance)
	assert.False(t, p.CanAfford(1))
}

func TestPlayer_WinRateWithoutGames(t *testing.T) {
	assert.Zero(t, New(0).WinRate())
}
