package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func handOf(ranks ...Rank) *Hand {
	h := NewHand()
	for _, r := range ranks {
		h.AddCard(Card{Rank: r, Suit: Hearts})
	}
	return h
}

func TestHand_AddCardTracksSumAndAces(t *testing.T) {
	h := handOf(Ace, Ace, Nine)

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 31, h.Sum())
	assert.Equal(t, 2, h.SoftAces())
}

func TestHand_ScoreReducesAces(t *testing.T) {
	h := handOf(Ace, Ace, Nine)

	assert.Equal(t, 21, h.Score())
	assert.Equal(t, 1, h.SoftAces())
	assert.Equal(t, 21, h.Score(), "repeat calls leave the score alone")
	assert.False(t, h.IsBust())
}

func TestHand_Bust(t *testing.T) {
	h := handOf(King, Queen, Five)

	assert.Equal(t, 25, h.Sum())
	assert.Equal(t, 25, h.Score())
	assert.True(t, h.IsBust())
}

func TestHand_ReductionIsKept(t *testing.T) {
	h := handOf(Ace, Six)
	assert.Equal(t, 17, h.Score())

	h.AddCard(Card{Rank: King, Suit: Spades})
	assert.Equal(t, 27, h.Sum())
	assert.Equal(t, 17, h.Score())
	assert.Equal(t, 17, h.Sum())
	assert.Zero(t, h.SoftAces())
}

func TestHand_PeekScoreDoesNotReduce(t *testing.T) {
	h := handOf(Ace, Ace)

	assert.Equal(t, 12, h.peekScore())
	assert.Equal(t, 22, h.Sum())
	assert.Equal(t, 2, h.SoftAces())
}

func TestHand_CardsIsCopy(t *testing.T) {
	h := handOf(Two, Three)
	cards := h.Cards()
	cards[0] = Card{Rank: King, Suit: Clubs}

	assert.Equal(t, Two, h.Cards()[0].Rank)
}
