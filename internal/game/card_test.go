package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_Value(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Ace, 11},
		{Two, 2},
		{Five, 5},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Card{Rank: tt.rank, Suit: Spades}.Value())
		})
	}
}

func TestCard_IsAce(t *testing.T) {
	assert.True(t, Card{Rank: Ace, Suit: Hearts}.IsAce())
	assert.False(t, Card{Rank: King, Suit: Hearts}.IsAce())
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A-C", Card{Rank: Ace, Suit: Clubs}.String())
	assert.Equal(t, "10-H", Card{Rank: Ten, Suit: Hearts}.String())
	assert.Equal(t, "Q-S", Card{Rank: Queen, Suit: Spades}.String())
	assert.Equal(t, "7-D", Card{Rank: Seven, Suit: Diamonds}.String())
}
