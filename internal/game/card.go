package game

import "strconv"

type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var (
	Suits = []Suit{Clubs, Diamonds, Hearts, Spades}
	Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	}
	return "?"
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// Card is a single playing card. Cards are compared by value.
type Card struct {
	Rank Rank
	Suit Suit
}

// Value is the nominal Blackjack value: an ace counts 11, face cards 10.
// Softening an ace to 1 is the hand's job.
func (c Card) Value() int {
	switch c.Rank {
	case Ace:
		return 11
	case Jack, Queen, King:
		return 10
	}
	return int(c.Rank)
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// String renders the card as "<rank>-<suit>", e.g. "10-H".
func (c Card) String() string {
	return c.Rank.String() + "-" + c.Suit.String()
}
