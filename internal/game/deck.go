package game

import "fmt"

// Source is the randomness a deck needs to shuffle. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

type Deck struct {
	cards []Card
}

// NewDeck returns the 52 cards in suit-major order, unshuffled.
func NewDeck() *Deck {
	d := &Deck{
		cards: make([]Card, 0, len(Suits)*len(Ranks)),
	}

	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}

	return d
}

// Shuffle permutes the deck in place (Fisher-Yates).
func (d *Deck) Shuffle(rng Source) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw takes the top card, which is the last one in the slice.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) String() string {
	return fmt.Sprint(d.cards)
}
