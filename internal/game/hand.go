package game

// Hand keeps a running sum with aces counted as 11 and the number of aces
// still counted that way. Both move together on every AddCard.
type Hand struct {
	cards []Card
	sum   int
	aces  int
}

func NewHand() *Hand {
	return &Hand{
		cards: make([]Card, 0, 10),
	}
}

func (h *Hand) AddCard(c Card) {
	h.cards = append(h.cards, c)
	h.sum += c.Value()
	if c.IsAce() {
		h.aces++
	}
}

// Score softens aces from 11 to 1 until the hand is at or under 21 or no
// soft ace is left. The reduction is kept: later cards add on top of it.
func (h *Hand) Score() int {
	for h.sum > 21 && h.aces > 0 {
		h.sum -= 10
		h.aces--
	}
	return h.sum
}

// Sum is the running total without any further ace reduction.
func (h *Hand) Sum() int {
	return h.sum
}

// SoftAces is the number of aces still counted as 11.
func (h *Hand) SoftAces() int {
	return h.aces
}

func (h *Hand) IsBust() bool {
	return h.Score() > 21
}

func (h *Hand) Len() int {
	return len(h.cards)
}

func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// peekScore is Score without locking the reduction into the hand.
func (h *Hand) peekScore() int {
	sum, aces := h.sum, h.aces
	for sum > 21 && aces > 0 {
		sum -= 10
		aces--
	}
	return sum
}
