package game

import (
	"fmt"
	"math/rand"
	"time"

	"blackjack-engine/internal/player"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Phase int

const (
	PhaseDealing Phase = iota
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseDealing:
		return "dealing"
	case PhasePlayerTurn:
		return "player-turn"
	case PhaseDealerTurn:
		return "dealer-turn"
	case PhaseResolved:
		return "resolved"
	}
	return "unknown"
}

// DealerRule decides when the dealer keeps drawing.
type DealerRule int

const (
	// DealerRawSum draws while the running sum, aces still at 11, is under 17.
	// A soft 17 stands, and so does a pair of aces (raw 22).
	DealerRawSum DealerRule = iota
	// DealerHitsSoft17 draws while the reduced score is under 17 and also on
	// a soft 17.
	DealerHitsSoft17
)

func (r DealerRule) String() string {
	if r == DealerHitsSoft17 {
		return "hits-soft-17"
	}
	return "raw-sum"
}

func (r DealerRule) shouldDraw(h *Hand) bool {
	if r == DealerHitsSoft17 {
		score := h.Score()
		return score < 17 || (score == 17 && h.SoftAces() > 0)
	}
	return h.Sum() < 17
}

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func WithDealerRule(r DealerRule) Option {
	return func(e *Engine) {
		e.rule = r
	}
}

// Engine runs rounds of one dealer against one player. It is not safe for
// concurrent use; the caller drives it one action at a time.
type Engine struct {
	log  *zap.Logger
	rule DealerRule

	wallet *player.Player

	roundID uuid.UUID
	phase   Phase
	deck    *Deck
	dealer  *Hand
	player  *Hand
	hidden  Card
	outcome Outcome
	delta   int
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		log:    zap.NewNop(),
		wallet: player.New(0),
		phase:  PhaseDealing,
		dealer: NewHand(),
		player: NewHand(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type HitResult struct {
	Card        Card
	PlayerHand  []Card
	PlayerScore int
	Bust        bool
}

type StandResult struct {
	DealerHand  []Card
	DealerScore int
	PlayerScore int
	Outcome     Outcome
	Delta       int
	Balance     int
}

// Start begins a new game: the balance and session stats are reset to
// startingBalance and the first round is dealt.
func (e *Engine) Start(rng Source, startingBalance int) (RoundView, error) {
	e.wallet = player.New(startingBalance)
	e.log.Info("new game", zap.Int("balance", startingBalance), zap.Stringer("dealer_rule", e.rule))
	return e.NewRound(rng)
}

// NewRound deals a fresh round from a newly shuffled deck. The balance carries
// over. A nil rng shuffles from the clock.
func (e *Engine) NewRound(rng Source) (RoundView, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	deck := NewDeck()
	e.log.Debug("deck built", zap.Stringer("deck", deck))
	deck.Shuffle(rng)
	e.log.Debug("deck shuffled", zap.Stringer("deck", deck))

	return e.deal(deck)
}

func (e *Engine) deal(deck *Deck) (RoundView, error) {
	e.roundID = uuid.New()
	e.phase = PhaseDealing
	e.deck = deck
	e.dealer = NewHand()
	e.player = NewHand()
	e.hidden = Card{}
	e.outcome = OutcomeNone
	e.delta = 0

	// dealer: hidden card first, then the visible one
	hidden, err := e.draw(e.dealer)
	if err != nil {
		return RoundView{}, err
	}
	e.hidden = hidden

	if _, err := e.draw(e.dealer); err != nil {
		return RoundView{}, err
	}

	for i := 0; i < 2; i++ {
		if _, err := e.draw(e.player); err != nil {
			return RoundView{}, err
		}
	}

	e.phase = PhasePlayerTurn

	e.log.Debug("round dealt",
		zap.String("round", e.roundID.String()),
		zap.Stringer("hidden", e.hidden),
		zap.Stringers("dealer", e.dealer.Cards()),
		zap.Int("dealer_sum", e.dealer.Sum()),
		zap.Stringers("player", e.player.Cards()),
		zap.Int("player_sum", e.player.Sum()),
	)

	return e.View(), nil
}

func (e *Engine) draw(h *Hand) (Card, error) {
	c, err := e.deck.Draw()
	if err != nil {
		e.log.Error("draw failed", zap.String("round", e.roundID.String()), zap.Error(err))
		return Card{}, fmt.Errorf("round %s: %w", e.roundID, err)
	}
	h.AddCard(c)
	return c, nil
}

// Hit deals one card to the player. Once the player is bust only Stand is
// accepted.
func (e *Engine) Hit() (HitResult, error) {
	if e.phase != PhasePlayerTurn {
		return HitResult{}, &ActionError{Action: "hit", Phase: e.phase}
	}
	if e.player.IsBust() {
		return HitResult{}, &ActionError{Action: "hit", Phase: e.phase, Reason: "player is bust"}
	}

	card, err := e.draw(e.player)
	if err != nil {
		return HitResult{}, err
	}

	score := e.player.Score()
	bust := score > 21

	e.log.Debug("player hit",
		zap.String("round", e.roundID.String()),
		zap.Stringer("card", card),
		zap.Int("score", score),
		zap.Bool("bust", bust),
	)

	return HitResult{
		Card:        card,
		PlayerHand:  e.player.Cards(),
		PlayerScore: score,
		Bust:        bust,
	}, nil
}

// Stand ends the player's turn, plays out the dealer and settles the round,
// all in one call.
func (e *Engine) Stand() (StandResult, error) {
	if e.phase != PhasePlayerTurn {
		return StandResult{}, &ActionError{Action: "stand", Phase: e.phase}
	}

	e.phase = PhaseDealerTurn
	for e.rule.shouldDraw(e.dealer) {
		if _, err := e.draw(e.dealer); err != nil {
			return StandResult{}, err
		}
	}

	dealerScore := e.dealer.Score()
	playerScore := e.player.Score()

	e.outcome, e.delta = Resolve(playerScore, dealerScore)
	switch e.outcome {
	case OutcomeWin:
		e.wallet.AddWin(e.delta)
	case OutcomeLose:
		e.wallet.AddLoss(-e.delta)
	case OutcomeTie:
		e.wallet.AddDraw()
	}
	e.phase = PhaseResolved

	e.log.Info("round resolved",
		zap.String("round", e.roundID.String()),
		zap.Int("player_score", playerScore),
		zap.Int("dealer_score", dealerScore),
		zap.Stringer("outcome", e.outcome),
		zap.Int("delta", e.delta),
		zap.Int("balance", e.wallet.Balance),
	)

	return StandResult{
		DealerHand:  e.dealer.Cards(),
		DealerScore: dealerScore,
		PlayerScore: playerScore,
		Outcome:     e.outcome,
		Delta:       e.delta,
		Balance:     e.wallet.Balance,
	}, nil
}

func (e *Engine) Phase() Phase {
	return e.phase
}

func (e *Engine) Balance() int {
	return e.wallet.Balance
}

// Outcome is OutcomeNone until the round is resolved.
func (e *Engine) Outcome() Outcome {
	return e.outcome
}

func (e *Engine) RoundID() string {
	if e.roundID == uuid.Nil {
		return ""
	}
	return e.roundID.String()
}

func (e *Engine) DealerRule() DealerRule {
	return e.rule
}

// Stats returns a copy of the session record.
func (e *Engine) Stats() player.Player {
	return *e.wallet
}

// HiddenCard is the dealer's hole card for the current round.
func (e *Engine) HiddenCard() Card {
	return e.hidden
}
