package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"blackjack-engine/internal/game"

	"go.uber.org/zap"
)

// Session drives one engine from line commands and renders its state.
type Session struct {
	engine *game.Engine
	rng    game.Source
	in     *bufio.Scanner
	out    io.Writer
	log    *zap.Logger
}

func NewSession(engine *game.Engine, rng game.Source, in io.Reader, out io.Writer, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		engine: engine,
		rng:    rng,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    log,
	}
}

// Run deals a game with startingBalance and plays until quit or end of
// input. Only engine defects are returned; illegal actions are reported to
// the player.
func (s *Session) Run(startingBalance int) error {
	view, err := s.engine.Start(s.rng, startingBalance)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	s.send("Welcome to Blackjack! Type help for the rules.\n\n")
	s.send(formatRound(view))

	for s.in.Scan() {
		quit, err := s.HandleLine(s.in.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return s.in.Err()
}

// HandleLine runs one command. It reports whether the player asked to quit.
func (s *Session) HandleLine(line string) (bool, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}

	cmd := normalize(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case CmdHit:
		err = s.handleHit()
	case CmdStand:
		err = s.handleStand()
	case CmdAgain:
		err = s.handleAgain()
	case CmdDeal:
		err = s.handleDeal(args)
	case CmdBalance:
		s.send(formatStats(s.engine.Stats()))
	case CmdHelp:
		s.send(formatHelp(s.engine.DealerRule()))
	case CmdQuit:
		s.send(fmt.Sprintf("Final balance: $%d\n", s.engine.Balance()))
		return true, nil
	default:
		s.send(fmt.Sprintf("Unknown command %q. Type help for the list.\n", parts[0]))
	}

	return false, err
}

func (s *Session) send(text string) {
	if _, err := io.WriteString(s.out, text); err != nil {
		s.log.Warn("write failed", zap.Error(err))
	}
}

// rejected turns an illegal action into a message for the player. Anything
// else is passed back up.
func (s *Session) rejected(action string, err error) error {
	if errors.Is(err, game.ErrInvalidAction) {
		s.log.Debug("action rejected", zap.String("action", action), zap.Error(err))
		s.send(fmt.Sprintf("You can't %s right now.\n", action))
		s.send(formatActions(Actions(s.engine.View())))
		return nil
	}
	return fmt.Errorf("%s: %w", action, err)
}

func (s *Session) handleHit() error {
	res, err := s.engine.Hit()
	if err != nil {
		return s.rejected(CmdHit, err)
	}

	s.send(fmt.Sprintf("You drew %s.\n", formatCard(res.Card)))
	s.send(formatRound(s.engine.View()))
	return nil
}

func (s *Session) handleStand() error {
	if _, err := s.engine.Stand(); err != nil {
		return s.rejected(CmdStand, err)
	}

	s.send(formatRound(s.engine.View()))
	if stats := s.engine.Stats(); !stats.CanAfford(game.Stake) {
		s.send(fmt.Sprintf("Your balance is below the $%d stake.\n", game.Stake))
	}
	return nil
}

// handleAgain moves on to the next round. The current round has to be
// settled first, otherwise a bust hand could be walked away from for free.
func (s *Session) handleAgain() error {
	if phase := s.engine.Phase(); phase != game.PhaseResolved {
		return s.rejected("start a new round", &game.ActionError{Action: CmdAgain, Phase: phase})
	}

	view, err := s.engine.NewRound(s.rng)
	if err != nil {
		return fmt.Errorf("new round: %w", err)
	}

	s.send("\n")
	s.send(formatRound(view))
	return nil
}

func (s *Session) handleDeal(args []string) error {
	if len(args) != 1 {
		s.send(fmt.Sprintf("Usage: %s <amount>\n", CmdDeal))
		return nil
	}

	amount, err := strconv.Atoi(args[0])
	if err != nil || amount < 0 {
		s.send(fmt.Sprintf("Invalid amount %q.\n", args[0]))
		return nil
	}

	view, err := s.engine.Start(s.rng, amount)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	s.send("\nNew game.\n")
	s.send(formatRound(view))
	return nil
}
