package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAction = errors.New("invalid action")
	ErrEmptyDeck     = errors.New("deck is empty")
)

// ActionError reports an action attempted outside the phase that allows it.
type ActionError struct {
	Action string
	Phase  Phase
	Reason string
}

func (e *ActionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s during %s: %s", ErrInvalidAction, e.Action, e.Phase, e.Reason)
	}
	return fmt.Sprintf("%s: %s during %s", ErrInvalidAction, e.Action, e.Phase)
}

func (e *ActionError) Unwrap() error {
	return ErrInvalidAction
}
