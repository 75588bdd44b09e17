package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a canonical subscription state change.
type Action string

const (
	ActionSubscribe   Action = "subscribe"
	ActionUnsubscribe Action = "unsubscribe"
)

// actionVocabulary maps every accepted form value onto a canonical action.
// The management page posts either an "action" button (unsubscribe,
// resubscribe) or a "choice" radio (yes, no).
var actionVocabulary = map[string]Action{
	"subscribe":   ActionSubscribe,
	"resubscribe": ActionSubscribe,
	"yes":         ActionSubscribe,
	"unsubscribe": ActionUnsubscribe,
	"no":          ActionUnsubscribe,
}

// ErrInvalidAction is returned for values outside the vocabulary.
var ErrInvalidAction = errors.New("invalid action")

// ParseAction normalises raw into a canonical Action.
func ParseAction(raw string) (Action, error) {
	a, ok := actionVocabulary[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, raw)
	}
	return a, nil
}

// Valid reports whether a is one of the canonical actions.
func (a Action) Valid() bool {
	return a == ActionSubscribe || a == ActionUnsubscribe
}

// Subscribed returns the is_subscribed value the action produces.
func (a Action) Subscribed() bool {
	return a == ActionSubscribe
}
