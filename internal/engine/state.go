package engine

import "fmt"

// State identifies where a session is in its lifecycle.
type State string

const (
	StateStartScreen State = "start-screen"
	StatePlaying     State = "playing"

	// StateEventTriggered is transitional: it is entered and left within
	// a single turn while a pending event is processed, so callers
	// polling CurrentState between turns only ever see the others.
	StateEventTriggered State = "event-triggered"

	StateGameOver State = "game-over"
	StateVictory  State = "victory"
)

func (s State) Validate() error {
	switch s {
	case StateStartScreen, StatePlaying, StateEventTriggered, StateGameOver, StateVictory:
		return nil
	default:
		return fmt.Errorf("unknown game state: %s", s)
	}
}

// Terminal reports whether the session has finished.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateVictory
}

// Choice is the player's pick for the current scenario.
type Choice string

const (
	ChoiceNone Choice = ""
	ChoiceA    Choice = "a"
	ChoiceB    Choice = "b"
)
