package engine

import (
	"fmt"

	"github.com/feralgames/go-wolfpack/internal/game"
)

// Multi-turn action identifiers accepted by QueueAction.
const (
	ActionHunt   = "hunt"
	ActionForage = "forage"
	ActionPatrol = "patrol"
	ActionDen    = "den"
)

// actionEffects maps a queued action to the stat change applied when it
// comes due on a later turn.
var actionEffects = map[string]game.Effect{
	ActionHunt:   {Hunger: -30, Energy: -20},
	ActionForage: {Hunger: -10, Energy: -5},
	ActionPatrol: {Reputation: 10, Energy: -15},
	ActionDen:    {Energy: 20},
}

// QueueAction enqueues a multi-turn action. Queued actions come due one
// per turn, oldest first. Unknown identifiers are rejected.
func (e *Engine) QueueAction(id string) error {
	if _, ok := actionEffects[id]; !ok {
		return fmt.Errorf("unknown action %q", id)
	}
	e.actions = append(e.actions, id)
	return nil
}

// PendingActions returns the number of queued actions.
func (e *Engine) PendingActions() int {
	return len(e.actions)
}

// applyDueAction dequeues the oldest pending action and applies its
// effect to the wolf. Returns false when nothing is queued.
func (e *Engine) applyDueAction() (string, bool) {
	if len(e.actions) == 0 {
		return "", false
	}
	id := e.actions[0]
	e.actions = e.actions[1:]
	e.wolf.ApplyEffect(actionEffects[id])
	return id, true
}
