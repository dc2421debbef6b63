package engine

// Snapshot is the undo-relevant slice of a session: the day, the three
// survival stats, and the story position. Inventory, pack and
// reputation are deliberately not captured, so undo restores a partial
// view. See Engine.UndoLastMove.
type Snapshot struct {
	Day    int `json:"day"`
	Health int `json:"health"`
	Hunger int `json:"hunger"`
	Energy int `json:"energy"`
	NodeID int `json:"node_id"`
}

// SaveState pushes a snapshot of the current session onto the undo
// stack. Called before every mutating turn, and available to front ends
// as an explicit command.
func (e *Engine) SaveState() {
	e.history = append(e.history, e.snapshot())
}

func (e *Engine) snapshot() Snapshot {
	return Snapshot{
		Day:    e.day,
		Health: e.wolf.Health,
		Hunger: e.wolf.Hunger,
		Energy: e.wolf.Energy,
		NodeID: e.story.Current().ID,
	}
}

// UndoLastMove pops the most recent snapshot and restores the day, the
// health/hunger/energy stats, and the story position from it.
// Reputation, inventory and pack keep their current values; callers
// must treat undo as partial by contract. Returns ErrNoHistory when the
// stack is empty.
func (e *Engine) UndoLastMove() error {
	if len(e.history) == 0 {
		return ErrNoHistory
	}
	snap := e.history[len(e.history)-1]

	// Reposition first so a missing node leaves everything untouched.
	if err := e.story.SetCurrent(snap.NodeID); err != nil {
		return err
	}

	e.history = e.history[:len(e.history)-1]
	e.wolf.UpdateStats(snap.Health, snap.Hunger, snap.Energy, e.wolf.Reputation)
	e.day = snap.Day
	return nil
}

// HistoryLen returns the number of snapshots on the undo stack.
func (e *Engine) HistoryLen() int {
	return len(e.history)
}
