package engine

import (
	"fmt"

	"github.com/feralgames/go-wolfpack/internal/events"
	"github.com/feralgames/go-wolfpack/internal/game"
	"github.com/feralgames/go-wolfpack/internal/storage"
	"github.com/pixil98/go-errors"
)

// generatorExtension is the session extension key for generator state.
const generatorExtension = "generator"

// sessionSpec is the persisted form of a whole session. It carries
// everything needed to reconstruct equivalent playable state: the day,
// lifecycle state, the full wolf (stats, inventory, pack), the story
// position, the undo stack and the pending action queue.
type sessionSpec struct {
	Day        int                    `json:"day"`
	State      State                  `json:"state"`
	Wolf       *game.Wolf             `json:"wolf"`
	NodeID     int                    `json:"node_id"`
	History    []Snapshot             `json:"history,omitempty"`
	Actions    []string               `json:"actions,omitempty"`
	Extensions storage.ExtensionState `json:"extensions,omitempty"`
}

func (s *sessionSpec) Validate() error {
	el := errors.NewErrorList()

	if s.Day < 1 {
		el.Add(fmt.Errorf("day must be at least 1"))
	}
	el.Add(s.State.Validate())

	if s.Wolf == nil {
		el.Add(fmt.Errorf("wolf must be set"))
	} else {
		el.Add(s.Wolf.Validate())
	}

	if s.NodeID < 0 {
		el.Add(fmt.Errorf("node_id must not be negative"))
	}

	return el.Err()
}

// SaveToFile writes the whole session to path as a versioned asset,
// atomically.
func (e *Engine) SaveToFile(path string) error {
	spec := &sessionSpec{
		Day:     e.day,
		State:   e.state,
		Wolf:    e.wolf,
		NodeID:  e.story.Current().ID,
		History: e.history,
		Actions: e.actions,
	}

	if e.gen != nil {
		if err := spec.Extensions.Set(generatorExtension, e.gen.State()); err != nil {
			return fmt.Errorf("saving generator state: %w", err)
		}
	}

	return storage.WriteAsset(path, "session", spec)
}

// LoadFromFile replaces the session with the one saved at path. The
// load is all-or-nothing: the engine is only modified after the file
// has been read, validated, and the story position resolved, so a bad
// file leaves the running session untouched.
func (e *Engine) LoadFromFile(path string) error {
	spec, err := storage.ReadAsset[*sessionSpec](path)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	// Decode everything before touching the engine.
	var gs events.GeneratorState
	haveGen := false
	if e.gen != nil {
		ok, err := spec.Extensions.Get(generatorExtension, &gs)
		if err != nil {
			return fmt.Errorf("restoring generator state: %w", err)
		}
		haveGen = ok
	}

	if err := e.story.SetCurrent(spec.NodeID); err != nil {
		return fmt.Errorf("restoring story position: %w", err)
	}

	e.day = spec.Day
	e.state = spec.State
	e.wolf = spec.Wolf
	e.history = spec.History
	e.actions = spec.Actions
	e.choice = ChoiceNone

	if haveGen {
		e.gen.Restore(gs)
	}

	return nil
}

// Save persists the session to the configured save path.
func (e *Engine) Save() error {
	if e.savePath == "" {
		return fmt.Errorf("no save path configured")
	}
	return e.SaveToFile(e.savePath)
}

// Load restores the session from the configured save path.
func (e *Engine) Load() error {
	if e.savePath == "" {
		return fmt.Errorf("no save path configured")
	}
	return e.LoadFromFile(e.savePath)
}
