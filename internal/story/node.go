package story

import (
	"fmt"

	"github.com/feralgames/go-wolfpack/internal/storage"
	"github.com/pixil98/go-errors"
)

// Outcome is how an ending node resolves the session.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

// Node is a single story beat in the decision tree. Nodes are owned
// exclusively by the tree that built them and are read-only afterwards.
type Node struct {
	ID       int
	Scenario string

	// Choice labels shown to the player
	ChoiceA string
	ChoiceB string

	// Left is taken on choice A, Right on choice B. Both are nil on
	// ending nodes.
	Left  *Node
	Right *Node

	Ending     bool
	EndingText string
	Outcome    Outcome
}

// NodeSpec is the asset form of a Node, loaded from story content files.
// Children are referenced by asset identifier and linked into Node
// pointers when the tree is built.
type NodeSpec struct {
	ID         int                `json:"id"`
	Scenario   string             `json:"scenario"`
	ChoiceA    string             `json:"choice_a,omitempty"`
	ChoiceB    string             `json:"choice_b,omitempty"`
	Left       storage.Identifier `json:"left,omitempty"`
	Right      storage.Identifier `json:"right,omitempty"`
	Ending     bool               `json:"ending,omitempty"`
	EndingText string             `json:"ending_text,omitempty"`
	Outcome    Outcome            `json:"outcome,omitempty"`
}

func (s *NodeSpec) Validate() error {
	el := errors.NewErrorList()

	if s.ID < 0 {
		el.Add(fmt.Errorf("id must not be negative"))
	}
	if s.Scenario == "" {
		el.Add(fmt.Errorf("scenario must be set"))
	}

	if s.Ending {
		if s.Left != "" || s.Right != "" {
			el.Add(fmt.Errorf("ending node cannot have children"))
		}
		if s.EndingText == "" {
			el.Add(fmt.Errorf("ending node must have ending_text"))
		}
		if s.Outcome != OutcomeVictory && s.Outcome != OutcomeDefeat {
			el.Add(fmt.Errorf("ending node outcome must be %q or %q", OutcomeVictory, OutcomeDefeat))
		}
	} else if s.Outcome != OutcomeNone {
		el.Add(fmt.Errorf("only ending nodes carry an outcome"))
	}

	return el.Err()
}

func (s *NodeSpec) node() *Node {
	return &Node{
		ID:         s.ID,
		Scenario:   s.Scenario,
		ChoiceA:    s.ChoiceA,
		ChoiceB:    s.ChoiceB,
		Ending:     s.Ending,
		EndingText: s.EndingText,
		Outcome:    s.Outcome,
	}
}
