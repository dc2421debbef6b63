package events

import (
	"fmt"

	"github.com/feralgames/go-wolfpack/internal/game"
	"github.com/pixil98/go-errors"
)

// Priority bands. Lower numbers are served first.
const (
	PriorityCritical = 1
	PriorityUrgent   = 2
	PriorityNormal   = 3
)

// Event is a pending happening in the world. Its Effect is applied to
// the wolf when the event is processed; what the effect means is event
// content, not engine logic.
type Event struct {
	// InstanceId uniquely identifies this occurrence of the event
	InstanceId string `json:"instance_id"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// Priority orders pending events, 1 = most urgent
	Priority int `json:"priority"`

	Effect game.Effect `json:"effect"`
}

func (e *Event) Validate() error {
	el := errors.NewErrorList()

	if e.Title == "" {
		el.Add(fmt.Errorf("title must be set"))
	}
	if e.Priority < 1 {
		el.Add(fmt.Errorf("priority must be a positive integer"))
	}

	return el.Err()
}
