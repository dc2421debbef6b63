package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pixil98/go-errors"
)

type SessionConfig struct {
	// Path is the session save file. Created on first save.
	Path string `json:"path"`
}

func (c *SessionConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("path is required"))
	} else if dir := filepath.Dir(c.Path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			el.Add(fmt.Errorf("invalid save directory %q: %w", dir, err))
		}
	}

	return el.Err()
}

type GeneratorConfig struct {
	// Seed for the random event content generator. Zero seeds from the
	// clock at startup.
	Seed int64 `json:"seed"`

	// EventChance is the percent chance of a random event each turn.
	EventChance int `json:"event_chance"`
}

func (c *GeneratorConfig) validate() error {
	el := errors.NewErrorList()

	if c.EventChance < 0 || c.EventChance > 100 {
		el.Add(fmt.Errorf("event_chance must be between 0 and 100"))
	}

	return el.Err()
}
