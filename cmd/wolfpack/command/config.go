package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string          `json:"tick_interval"`
	Storage      StorageConfig   `json:"storage"`
	Session      SessionConfig   `json:"session"`
	Nats         NatsConfig      `json:"nats"`
	Generator    GeneratorConfig `json:"generator"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("tick_interval must be at least 1 second"))
		}
	}

	el.Add(c.Storage.validate())
	el.Add(c.Session.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Generator.validate())

	return el.Err()
}
