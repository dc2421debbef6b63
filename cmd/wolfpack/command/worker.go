package command

import (
	"fmt"
	"os"
	"time"

	"github.com/feralgames/go-wolfpack/internal/driver"
	"github.com/feralgames/go-wolfpack/internal/engine"
	"github.com/feralgames/go-wolfpack/internal/events"
	"github.com/feralgames/go-wolfpack/internal/messaging"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Narration transport
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Story content
	tree, err := cfg.Storage.BuildStoryTree()
	if err != nil {
		return nil, fmt.Errorf("loading story: %w", err)
	}

	// Random event content
	seed := cfg.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := events.NewGenerator(seed, cfg.Generator.EventChance)

	eng := engine.NewEngine(tree,
		engine.WithPublisher(messaging.NewNarrationPublisher(natsServer)),
		engine.WithGenerator(gen),
		engine.WithSavePath(cfg.Session.Path),
	)

	// Resume a previous session if one exists
	if _, err := os.Stat(cfg.Session.Path); err == nil {
		if err := eng.Load(); err != nil {
			return nil, fmt.Errorf("resuming session: %w", err)
		}
	}

	var driverOpts []driver.GameDriverOpt
	if cfg.TickInterval != "" {
		d, err := time.ParseDuration(cfg.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing tick_interval: %w", err)
		}
		driverOpts = append(driverOpts, driver.WithTickLength(d))
	}

	gameDriver := driver.NewGameDriver([]driver.Ticker{eng}, driverOpts...)

	return service.WorkerList{
		"nats":   natsServer,
		"driver": gameDriver,
	}, nil
}
