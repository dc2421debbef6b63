package driver

import (
	"context"
	"fmt"
	"time"
)

const DefaultTickLength = 2 * time.Second

// Ticker is anything the driver advances once per turn.
type Ticker interface {
	Tick(context.Context) error
}

// GameDriver turns wall-clock time into game turns. The engine itself
// is synchronous; this is the single loop that drives it, so everything
// downstream of Tick runs on one goroutine.
type GameDriver struct {
	tickLength time.Duration
	tickers    []Ticker
}

func NewGameDriver(tickers []Ticker, opts ...GameDriverOpt) *GameDriver {
	d := &GameDriver{
		tickLength: DefaultTickLength,
		tickers:    tickers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start runs turns until ctx is cancelled. The first turn runs
// immediately so a fresh session narrates without waiting out a full
// interval.
func (d *GameDriver) Start(ctx context.Context) error {
	if err := d.Tick(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := d.Tick(ctx); err != nil {
				return err
			}
		}
	}
}

// Tick advances every registered ticker once, in registration order.
func (d *GameDriver) Tick(ctx context.Context) error {
	for _, t := range d.tickers {
		if err := t.Tick(ctx); err != nil {
			return fmt.Errorf("running turn: %w", err)
		}
	}
	return nil
}
