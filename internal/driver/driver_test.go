package driver

import (
	"context"
	"fmt"
	"testing"

	"github.com/pixil98/go-testutil"
)

type countingTicker struct {
	ticks int
	err   error
}

func (c *countingTicker) Tick(ctx context.Context) error {
	c.ticks++
	return c.err
}

func TestGameDriver_TickRunsAllTickers(t *testing.T) {
	a := &countingTicker{}
	b := &countingTicker{}
	d := NewGameDriver([]Ticker{a, b})

	if err := d.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "first ticker", a.ticks, 1)
	testutil.AssertEqual(t, "second ticker", b.ticks, 1)
}

func TestGameDriver_TickStopsOnError(t *testing.T) {
	failing := &countingTicker{err: fmt.Errorf("turn went wrong")}
	after := &countingTicker{}
	d := NewGameDriver([]Ticker{failing, after})

	if err := d.Tick(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	testutil.AssertEqual(t, "later ticker skipped", after.ticks, 0)
}

func TestGameDriver_StartRunsFirstTurnImmediately(t *testing.T) {
	c := &countingTicker{}
	d := NewGameDriver([]Ticker{c})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "immediate turn", c.ticks, 1)
}
