package engine

import (
	"context"
	"fmt"

	"github.com/feralgames/go-wolfpack/internal/display"
	"github.com/feralgames/go-wolfpack/internal/events"
	"github.com/feralgames/go-wolfpack/internal/game"
	"github.com/feralgames/go-wolfpack/internal/story"
	"github.com/pixil98/go-log"
)

// Daily upkeep applied at the end of every playing turn.
const (
	dailyHunger  = 8
	dailyFatigue = 5
)

// Publisher delivers turn narration to whatever front end is attached.
type Publisher interface {
	PublishNarration(data []byte) error
}

// Engine is the session controller: it owns the wolf, the story tree
// and the event queue, and drives them one turn at a time. All methods
// are synchronous and must be called from a single driving loop.
type Engine struct {
	wolf   *game.Wolf
	story  *story.Tree
	events *events.Manager
	gen    *events.Generator

	day    int
	state  State
	choice Choice

	// LIFO undo stack and FIFO multi-turn action queue
	history []Snapshot
	actions []string

	pub      Publisher
	savePath string
}

// NewEngine creates a session positioned at the story root on day 1.
func NewEngine(tree *story.Tree, opts ...Opt) *Engine {
	e := &Engine{
		wolf:   game.NewWolf(),
		story:  tree,
		events: events.NewManager(),
		day:    1,
		state:  StateStartScreen,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Player returns the wolf. Read-only use by front ends; mutation goes
// through Tick and the explicit commands.
func (e *Engine) Player() *game.Wolf {
	return e.wolf
}

// StoryNode returns the node the player is currently at.
func (e *Engine) StoryNode() *story.Node {
	return e.story.Current()
}

// Events returns the event queue, the injection point for externally
// authored event content.
func (e *Engine) Events() *events.Manager {
	return e.events
}

// Day returns the current day, starting at 1.
func (e *Engine) Day() int {
	return e.day
}

// CurrentState returns where the session is in its lifecycle.
func (e *Engine) CurrentState() State {
	return e.state
}

// Choose records the player's pick for the current scenario. The story
// advances on the next turn. Picks after the session has finished are
// ignored.
func (e *Engine) Choose(c Choice) {
	if e.state.Terminal() {
		return
	}
	e.choice = c
}

// Tick runs one turn: trigger and process a pending event, advance the
// story per the recorded choice, apply one due multi-turn action, pay
// daily upkeep, then check for death or an ending.
func (e *Engine) Tick(ctx context.Context) error {
	logger := log.GetLogger(ctx)

	switch {
	case e.state == StateStartScreen:
		e.state = StatePlaying
		e.publish([]string{e.story.Current().Scenario})
		return nil
	case e.state.Terminal():
		// Finished sessions idle until a new game or a load.
		return nil
	}

	// Snapshot before any mutation so the turn can be undone.
	e.SaveState()

	var lines []string

	if e.gen != nil {
		if _, err := e.gen.MaybeTrigger(e.events); err != nil {
			return fmt.Errorf("triggering event: %w", err)
		}
	}

	if e.events.HasPending() {
		// Transitional within the turn; see StateEventTriggered.
		e.state = StateEventTriggered
		ev, err := e.events.ProcessNext(e.wolf)
		if err != nil {
			return fmt.Errorf("processing event: %w", err)
		}
		lines = append(lines, fmt.Sprintf("%s! %s", ev.Title, ev.Description))
		e.state = StatePlaying
	}

	switch e.choice {
	case ChoiceA:
		e.story.MoveLeft()
	case ChoiceB:
		e.story.MoveRight()
	}
	e.choice = ChoiceNone

	if id, ok := e.applyDueAction(); ok {
		lines = append(lines, fmt.Sprintf("The %s you set out on pays off.", id))
	}

	e.wolf.ApplyEffect(game.Effect{Hunger: dailyHunger, Energy: -dailyFatigue})
	e.day++

	node := e.story.Current()
	switch {
	case !e.wolf.Alive():
		e.state = StateGameOver
		logger.Infof("wolf died on day %d", e.day)
		lines = append(lines, "Your strength gives out. The valley falls silent.")
	case node.Ending:
		lines = append(lines, node.EndingText)
		if node.Outcome == story.OutcomeVictory {
			e.state = StateVictory
		} else {
			e.state = StateGameOver
		}
		logger.Infof("story ended on day %d: %s", e.day, node.Outcome)
	default:
		lines = append(lines, node.Scenario)
	}

	e.publish(lines)
	return nil
}

// publish sends narration to the attached front end, if any.
func (e *Engine) publish(lines []string) {
	if e.pub == nil {
		return
	}
	header := fmt.Sprintf("Day %d", e.day)
	text := display.Paragraphs(append([]string{header}, lines...))
	// Narration is best effort; a deaf front end must not stop the game.
	_ = e.pub.PublishNarration([]byte(text))
}
