package events

import (
	"bytes"
	"fmt"
	"math/rand"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/feralgames/go-wolfpack/internal/game"
)

// templateFuncs provides utility functions for content templates.
var templateFuncs = sprig.TxtFuncMap()

// contentEntry is one authored random event. Description is a
// text/template rendered against templateData.
type contentEntry struct {
	Title       string
	Description string
	Priority    int
	Effect      game.Effect
}

// templateData is what content templates can reference.
type templateData struct {
	Place    string
	Creature string
}

var places = []string{"the frozen creek", "the burn scar", "the old logging road", "the cedar grove"}

var creatures = []string{"raven", "lynx", "wolverine", "stag"}

// contentTable is the authored random event pool. Priorities follow the
// bands in event.go: threats are critical, opportunities are normal.
var contentTable = []contentEntry{
	{
		Title:       "Rival Pack",
		Description: "A rival pack crosses {{ .Place }}, hackles up. You give ground, but not quietly.",
		Priority:    PriorityCritical,
		Effect:      game.Effect{Health: -15, Reputation: -5},
	},
	{
		Title:       "Blizzard",
		Description: "A whiteout rolls over {{ .Place }}. You dig in and wait it out, shivering.",
		Priority:    PriorityCritical,
		Effect:      game.Effect{Energy: -20, Hunger: 10},
	},
	{
		Title:       "Snare Line",
		Description: "A trapper has strung wire along {{ .Place }}. You pull free, bleeding.",
		Priority:    PriorityUrgent,
		Effect:      game.Effect{Health: -10},
	},
	{
		Title:       "Found Carcass",
		Description: "A winter-killed {{ .Creature }} lies half-buried near {{ .Place }}. You eat your fill.",
		Priority:    PriorityNormal,
		Effect:      game.Effect{Hunger: -25},
	},
	{
		Title:       "Lone Howl",
		Description: "A distant howl answers yours from beyond {{ .Place }}. Word of you is spreading.",
		Priority:    PriorityNormal,
		Effect:      game.Effect{Reputation: 10},
	},
	{
		Title:       "Quiet Day",
		Description: "Nothing stirs but a {{ .Creature }} in the distance. You rest in {{ .Place | title }}'s pale sun.",
		Priority:    PriorityNormal,
		Effect:      game.Effect{Energy: 10},
	},
}

// GeneratorState is the persistable state of a Generator. Rolls counts
// the draws consumed so far, so a restored generator picks the stream up
// where the saved session left it.
type GeneratorState struct {
	Seed   int64  `json:"seed"`
	Chance int    `json:"chance"`
	Rolls  uint64 `json:"rolls,omitempty"`
}

// Generator produces random events from the authored content table.
// Content selection lives here, outside the queue itself; the manager
// only ever sees finished events arriving through Add.
type Generator struct {
	state GeneratorState
}

// NewGenerator creates a generator with the given seed and per-turn
// trigger chance (percent).
func NewGenerator(seed int64, chance int) *Generator {
	return &Generator{
		state: GeneratorState{Seed: seed, Chance: chance},
	}
}

// State returns the generator state for session persistence.
func (g *Generator) State() GeneratorState {
	return g.state
}

// Restore replaces the generator state from a persisted session. The
// next draw continues from the saved roll count rather than replaying
// the stream from the start.
func (g *Generator) Restore(state GeneratorState) {
	g.state = state
}

// roll returns a value in [0,n) derived from the seed and the draw
// counter. Deriving each draw independently keeps the sequence stable
// across save and restore without persisting rand internals.
func (g *Generator) roll(n int) int {
	src := rand.NewSource(g.state.Seed + int64(g.state.Rolls)*0x9E3779B9)
	g.state.Rolls++
	return rand.New(src).Intn(n)
}

// TriggerRandomEvent renders one random content entry into an Event and
// adds it to the manager.
func (g *Generator) TriggerRandomEvent(m *Manager) (Event, error) {
	entry := contentTable[g.roll(len(contentTable))]

	data := templateData{
		Place:    places[g.roll(len(places))],
		Creature: creatures[g.roll(len(creatures))],
	}

	desc, err := renderTemplate(entry.Description, data)
	if err != nil {
		return Event{}, fmt.Errorf("rendering event %q: %w", entry.Title, err)
	}

	ev := Event{
		Title:       entry.Title,
		Description: desc,
		Priority:    entry.Priority,
		Effect:      entry.Effect,
	}
	m.Add(ev)
	return ev, nil
}

// MaybeTrigger rolls the per-turn chance and, on success, generates an
// event. Returns false when the roll misses.
func (g *Generator) MaybeTrigger(m *Manager) (bool, error) {
	if g.roll(100) >= g.state.Chance {
		return false, nil
	}
	_, err := g.TriggerRandomEvent(m)
	if err != nil {
		return false, err
	}
	return true, nil
}

// renderTemplate expands a content template string with the provided data.
func renderTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
