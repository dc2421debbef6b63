package game

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-errors"
)

// Stat bounds. Every stat mutation clamps into [MinStat, MaxStat].
const (
	MinStat = 0
	MaxStat = 100
)

// RestAmount is how much energy a single rest restores.
const RestAmount = 25

// Starting stats for a new wolf.
const (
	startHealth     = 100
	startHunger     = 50
	startEnergy     = 100
	startReputation = 50
)

// Wolf is the player character: four survival stats plus the inventory
// and pack it owns. Stats live in [0,100]; the wolf is alive while
// health is above zero.
type Wolf struct {
	Health     int `json:"health"`
	Hunger     int `json:"hunger"`
	Energy     int `json:"energy"`
	Reputation int `json:"reputation"`

	Inventory *Inventory `json:"inventory"`
	Pack      *Pack      `json:"pack"`
}

// NewWolf creates a wolf with starting stats and empty inventory and pack.
func NewWolf() *Wolf {
	return &Wolf{
		Health:     startHealth,
		Hunger:     startHunger,
		Energy:     startEnergy,
		Reputation: startReputation,
		Inventory:  NewInventory(),
		Pack:       NewPack(),
	}
}

func (w *Wolf) UnmarshalJSON(b []byte) error {
	type Alias Wolf
	if err := json.Unmarshal(b, (*Alias)(w)); err != nil {
		return err
	}
	if w.Inventory == nil {
		w.Inventory = NewInventory()
	}
	if w.Pack == nil {
		w.Pack = NewPack()
	}
	return nil
}

// UpdateStats overwrites all four stats. This is assignment, not a
// delta; values are clamped into range.
func (w *Wolf) UpdateStats(health, hunger, energy, reputation int) {
	w.Health = clampStat(health)
	w.Hunger = clampStat(hunger)
	w.Energy = clampStat(energy)
	w.Reputation = clampStat(reputation)
}

// Alive reports whether the wolf still lives.
func (w *Wolf) Alive() bool {
	return w.Health > 0
}

// Rest restores RestAmount energy, capped at MaxStat.
func (w *Wolf) Rest() {
	w.Energy = clampStat(w.Energy + RestAmount)
}

// Feed lowers hunger by amount, floored at MinStat.
func (w *Wolf) Feed(amount int) {
	w.Hunger = clampStat(w.Hunger - amount)
}

// TakeDamage lowers health by amount, floored at MinStat. The wolf dies
// when health reaches zero.
func (w *Wolf) TakeDamage(amount int) {
	w.Health = clampStat(w.Health - amount)
}

// Heal raises health by amount, capped at MaxStat.
func (w *Wolf) Heal(amount int) {
	w.Health = clampStat(w.Health + amount)
}

// Restore raises energy by amount, capped at MaxStat.
func (w *Wolf) Restore(amount int) {
	w.Energy = clampStat(w.Energy + amount)
}

// Impress raises reputation by amount, capped at MaxStat.
func (w *Wolf) Impress(amount int) {
	w.Reputation = clampStat(w.Reputation + amount)
}

// Effect is a bundle of stat deltas applied in one step, used by events
// and multi-turn actions. Positive hunger means hunger rises.
type Effect struct {
	Health     int `json:"health,omitempty"`
	Hunger     int `json:"hunger,omitempty"`
	Energy     int `json:"energy,omitempty"`
	Reputation int `json:"reputation,omitempty"`
}

// ApplyEffect adds each delta to its stat, clamping into range.
func (w *Wolf) ApplyEffect(e Effect) {
	w.Health = clampStat(w.Health + e.Health)
	w.Hunger = clampStat(w.Hunger + e.Hunger)
	w.Energy = clampStat(w.Energy + e.Energy)
	w.Reputation = clampStat(w.Reputation + e.Reputation)
}

// RecruitMember adds a new pack member with DefaultLoyalty.
func (w *Wolf) RecruitMember(name string, role Role) {
	w.Pack.Recruit(name, role)
}

// StatLines returns display lines for the wolf's current stats.
func (w *Wolf) StatLines() []string {
	return []string{
		fmt.Sprintf("Health: %d/%d", w.Health, MaxStat),
		fmt.Sprintf("Hunger: %d/%d", w.Hunger, MaxStat),
		fmt.Sprintf("Energy: %d/%d", w.Energy, MaxStat),
		fmt.Sprintf("Reputation: %d/%d", w.Reputation, MaxStat),
	}
}

// Validate checks the wolf invariants on load.
func (w *Wolf) Validate() error {
	el := errors.NewErrorList()

	for name, v := range map[string]int{
		"health":     w.Health,
		"hunger":     w.Hunger,
		"energy":     w.Energy,
		"reputation": w.Reputation,
	} {
		if v < MinStat || v > MaxStat {
			el.Add(fmt.Errorf("%s %d out of range [%d,%d]", name, v, MinStat, MaxStat))
		}
	}

	if w.Inventory != nil {
		el.Add(w.Inventory.Validate())
	}
	if w.Pack != nil {
		el.Add(w.Pack.Validate())
	}

	return el.Err()
}

func clampStat(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
