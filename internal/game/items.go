package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// ItemType categorizes an item and decides which stat it moves when the
// item is used.
type ItemType string

const (
	ItemFood    ItemType = "food"
	ItemHerb    ItemType = "herb"
	ItemTool    ItemType = "tool"
	ItemKeyItem ItemType = "key-item"
)

func (t ItemType) Validate() error {
	switch t {
	case ItemFood, ItemHerb, ItemTool, ItemKeyItem:
		return nil
	default:
		return fmt.Errorf("unknown item type: %s", t)
	}
}

// Item is a single carried object. An item is owned exclusively by the
// inventory it was added to and disappears when consumed or removed.
type Item struct {
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	EffectValue int      `json:"effect_value"`
	Description string   `json:"description,omitempty"`
}

func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.Name == "" {
		el.Add(fmt.Errorf("name must be set"))
	}
	el.Add(i.Type.Validate())

	return el.Err()
}

// MaxItems is the inventory capacity.
const MaxItems = 10

// Inventory holds items in insertion order, bounded by MaxItems.
// Item names are not required to be unique; lookups take the first match.
type Inventory struct {
	Items []Item `json:"items,omitempty"`
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends an item to the end of the inventory. Returns
// ErrInventoryFull, without mutating anything, when already at capacity.
func (inv *Inventory) Add(name string, t ItemType, value int, desc string) error {
	if inv.Full() {
		return ErrInventoryFull
	}
	inv.Items = append(inv.Items, Item{
		Name:        name,
		Type:        t,
		EffectValue: value,
		Description: desc,
	})
	return nil
}

// Use consumes the first item matching name and applies its effect to the
// wolf. The item type picks the stat: food feeds (lowers hunger), herbs
// heal, tools restore energy, and key items raise reputation. A negative
// effect value swings the same stat the other way. Returns
// ErrItemNotFound if no item matches.
func (inv *Inventory) Use(name string, w *Wolf) error {
	idx := inv.find(name)
	if idx < 0 {
		return ErrItemNotFound
	}

	item := inv.Items[idx]
	switch item.Type {
	case ItemFood:
		w.Feed(item.EffectValue)
	case ItemHerb:
		w.Heal(item.EffectValue)
	case ItemTool:
		w.Restore(item.EffectValue)
	case ItemKeyItem:
		w.Impress(item.EffectValue)
	}

	inv.removeAt(idx)
	return nil
}

// Remove discards the first item matching name. Removing a name that
// isn't carried is a no-op, not an error.
func (inv *Inventory) Remove(name string) {
	if idx := inv.find(name); idx >= 0 {
		inv.removeAt(idx)
	}
}

// Full reports whether the inventory is at capacity.
func (inv *Inventory) Full() bool {
	return len(inv.Items) >= MaxItems
}

// Len returns the number of carried items.
func (inv *Inventory) Len() int {
	return len(inv.Items)
}

// Describe returns indented lines describing the carried items.
// Returns ["  Nothing"] if the inventory is empty.
func (inv *Inventory) Describe() []string {
	if inv == nil || len(inv.Items) == 0 {
		return []string{"  Nothing"}
	}
	lines := make([]string, 0, len(inv.Items))
	for _, item := range inv.Items {
		lines = append(lines, fmt.Sprintf("  %s - %s", item.Name, item.Description))
	}
	return lines
}

// Validate checks the inventory invariants on load.
func (inv *Inventory) Validate() error {
	el := errors.NewErrorList()

	if len(inv.Items) > MaxItems {
		el.Add(fmt.Errorf("inventory holds %d items, max is %d", len(inv.Items), MaxItems))
	}
	for i := range inv.Items {
		el.Add(inv.Items[i].Validate())
	}

	return el.Err()
}

func (inv *Inventory) find(name string) int {
	for i := range inv.Items {
		if inv.Items[i].Name == name {
			return i
		}
	}
	return -1
}

func (inv *Inventory) removeAt(idx int) {
	inv.Items = append(inv.Items[:idx], inv.Items[idx+1:]...)
}
