package world

import (
	"errors"
	"fmt"
)

// ErrInsufficientItems is returned when removing more of an item than is
// held. It is a caller contract violation, not a gameplay event.
var ErrInsufficientItems = errors.New("insufficient items")

// Stack is one inventory line.
type Stack struct {
	Item  string
	Count int
}

// Inventory holds counted items in first-acquired order.
// Accessed only from the session goroutine.
type Inventory struct {
	counts map[string]int
	order  []string
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{counts: make(map[string]int)}
}

// Add stores n of item. n <= 0 is ignored.
func (inv *Inventory) Add(item string, n int) {
	if n <= 0 {
		return
	}
	if _, ok := inv.counts[item]; !ok {
		inv.order = append(inv.order, item)
	}
	inv.counts[item] += n
}

// Remove takes n of item. Taking more than held fails and leaves the
// inventory unchanged.
func (inv *Inventory) Remove(item string, n int) error {
	have := inv.counts[item]
	if n <= 0 {
		return nil
	}
	if have < n {
		return fmt.Errorf("%w: remove %d %s, have %d", ErrInsufficientItems, n, item, have)
	}
	if have == n {
		delete(inv.counts, item)
		for i, name := range inv.order {
			if name == item {
				inv.order = append(inv.order[:i], inv.order[i+1:]...)
				break
			}
		}
		return nil
	}
	inv.counts[item] = have - n
	return nil
}

// Count returns how many of item are held.
func (inv *Inventory) Count(item string) int {
	return inv.counts[item]
}

// Has reports whether at least n of item are held.
func (inv *Inventory) Has(item string, n int) bool {
	return inv.counts[item] >= n
}

// Len returns the number of distinct items.
func (inv *Inventory) Len() int {
	return len(inv.order)
}

// Stacks returns the held items in first-acquired order.
func (inv *Inventory) Stacks() []Stack {
	out := make([]Stack, 0, len(inv.order))
	for _, name := range inv.order {
		out = append(out, Stack{Item: name, Count: inv.counts[name]})
	}
	return out
}
