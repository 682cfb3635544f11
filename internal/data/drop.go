package data

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTable marks a static data file that failed validation. It is a
// configuration error: the game does not start.
var ErrInvalidTable = errors.New("invalid data table")

// ExperienceItem is the reserved drop that credits experience instead of
// adding an inventory item.
const ExperienceItem = "experience"

// Quantity is a fixed amount or an inclusive [Min, Max] range. In YAML it is
// either an integer or a two-element ascending list.
type Quantity struct {
	Min int
	Max int
}

// Fixed reports whether the quantity needs no roll.
func (q Quantity) Fixed() bool { return q.Min == q.Max }

func (q *Quantity) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var v int
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("%w: line %d: quantity must be an integer or a 2-item list", ErrInvalidTable, n.Line)
		}
		q.Min, q.Max = v, v
		return nil
	case yaml.SequenceNode:
		var v []int
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("%w: line %d: quantity range must hold integers", ErrInvalidTable, n.Line)
		}
		if len(v) != 2 {
			return fmt.Errorf("%w: line %d: a range must have exactly one start and one end, got %d values", ErrInvalidTable, n.Line, len(v))
		}
		if v[0] > v[1] {
			return fmt.Errorf("%w: line %d: range start %d is above end %d", ErrInvalidTable, n.Line, v[0], v[1])
		}
		q.Min, q.Max = v[0], v[1]
		return nil
	}
	return fmt.Errorf("%w: line %d: quantity must be an integer or a 2-item list", ErrInvalidTable, n.Line)
}

// Chance is a Num/Den fraction. The zero value means certain.
type Chance struct {
	Num int
	Den int
}

// Certain reports whether the chance always passes.
func (c Chance) Certain() bool {
	return c.Den == 0 || c.Num >= c.Den
}

func (c Chance) String() string {
	if c.Den == 0 {
		return "1/1"
	}
	return fmt.Sprintf("%d/%d", c.Num, c.Den)
}

func (c *Chance) UnmarshalYAML(n *yaml.Node) error {
	var v []int
	if n.Kind != yaml.SequenceNode || n.Decode(&v) != nil {
		return fmt.Errorf("%w: line %d: chance must be a [numerator, denominator] list", ErrInvalidTable, n.Line)
	}
	if len(v) != 2 {
		return fmt.Errorf("%w: line %d: chance must have exactly 2 values, got %d", ErrInvalidTable, n.Line, len(v))
	}
	if v[1] <= 0 || v[0] < 0 || v[0] > v[1] {
		return fmt.Errorf("%w: line %d: chance %d/%d is outside [0, 1]", ErrInvalidTable, n.Line, v[0], v[1])
	}
	c.Num, c.Den = v[0], v[1]
	return nil
}

// DropEntry is one line of a creature's death-drop table.
type DropEntry struct {
	Item     string   `yaml:"item"`
	Quantity Quantity `yaml:"quantity"`
	Chance   Chance   `yaml:"chance"`
}

// UnmarshalYAML requires the quantity key; a drop without one could never
// yield anything.
func (d *DropEntry) UnmarshalYAML(n *yaml.Node) error {
	type plain DropEntry
	var v plain
	if err := n.Decode(&v); err != nil {
		return err
	}
	if !hasKey(n, "quantity") {
		return fmt.Errorf("%w: line %d: drop %q needs a quantity", ErrInvalidTable, n.Line, v.Item)
	}
	*d = DropEntry(v)
	return nil
}

func hasKey(n *yaml.Node, key string) bool {
	if n.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}

func (d DropEntry) validate() error {
	if d.Item == "" {
		return fmt.Errorf("drop entry needs an item")
	}
	if d.Quantity.Min > d.Quantity.Max {
		return fmt.Errorf("drop %q: quantity range %d..%d is descending", d.Item, d.Quantity.Min, d.Quantity.Max)
	}
	if d.Quantity.Min < 0 || d.Quantity.Max < 1 {
		return fmt.Errorf("drop %q: quantity %d..%d can never drop anything", d.Item, d.Quantity.Min, d.Quantity.Max)
	}
	if d.Chance.Den < 0 || d.Chance.Num < 0 || (d.Chance.Den > 0 && d.Chance.Num > d.Chance.Den) {
		return fmt.Errorf("drop %q: chance %s is outside [0, 1]", d.Item, d.Chance)
	}
	return nil
}
