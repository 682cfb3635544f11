package world

import (
	"fmt"
	"strings"

	"github.com/craftrpg/engine/internal/data"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.English)

// Creature is the live instance met in an encounter. It lives until the
// encounter ends.
type Creature struct {
	Name           string
	HP             int
	Behavior       data.Behavior
	AttackStrength int
	Drops          []data.DropEntry

	Fleeing int // rounds left running away; 0 = not fleeing
	Fuse    int // creeper fuse counter
}

// NewCreature instantiates an archetype at full hit points.
func NewCreature(t *data.CreatureTemplate) *Creature {
	return &Creature{
		Name:           t.Name,
		HP:             t.HP,
		Behavior:       t.Behavior,
		AttackStrength: t.Strength(),
		Drops:          t.Drops,
	}
}

// SpawnCreature instantiates the named archetype.
func SpawnCreature(tbl *data.CreatureTable, name string) (*Creature, error) {
	t := tbl.Get(name)
	if t == nil {
		return nil, fmt.Errorf("spawn creature: unknown archetype %q", name)
	}
	return NewCreature(t), nil
}

// Noun is the name as used mid-sentence ("the zombie").
func (c *Creature) Noun() string {
	return lower.String(c.Name)
}

// IsCreeper reports whether the name ends with suffix, ignoring case.
func (c *Creature) IsCreeper(suffix string) bool {
	if suffix == "" {
		return false
	}
	return strings.HasSuffix(c.Noun(), lower.String(suffix))
}

// Damage subtracts hit points and reports whether the creature died.
func (c *Creature) Damage(n int) bool {
	if n > 0 {
		c.HP -= n
	}
	return c.Dead()
}

// Dead reports whether hit points reached zero.
func (c *Creature) Dead() bool {
	return c.HP <= 0
}
