package data

import (
	"fmt"
	"os"
	"strings"

	"github.com/craftrpg/engine/internal/core/rng"
	"gopkg.in/yaml.v3"
)

// Behavior decides whether a creature attacks, and whether the player flees
// or ignores it.
type Behavior int

const (
	BehaviorUnset Behavior = iota // record had no behavior key
	Passive                       // never attacks, even when attacked
	Neutral                       // fights back once attacked
	Hostile                       // attacks on sight
)

func (b Behavior) String() string {
	switch b {
	case Passive:
		return "passive"
	case Neutral:
		return "neutral"
	case Hostile:
		return "hostile"
	}
	return fmt.Sprintf("behavior(%d)", int(b))
}

// ParseBehavior maps the YAML behavior string to a Behavior.
func ParseBehavior(s string) (Behavior, error) {
	switch strings.ToLower(s) {
	case "passive":
		return Passive, nil
	case "neutral":
		return Neutral, nil
	case "hostile":
		return Hostile, nil
	}
	return 0, fmt.Errorf("%w: invalid behavior type %q", ErrInvalidTable, s)
}

func (b *Behavior) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return fmt.Errorf("%w: line %d: behavior must be a string", ErrInvalidTable, n.Line)
	}
	v, err := ParseBehavior(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// CreatureTemplate is the immutable archetype of a creature kind.
type CreatureTemplate struct {
	Name           string      `yaml:"name"`
	HP             int         `yaml:"hp"`
	Behavior       Behavior    `yaml:"behavior"`
	AttackStrength *int        `yaml:"attack_strength"` // required unless passive
	Drops          []DropEntry `yaml:"drops"`
	NightOnly      bool        `yaml:"night_mob"`
	SpawnWeight    *int        `yaml:"spawn_weight"` // nil = 1
}

// Strength returns the attack strength, 0 for passive creatures without one.
func (c *CreatureTemplate) Strength() int {
	if c.AttackStrength == nil {
		return 0
	}
	return *c.AttackStrength
}

// Weight returns the spawn weight, 1 when none was given.
func (c *CreatureTemplate) Weight() int {
	if c.SpawnWeight == nil {
		return 1
	}
	return *c.SpawnWeight
}

func (c *CreatureTemplate) validate() error {
	if c.Name == "" {
		return fmt.Errorf("creature needs a name")
	}
	if c.Behavior == BehaviorUnset {
		return fmt.Errorf("creature %q: missing behavior", c.Name)
	}
	if c.HP <= 0 {
		return fmt.Errorf("creature %q: hp must be positive, got %d", c.Name, c.HP)
	}
	if c.Behavior != Passive && c.AttackStrength == nil {
		return fmt.Errorf("creature %q: non-passive creatures require an attack strength", c.Name)
	}
	if c.AttackStrength != nil && *c.AttackStrength < 0 {
		return fmt.Errorf("creature %q: attack strength must not be negative", c.Name)
	}
	if c.SpawnWeight != nil && *c.SpawnWeight <= 0 {
		return fmt.Errorf("creature %q: spawn weight must be positive, got %d", c.Name, *c.SpawnWeight)
	}
	for _, d := range c.Drops {
		if err := d.validate(); err != nil {
			return fmt.Errorf("creature %q: %w", c.Name, err)
		}
	}
	return nil
}

type creatureListFile struct {
	Creatures []CreatureTemplate `yaml:"creatures"`
}

// CreatureTable holds all creature archetypes by name plus the day and night
// spawn pools. Immutable after construction.
type CreatureTable struct {
	templates map[string]*CreatureTemplate
	order     []string
	day       *rng.WeightedList[*CreatureTemplate]
	night     *rng.WeightedList[*CreatureTemplate]
}

// LoadCreatureTable loads creature archetypes from a YAML file.
func LoadCreatureTable(path string) (*CreatureTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read creature_list: %w", err)
	}
	var f creatureListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse creature_list: %w", err)
	}
	return NewCreatureTable(f.Creatures)
}

// NewCreatureTable validates the archetypes and builds the spawn pools. Day
// pools hold every creature without the night-only flag; night pools hold all.
func NewCreatureTable(list []CreatureTemplate) (*CreatureTable, error) {
	t := &CreatureTable{
		templates: make(map[string]*CreatureTemplate, len(list)),
		day:       rng.NewWeightedList[*CreatureTemplate](),
		night:     rng.NewWeightedList[*CreatureTemplate](),
	}
	for i := range list {
		c := &list[i]
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
		}
		if _, dup := t.templates[c.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate creature %q", ErrInvalidTable, c.Name)
		}
		t.templates[c.Name] = c
		t.order = append(t.order, c.Name)

		weight := float64(c.Weight())
		if err := t.night.Add(c, weight); err != nil {
			return nil, fmt.Errorf("%w: creature %q: %w", ErrInvalidTable, c.Name, err)
		}
		if !c.NightOnly {
			if err := t.day.Add(c, weight); err != nil {
				return nil, fmt.Errorf("%w: creature %q: %w", ErrInvalidTable, c.Name, err)
			}
		}
	}
	return t, nil
}

// Get returns an archetype by name, or nil if not found.
func (t *CreatureTable) Get(name string) *CreatureTemplate {
	return t.templates[name]
}

// Count returns the number of loaded archetypes.
func (t *CreatureTable) Count() int {
	return len(t.templates)
}

// Names returns archetype names in file order.
func (t *CreatureTable) Names() []string {
	return append([]string(nil), t.order...)
}

// Pick draws an archetype from the night or day pool by spawn weight.
func (t *CreatureTable) Pick(r rng.Source, night bool) (*CreatureTemplate, error) {
	if night {
		return t.night.Pick(r)
	}
	return t.day.Pick(r)
}
