package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CombatStats makes a tool usable as a weapon.
type CombatStats struct {
	Damage      int     `yaml:"damage"`
	AttackSpeed float64 `yaml:"attack_speed"` // lower = creatures counterattack more often
}

// MiningStats makes a tool usable for mining.
type MiningStats struct {
	Multiplier float64 `yaml:"multiplier"`
	Tier       int     `yaml:"tier"`
}

// ToolTemplate holds static data for a craftable tool. Capabilities are
// optional blocks: a tool is a weapon iff Combat is set.
type ToolTemplate struct {
	Name       string       `yaml:"name"`
	Durability int          `yaml:"durability"`
	Combat     *CombatStats `yaml:"combat"`
	Mining     *MiningStats `yaml:"mining"`
}

func (t *ToolTemplate) validate() error {
	if t.Name == "" {
		return fmt.Errorf("tool needs a name")
	}
	if t.Durability < 0 {
		return fmt.Errorf("tool %q: durability must not be negative", t.Name)
	}
	if t.Combat == nil && t.Mining == nil {
		return fmt.Errorf("tool %q: needs combat or mining stats", t.Name)
	}
	if t.Combat != nil && (t.Combat.Damage <= 0 || t.Combat.AttackSpeed <= 0) {
		return fmt.Errorf("tool %q: combat damage and attack_speed must be positive", t.Name)
	}
	if t.Mining != nil && (t.Mining.Multiplier <= 0 || t.Mining.Tier < 0) {
		return fmt.Errorf("tool %q: mining multiplier must be positive and tier not negative", t.Name)
	}
	return nil
}

type toolListFile struct {
	Tools []ToolTemplate `yaml:"tools"`
}

// ToolTable holds all tool templates indexed by name.
type ToolTable struct {
	tools map[string]*ToolTemplate
}

// LoadToolTable loads tool templates from a YAML file.
func LoadToolTable(path string) (*ToolTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tool_list: %w", err)
	}
	var f toolListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse tool_list: %w", err)
	}
	return NewToolTable(f.Tools)
}

// NewToolTable validates and indexes tool templates.
func NewToolTable(list []ToolTemplate) (*ToolTable, error) {
	t := &ToolTable{tools: make(map[string]*ToolTemplate, len(list))}
	for i := range list {
		tool := &list[i]
		if err := tool.validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
		}
		if _, dup := t.tools[tool.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate tool %q", ErrInvalidTable, tool.Name)
		}
		t.tools[tool.Name] = tool
	}
	return t, nil
}

// Get returns a tool template by name, or nil if not found.
func (t *ToolTable) Get(name string) *ToolTemplate {
	return t.tools[name]
}

// Count returns the number of loaded tools.
func (t *ToolTable) Count() int {
	return len(t.tools)
}
