package data

import (
	"fmt"
	"os"

	"github.com/craftrpg/engine/internal/core/rng"
	"gopkg.in/yaml.v3"
)

// Block is a mineable block. Tier is the minimum mining tier that can break it.
type Block struct {
	Name   string `yaml:"name"`
	Drop   string `yaml:"drop"` // item received; empty = Name
	Weight int    `yaml:"weight"`
	Tier   int    `yaml:"tier"`
}

// Item returns what mining the block yields.
func (b *Block) Item() string {
	if b.Drop == "" {
		return b.Name
	}
	return b.Drop
}

type blockListFile struct {
	Blocks []Block `yaml:"blocks"`
}

// MiningTable holds the mineable blocks.
type MiningTable struct {
	blocks []*Block
}

// LoadMiningTable loads mineable blocks from a YAML file.
func LoadMiningTable(path string) (*MiningTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read block_list: %w", err)
	}
	var f blockListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse block_list: %w", err)
	}
	return NewMiningTable(f.Blocks)
}

// NewMiningTable validates blocks.
func NewMiningTable(list []Block) (*MiningTable, error) {
	t := &MiningTable{blocks: make([]*Block, 0, len(list))}
	for i := range list {
		b := &list[i]
		if b.Name == "" || b.Weight <= 0 || b.Tier < 0 {
			return nil, fmt.Errorf("%w: block %q needs a name, positive weight and tier >= 0", ErrInvalidTable, b.Name)
		}
		t.blocks = append(t.blocks, b)
	}
	return t, nil
}

// Count returns the number of loaded blocks.
func (t *MiningTable) Count() int {
	return len(t.blocks)
}

// Pool returns a weighted list of the blocks a tool of the given tier can
// break. It may be empty.
func (t *MiningTable) Pool(tier int) *rng.WeightedList[*Block] {
	pool := rng.NewWeightedList[*Block]()
	for _, b := range t.blocks {
		if b.Tier <= tier {
			// Weight was validated positive.
			_ = pool.Add(b, float64(b.Weight))
		}
	}
	return pool
}
