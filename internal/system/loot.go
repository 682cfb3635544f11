package system

import (
	"github.com/craftrpg/engine/internal/core/event"
	"github.com/craftrpg/engine/internal/core/rng"
	"github.com/craftrpg/engine/internal/data"
	"github.com/craftrpg/engine/internal/handler"
	"github.com/craftrpg/engine/internal/world"
	"go.uber.org/zap"
)

// Drop is one resolved line of a death-drop table.
type Drop struct {
	Item  string
	Count int
}

// ResolveLoot rolls every entry of a drop table independently and hands the
// results to the player: experience to the score, everything else to the
// inventory. An entry yields only when its amount is positive and its chance
// passes.
func ResolveLoot(p *world.Player, drops []data.DropEntry, deps *handler.Deps) []Drop {
	var got []Drop
	for _, d := range drops {
		n := rollQuantity(deps.Rand, d.Quantity)
		hit := rollChance(deps.Rand, d.Chance)
		if n <= 0 || !hit {
			continue
		}
		if d.Item == data.ExperienceItem {
			p.AddExperience(n)
			event.Emit(deps.Bus, event.ExperienceGained{Amount: n, Total: p.Experience})
		} else {
			p.Inventory.Add(d.Item, n)
			event.Emit(deps.Bus, event.LootReceived{Item: d.Item, Count: n})
		}
		got = append(got, Drop{Item: d.Item, Count: n})
	}
	deps.Log.Debug("loot resolved", zap.Int("entries", len(drops)), zap.Int("yielded", len(got)))
	return got
}

func rollQuantity(r rng.Source, q data.Quantity) int {
	if q.Fixed() {
		return q.Min
	}
	return rng.Between(r, q.Min, q.Max)
}

// rollChance draws only for uncertain chances, so certain entries consume no
// randomness.
func rollChance(r rng.Source, c data.Chance) bool {
	if c.Certain() {
		return true
	}
	if c.Num <= 0 {
		return false
	}
	return rng.XInY(r, float64(c.Num), float64(c.Den))
}
