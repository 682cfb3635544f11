package system

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/craftrpg/engine/internal/core/event"
	"github.com/craftrpg/engine/internal/core/rng"
	"github.com/craftrpg/engine/internal/data"
	"github.com/craftrpg/engine/internal/handler"
	"github.com/craftrpg/engine/internal/world"
	"go.uber.org/zap"
)

// Session is the single mutable game state: one player and the world
// activities available to them. It implements handler.Game.
type Session struct {
	deps   *handler.Deps
	player *world.Player

	finds *rng.WeightedList[string] // explore pool
	blast *rng.WeightedList[string] // creeper yield while exploring
	turns int
}

var _ handler.Game = (*Session)(nil)

// NewSession creates a fresh player with the configured vitals.
func NewSession(deps *handler.Deps) (*Session, error) {
	finds, err := weightedItems(deps.Config.Explore.Finds)
	if err != nil {
		return nil, fmt.Errorf("explore finds: %w", err)
	}
	blast, err := weightedItems(deps.Config.Creeper.ExploringYield)
	if err != nil {
		return nil, fmt.Errorf("creeper exploring yield: %w", err)
	}
	return &Session{
		deps:   deps,
		player: world.NewPlayer(deps.Config, deps.Rand, deps.Bus),
		finds:  finds,
		blast:  blast,
	}, nil
}

// weightedItems builds a weighted list from an item -> weight map, in name
// order so seeded runs repeat.
func weightedItems(m map[string]int) (*rng.WeightedList[string], error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	l := rng.NewWeightedList[string]()
	for _, name := range names {
		if err := l.Add(name, float64(m[name])); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return l, nil
}

func (s *Session) Player() *world.Player { return s.player }

// Turns returns the number of world turns played.
func (s *Session) Turns() int { return s.turns }

// Over returns the terminal state once the player has died.
func (s *Session) Over() *handler.GameOver {
	if !s.player.Dead() {
		return nil
	}
	return &handler.GameOver{Score: s.player.Experience, Cause: s.player.Cause()}
}

// Tick runs one world turn of vitals and clock.
func (s *Session) Tick() {
	s.turns++
	s.player.Tick()
}

// Explore travels for a while: maybe a creature, maybe something on the ground.
func (s *Session) Explore() error {
	cfg := s.deps.Config.Explore
	r := s.deps.Rand

	event.Emit(s.deps.Bus, event.Message{Text: "You explore for a while."})
	s.player.PassTime(cfg.Seconds)
	s.player.ModifyExhaustion(cfg.Exhaustion)

	if rng.OneIn(r, cfg.EncounterOneIn) {
		_, err := RunEncounter(s.player, Exploring, s.blast, s.deps)
		return err
	}
	if rng.OneIn(r, cfg.FindOneIn) {
		item, err := s.finds.Pick(r)
		if errors.Is(err, rng.ErrEmptySelection) {
			return nil
		}
		if err != nil {
			return err
		}
		s.player.Inventory.Add(item, 1)
		event.Emit(s.deps.Bus, event.Messagef("You found 1x %s", item))
	}
	return nil
}

// Mine breaks one block with the best owned mining tool. Without one, or
// when the tool's tier can break nothing, the player is told and no time
// passes.
func (s *Session) Mine() error {
	cfg := s.deps.Config.Mining
	r := s.deps.Rand
	eq := s.player.Equipment

	tool := eq.BestMiningTool()
	if tool == nil {
		event.Emit(s.deps.Bus, event.Message{Text: "You need a pickaxe to mine."})
		return nil
	}
	block, err := s.deps.Mining.Pool(tool.Mining.Tier).Pick(r)
	if errors.Is(err, rng.ErrEmptySelection) {
		event.Emit(s.deps.Bus, event.Messagef("There is nothing your %s can break.", tool.Name))
		return nil
	}
	if err != nil {
		return err
	}

	s.player.PassTime(int(math.Ceil(float64(cfg.Seconds) / tool.Mining.Multiplier)))
	s.player.ModifyExhaustion(cfg.Exhaustion)
	s.player.Inventory.Add(block.Item(), 1)
	event.Emit(s.deps.Bus, event.Messagef("You mine the %s.", block.Name))
	event.Emit(s.deps.Bus, event.LootReceived{Item: block.Item(), Count: 1})
	if _, broke := eq.Wear(tool); broke {
		event.Emit(s.deps.Bus, event.ToolBroke{Tool: tool.Name})
	}

	if rng.OneIn(r, cfg.EncounterOneIn) {
		_, err := RunEncounter(s.player, Mining, s.blast, s.deps)
		return err
	}
	return nil
}

// Craft applies a crafting recipe once. It reports false, after telling the
// player why, when the station or an ingredient is missing.
func (s *Session) Craft(r *data.Recipe) (bool, error) {
	if r.Smelt {
		return false, fmt.Errorf("craft %s: recipe is smelted", r.Name)
	}
	return s.apply(r, "craft")
}

// Smelt applies a smelting recipe once and spends its time.
func (s *Session) Smelt(r *data.Recipe) (bool, error) {
	if !r.Smelt {
		return false, fmt.Errorf("smelt %s: recipe is crafted", r.Name)
	}
	ok, err := s.apply(r, "smelt")
	if ok {
		s.player.PassTime(r.Seconds)
	}
	return ok, err
}

func (s *Session) apply(r *data.Recipe, verb string) (bool, error) {
	inv := s.player.Inventory
	if r.Station != "" && !inv.Has(r.Station, 1) {
		event.Emit(s.deps.Bus, event.Messagef("You need a %s to %s %s.", r.Station, verb, r.Name))
		return false, nil
	}
	names := r.IngredientNames()
	for _, item := range names {
		if need := r.Ingredients[item]; !inv.Has(item, need) {
			event.Emit(s.deps.Bus, event.Messagef("You need %dx %s, you have %d.", need, item, inv.Count(item)))
			return false, nil
		}
	}
	for _, item := range names {
		if err := inv.Remove(item, r.Ingredients[item]); err != nil {
			return false, fmt.Errorf("%s %s: %w", verb, r.Name, err)
		}
	}

	n := r.Output()
	if tmpl := s.deps.Tools.Get(r.Name); tmpl != nil {
		for i := 0; i < n; i++ {
			s.player.Equipment.Add(world.NewTool(tmpl))
		}
	} else {
		inv.Add(r.Name, n)
	}
	event.Emit(s.deps.Bus, event.LootReceived{Item: r.Name, Count: n})
	s.deps.Log.Debug("recipe applied", zap.String("recipe", r.Name), zap.String("verb", verb), zap.Int("count", n))
	return true, nil
}

// Eat consumes one unit of a held food. At full hunger nothing is eaten.
func (s *Session) Eat(item string) (bool, error) {
	food := s.deps.Foods.Get(item)
	if food == nil {
		return false, fmt.Errorf("eat %s: not edible", item)
	}
	if s.player.Hunger >= s.player.MaxHunger() {
		event.Emit(s.deps.Bus, event.Message{Text: "You are not hungry."})
		return false, nil
	}
	if err := s.player.Inventory.Remove(item, 1); err != nil {
		return false, fmt.Errorf("eat %s: %w", item, err)
	}
	event.Emit(s.deps.Bus, event.Messagef("You eat the %s.", item))
	return s.player.RestoreHunger(food.Hunger, food.Saturation), nil
}

// EquipWeapon wields an owned weapon.
func (s *Session) EquipWeapon(t *world.Tool) {
	s.player.Equipment.Equip(t)
	event.Emit(s.deps.Bus, event.Messagef("You equip the %s.", t.Name))
}

// Unequip puts the weapon away.
func (s *Session) Unequip() {
	if w := s.player.Equipment.Weapon(); w != nil {
		event.Emit(s.deps.Bus, event.Messagef("You put away the %s.", w.Name))
	}
	s.player.Equipment.Unequip()
}
