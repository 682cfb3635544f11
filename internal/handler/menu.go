package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftrpg/engine/internal/core/event"
	"github.com/craftrpg/engine/internal/data"
	"github.com/craftrpg/engine/internal/world"
	"go.uber.org/zap"
)

// Back is the way out of every sub-menu. It is always the last option.
const Back = "Back"

// RegisterAll registers the top-level menu actions. Quit is registered last
// so the last option always leaves the game.
func RegisterAll(reg *Registry) {
	reg.Register("Explore", nil, func(g Game, _ *Deps) error {
		return g.Explore()
	})
	reg.Register("Mine", nil, func(g Game, _ *Deps) error {
		return g.Mine()
	})
	reg.Register("Inventory", nil, HandleInventory)
	reg.Register("Craft", func(_ Game, deps *Deps) bool {
		return len(deps.Recipes.List(false)) > 0
	}, func(g Game, deps *Deps) error {
		return handleRecipe(g, deps, false)
	})
	reg.Register("Smelt", func(g Game, deps *Deps) bool {
		return len(deps.Recipes.List(true)) > 0 && hasStation(g, deps)
	}, func(g Game, deps *Deps) error {
		return handleRecipe(g, deps, true)
	})
	reg.Register("Eat", func(g Game, deps *Deps) bool {
		return len(heldFoods(g, deps)) > 0
	}, HandleEat)
	reg.Register("Equip", func(g Game, _ *Deps) bool {
		return len(g.Player().Equipment.Weapons()) > 0
	}, HandleEquip)
	reg.Register("Quit", nil, func(Game, *Deps) error {
		return ErrQuit
	})
}

// Run plays world turns until the player dies, quits, or ctx is cancelled.
// It returns the terminal state when the player died, nil otherwise.
func Run(ctx context.Context, g Game, reg *Registry, deps *Deps) (*GameOver, error) {
	for {
		if over := g.Over(); over != nil {
			deps.Bus.Flush()
			deps.Log.Info("game over", zap.Int("score", over.Score), zap.String("cause", over.Cause))
			return over, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		g.Tick()
		if g.Over() != nil {
			continue
		}
		p := g.Player()
		event.Emit(deps.Bus, event.Messagef("HP: %d/%d", p.Health, p.MaxHealth()))
		event.Emit(deps.Bus, event.HungerChanged{Hunger: p.Hunger, Max: p.MaxHunger(), Saturation: p.Saturation})

		options := reg.Available(g, deps)
		choice := options[deps.Choose(options...)]
		deps.Log.Debug("menu action", zap.String("action", choice))
		err := reg.Dispatch(choice, g, deps)
		if errors.Is(err, ErrQuit) {
			deps.Bus.Flush()
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// HandleInventory lists held items and owned tools.
func HandleInventory(g Game, deps *Deps) error {
	p := g.Player()
	stacks := p.Inventory.Stacks()
	tools := p.Equipment.Tools()
	if len(stacks) == 0 && len(tools) == 0 {
		event.Emit(deps.Bus, event.Message{Text: "There is nothing in your inventory"})
		return nil
	}
	event.Emit(deps.Bus, event.Message{Text: "Your inventory:"})
	for _, s := range stacks {
		event.Emit(deps.Bus, event.Messagef("%dx %s", s.Count, s.Item))
	}
	weapon := p.Equipment.Weapon()
	for _, t := range tools {
		suffix := ""
		if t == weapon {
			suffix = " (equipped)"
		}
		event.Emit(deps.Bus, event.Messagef("%s %d/%d%s", t.Name, max(t.Durability, 0), t.MaxDurability, suffix))
	}
	event.Emit(deps.Bus, event.Messagef("Experience: %d", p.Experience))
	return nil
}

func hasStation(g Game, deps *Deps) bool {
	for _, r := range deps.Recipes.List(true) {
		if g.Player().Inventory.Has(r.Station, 1) {
			return true
		}
	}
	return false
}

func handleRecipe(g Game, deps *Deps, smelt bool) error {
	recipes := deps.Recipes.List(smelt)
	options := make([]string, 0, len(recipes)+1)
	for _, r := range recipes {
		options = append(options, r.Name)
	}
	options = append(options, Back)

	i := deps.Choose(options...)
	if i == len(recipes) {
		return nil
	}
	var err error
	if smelt {
		_, err = g.Smelt(recipes[i])
	} else {
		_, err = g.Craft(recipes[i])
	}
	return err
}

func heldFoods(g Game, deps *Deps) []*data.Food {
	var out []*data.Food
	for _, s := range g.Player().Inventory.Stacks() {
		if f := deps.Foods.Get(s.Item); f != nil {
			out = append(out, f)
		}
	}
	return out
}

// HandleEat offers the held foods.
func HandleEat(g Game, deps *Deps) error {
	foods := heldFoods(g, deps)
	options := make([]string, 0, len(foods)+1)
	for _, f := range foods {
		options = append(options, f.Name)
	}
	options = append(options, Back)

	i := deps.Choose(options...)
	if i == len(foods) {
		return nil
	}
	_, err := g.Eat(foods[i].Name)
	return err
}

// HandleEquip offers the owned weapons and fighting unarmed.
func HandleEquip(g Game, deps *Deps) error {
	weapons := g.Player().Equipment.Weapons()
	options := make([]string, 0, len(weapons)+2)
	for _, w := range weapons {
		options = append(options, weaponLabel(w))
	}
	options = append(options, "Unarmed", Back)

	i := deps.Choose(options...)
	switch {
	case i < len(weapons):
		g.EquipWeapon(weapons[i])
	case i == len(weapons):
		g.Unequip()
	}
	return nil
}

func weaponLabel(t *world.Tool) string {
	return fmt.Sprintf("%s (%d dmg)", t.Name, t.Combat.Damage)
}
