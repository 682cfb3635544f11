package handler

import (
	"github.com/craftrpg/engine/internal/config"
	"github.com/craftrpg/engine/internal/core/event"
	"github.com/craftrpg/engine/internal/core/rng"
	"github.com/craftrpg/engine/internal/data"
	"github.com/craftrpg/engine/internal/scripting"
	"github.com/craftrpg/engine/internal/world"
	"go.uber.org/zap"
)

// Deps holds shared dependencies injected into the session and all menu
// handlers. Tables are immutable after load.
type Deps struct {
	Config    *config.Config
	Log       *zap.Logger
	Scripting *scripting.Engine
	Creatures *data.CreatureTable
	Tools     *data.ToolTable
	Recipes   *data.RecipeTable
	Foods     *data.FoodTable
	Mining    *data.MiningTable
	Bus       *event.Bus
	Rand      rng.Source
	Prompt    Prompter
}

// Prompter is the choice-request primitive: it shows labeled options and
// returns the 0-based index of the one picked. Implementations always return
// a valid index.
type Prompter interface {
	Choose(options ...string) int
}

// Choose flushes pending notifications and then asks the player. Every
// prompt in the game goes through here so lines are never shown out of order.
func (d *Deps) Choose(options ...string) int {
	d.Bus.Flush()
	i := d.Prompt.Choose(options...)
	if i < 0 || i >= len(options) {
		d.Log.Warn("prompter returned out-of-range choice", zap.Int("choice", i), zap.Int("options", len(options)))
		return len(options) - 1
	}
	return i
}

// GameOver is the terminal state of a session.
type GameOver struct {
	Score int
	Cause string
}

// Game is the session as seen by menu handlers.
type Game interface {
	Player() *world.Player
	Tick()
	Over() *GameOver

	Explore() error
	Mine() error
	Craft(r *data.Recipe) (bool, error)
	Smelt(r *data.Recipe) (bool, error)
	Eat(item string) (bool, error)
	EquipWeapon(t *world.Tool)
	Unequip()
}
