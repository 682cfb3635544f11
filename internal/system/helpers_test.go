package system

import (
	"testing"

	"github.com/craftrpg/engine/internal/config"
	"github.com/craftrpg/engine/internal/core/event"
	"github.com/craftrpg/engine/internal/core/rng"
	"github.com/craftrpg/engine/internal/data"
	"github.com/craftrpg/engine/internal/handler"
	"github.com/craftrpg/engine/internal/scripting"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// scriptedPrompt answers prompts from a queue and then keeps attacking.
type scriptedPrompt struct {
	picks []int
	asked [][]string
}

func (p *scriptedPrompt) Choose(options ...string) int {
	p.asked = append(p.asked, options)
	if len(p.picks) == 0 {
		return 0
	}
	i := p.picks[0]
	p.picks = p.picks[1:]
	return i
}

type fixture struct {
	deps   *handler.Deps
	prompt *scriptedPrompt
	lines  []string
	events []event.Event
}

func strength(n int) *int { return &n }

var testCreatures = []data.CreatureTemplate{
	{Name: "Cow", HP: 10, Behavior: data.Passive, Drops: []data.DropEntry{
		{Item: "Raw Beef", Quantity: data.Quantity{Min: 1, Max: 3}},
	}},
	{Name: "Zombie", HP: 20, Behavior: data.Hostile, AttackStrength: strength(3), NightOnly: true},
}

var testTools = []data.ToolTemplate{
	{Name: "Wooden Sword", Durability: 59, Combat: &data.CombatStats{Damage: 4, AttackSpeed: 1.6}},
	{Name: "Wooden Pickaxe", Durability: 59, Mining: &data.MiningStats{Multiplier: 2, Tier: 1}},
	{Name: "Stone Pickaxe", Durability: 131, Mining: &data.MiningStats{Multiplier: 4, Tier: 2}},
}

var testRecipes = []data.Recipe{
	{Name: "Wood Planks", Ingredients: map[string]int{"Wood": 1}, Yield: 4},
	{Name: "Stick", Ingredients: map[string]int{"Wood Planks": 2}, Yield: 4},
	{Name: "Crafting Table", Ingredients: map[string]int{"Wood Planks": 4}},
	{Name: "Wooden Pickaxe", Ingredients: map[string]int{"Wood Planks": 3, "Stick": 2}, Station: "Crafting Table"},
	{Name: "Furnace", Ingredients: map[string]int{"Cobblestone": 8}, Station: "Crafting Table"},
	{Name: "Cooked Beef", Ingredients: map[string]int{"Raw Beef": 1, "Coal": 1}, Station: "Furnace", Smelt: true, Seconds: 10},
}

var testFoods = []data.Food{
	{Name: "Cooked Beef", Hunger: 8, Saturation: 12},
	{Name: "Apple", Hunger: 4, Saturation: 2},
}

var testBlocks = []data.Block{
	{Name: "Stone", Drop: "Cobblestone", Weight: 10, Tier: 1},
	{Name: "Iron Ore", Weight: 2, Tier: 2},
}

func newFixture(t *testing.T, r rng.Source, creatures []data.CreatureTemplate) *fixture {
	t.Helper()
	if creatures == nil {
		creatures = testCreatures
	}
	ct, err := data.NewCreatureTable(creatures)
	require.NoError(t, err)
	tools, err := data.NewToolTable(testTools)
	require.NoError(t, err)
	recipes, err := data.NewRecipeTable(testRecipes)
	require.NoError(t, err)
	foods, err := data.NewFoodTable(testFoods)
	require.NoError(t, err)
	mining, err := data.NewMiningTable(testBlocks)
	require.NoError(t, err)

	log := zaptest.NewLogger(t)
	eng, err := scripting.NewEngine(t.TempDir(), log)
	require.NoError(t, err)
	t.Cleanup(eng.Close)

	f := &fixture{prompt: &scriptedPrompt{}}
	bus := event.NewBus()
	bus.SubscribeAll(func(ev event.Event) {
		f.events = append(f.events, ev)
		if line := ev.Line(); line != "" {
			f.lines = append(f.lines, line)
		}
	})
	f.deps = &handler.Deps{
		Config:    config.Default(),
		Log:       log,
		Scripting: eng,
		Creatures: ct,
		Tools:     tools,
		Recipes:   recipes,
		Foods:     foods,
		Mining:    mining,
		Bus:       bus,
		Rand:      r,
		Prompt:    f.prompt,
	}
	return f
}

func (f *fixture) session(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(f.deps)
	require.NoError(t, err)
	return s
}

// flush delivers pending events so assertions see every line.
func (f *fixture) flush() {
	f.deps.Bus.Flush()
}
