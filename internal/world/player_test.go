package world

import (
	"testing"

	"github.com/craftrpg/engine/internal/config"
	"github.com/craftrpg/engine/internal/core/event"
	"github.com/craftrpg/engine/internal/core/rng/rngtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(t *testing.T, mutate func(*config.Config)) (*Player, *rngtest.Source, *[]event.Event) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	bus := event.NewBus()
	var got []event.Event
	bus.SubscribeAll(func(ev event.Event) { got = append(got, ev) })
	src := rngtest.New()
	p := NewPlayer(cfg, src, bus)
	t.Cleanup(bus.Flush)
	return p, src, &got
}

func TestNewPlayerVitals(t *testing.T) {
	p, _, _ := newTestPlayer(t, nil)
	assert.Equal(t, 20, p.Health)
	assert.Equal(t, 20, p.Hunger)
	assert.Equal(t, 5, p.Saturation)
	assert.Zero(t, p.Exhaustion)
	assert.False(t, p.Dead())
}

func TestHealAtFullIsNoOp(t *testing.T) {
	p, _, _ := newTestPlayer(t, nil)
	assert.False(t, p.Heal(5))
	assert.Equal(t, 20, p.Health)
	assert.Zero(t, p.Exhaustion)
	assert.False(t, p.Heal(0))
	assert.False(t, p.Heal(-3))
}

func TestHealChargesRegenExhaustion(t *testing.T) {
	// A regen cost below the flush threshold keeps the accumulator observable.
	p, _, _ := newTestPlayer(t, func(c *config.Config) { c.Vitals.RegenExhaustion = 1.5 })
	p.Health = 17
	assert.True(t, p.Heal(5))
	assert.Equal(t, 20, p.Health)
	assert.InDelta(t, 1.5, p.Exhaustion, 1e-9)
}

func TestHealWithDefaultCostFlushes(t *testing.T) {
	p, _, _ := newTestPlayer(t, nil)
	p.Health = 17
	assert.True(t, p.Heal(5))
	// 6 >= 4: flushed into one saturation point straight away.
	assert.Equal(t, 4, p.Saturation)
	assert.Equal(t, 20, p.Hunger)
	assert.Zero(t, p.Exhaustion)
}

func TestModifyExhaustionDrainsSaturationFirst(t *testing.T) {
	p, _, got := newTestPlayer(t, nil)
	p.ModifyExhaustion(4.0)
	assert.Equal(t, 4, p.Saturation)
	assert.Equal(t, 20, p.Hunger)
	assert.Zero(t, p.Exhaustion)

	p.bus.Flush()
	require.NotEmpty(t, *got)
	assert.Equal(t, "Hunger: 20/20", (*got)[len(*got)-1].Line())
}

func TestModifyExhaustionDrainsHungerWithoutSaturation(t *testing.T) {
	p, _, _ := newTestPlayer(t, nil)
	p.Saturation = 0
	p.ModifyExhaustion(4.0)
	assert.Equal(t, 0, p.Saturation)
	assert.Equal(t, 19, p.Hunger)
	assert.Zero(t, p.Exhaustion)
}

func TestModifyExhaustionAccumulates(t *testing.T) {
	p, _, _ := newTestPlayer(t, nil)
	for i := 0; i < 39; i++ {
		p.ModifyExhaustion(0.1)
	}
	assert.Equal(t, 5, p.Saturation)
	assert.InDelta(t, 3.9, p.Exhaustion, 1e-9)
	p.ModifyExhaustion(0.2)
	assert.Equal(t, 4, p.Saturation)
	assert.Zero(t, p.Exhaustion)
}

func TestHungerFloorsAtZero(t *testing.T) {
	p, _, _ := newTestPlayer(t, nil)
	p.Saturation = 0
	p.Hunger = 0
	p.ModifyExhaustion(10)
	assert.Equal(t, 0, p.Hunger)
}

func TestDamage(t *testing.T) {
	p, _, got := newTestPlayer(t, nil)
	assert.False(t, p.Damage(0, Physical, ""))
	assert.False(t, p.Damage(-2, Physical, ""))
	assert.Equal(t, 20, p.Health)

	assert.False(t, p.Damage(3, Physical, "Zombie"))
	assert.Equal(t, 17, p.Health)
	assert.InDelta(t, 0.3, p.Exhaustion, 1e-9)

	assert.False(t, p.Damage(3, Blast, "Creeper"))
	assert.Equal(t, 14, p.Health)
	assert.InDelta(t, 0.3, p.Exhaustion, 1e-9, "blasts cost no exhaustion")

	p.bus.Flush()
	require.Len(t, *got, 2)
	assert.Equal(t, "You take 3 damage! HP: 17/20", (*got)[0].Line())
}

func TestDeathIsTerminal(t *testing.T) {
	p, _, got := newTestPlayer(t, nil)
	p.Experience = 1500
	assert.True(t, p.Damage(25, Physical, "Was slain by a zombie."))
	assert.True(t, p.Dead())
	assert.Equal(t, 0, p.Health)
	assert.Equal(t, "Was slain by a zombie.", p.Cause())

	// Further damage and healing are ignored.
	assert.False(t, p.Damage(5, Physical, "again"))
	assert.False(t, p.Heal(5))

	p.bus.Flush()
	last := (*got)[len(*got)-1]
	died, ok := last.(event.Died)
	require.True(t, ok)
	assert.Equal(t, 1500, died.Score)
	assert.Equal(t, "You died! Was slain by a zombie. Score: 1,500", died.Line())
}

func TestRestoreHunger(t *testing.T) {
	p, _, _ := newTestPlayer(t, nil)
	assert.False(t, p.RestoreHunger(4, 2), "full hunger refuses food")

	p.Hunger = 10
	p.Saturation = 0
	assert.True(t, p.RestoreHunger(8, 12))
	assert.Equal(t, 18, p.Hunger)
	assert.Equal(t, 12, p.Saturation)

	assert.True(t, p.RestoreHunger(8, 12))
	assert.Equal(t, 20, p.Hunger)
	assert.Equal(t, 20, p.Saturation, "saturation clamped to hunger")
}

func TestTickRegeneratesWhenFull(t *testing.T) {
	p, _, _ := newTestPlayer(t, nil)
	p.Health = 15
	p.Tick()
	assert.Equal(t, 16, p.Health)
	assert.Equal(t, 30, p.Clock.Seconds)
}

func TestTickNearFullNeedsLuck(t *testing.T) {
	p, src, _ := newTestPlayer(t, nil)
	p.Health = 15
	p.Hunger = 18
	p.Saturation = 0

	// Default draws fail OneIn(8).
	p.Tick()
	assert.Equal(t, 15, p.Health)

	src.Ints(0)
	p.Tick()
	assert.Equal(t, 16, p.Health)
}

func TestTickNoRegenWhenHungry(t *testing.T) {
	p, src, _ := newTestPlayer(t, nil)
	p.Health = 15
	p.Hunger = 16
	p.Saturation = 0
	src.Ints(0)
	p.Tick()
	assert.Equal(t, 15, p.Health)
	assert.Equal(t, 1, src.Pending(), "no regen roll below the near-full threshold")
}

func TestTickAnnouncesPhase(t *testing.T) {
	p, _, got := newTestPlayer(t, nil)
	p.Clock = Clock{Minutes: 19, Seconds: 45}
	p.Tick()
	p.bus.Flush()
	require.Len(t, *got, 1)
	ev, ok := (*got)[0].(event.PhaseChanged)
	require.True(t, ok)
	assert.True(t, ev.Night)
	assert.Equal(t, "It is now night.", ev.Line())
}
