package system

import (
	"fmt"

	"github.com/craftrpg/engine/internal/core/event"
	"github.com/craftrpg/engine/internal/core/rng"
	"github.com/craftrpg/engine/internal/data"
	"github.com/craftrpg/engine/internal/handler"
	"github.com/craftrpg/engine/internal/world"
	"go.uber.org/zap"
)

// Outcome is how an encounter ended.
type Outcome int

const (
	Avoided      Outcome = iota // walked away before fighting
	Fled                        // walked away mid-fight
	CreatureDead                // killed; loot resolved
	Detonated                   // creeper exploded
	PlayerDead
)

func (o Outcome) String() string {
	switch o {
	case Avoided:
		return "avoided"
	case Fled:
		return "fled"
	case CreatureDead:
		return "creature_dead"
	case Detonated:
		return "detonated"
	case PlayerDead:
		return "player_dead"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Setting is what the player was doing when the creature showed up. It
// decides what an explosion throws loose.
type Setting int

const (
	Exploring Setting = iota
	Mining
)

func (s Setting) verb() string {
	if s == Mining {
		return "mining"
	}
	return "exploring"
}

// EncounterResult summarizes a finished encounter.
type EncounterResult struct {
	Creature string
	Outcome  Outcome
	Rounds   int
	Loot     []Drop
}

// encounter runs one creature meeting from spawn to end.
type encounter struct {
	deps    *handler.Deps
	player  *world.Player
	c       *world.Creature
	setting Setting
	creeper bool
	blast   *rng.WeightedList[string]
	rounds  int
}

// RunEncounter spawns a creature from the pool for the current time of day
// and plays the encounter out. An empty pool is returned as
// rng.ErrEmptySelection.
func RunEncounter(p *world.Player, setting Setting, blast *rng.WeightedList[string], deps *handler.Deps) (EncounterResult, error) {
	tmpl, err := deps.Creatures.Pick(deps.Rand, p.Clock.IsNight())
	if err != nil {
		return EncounterResult{}, fmt.Errorf("spawn creature: %w", err)
	}
	return Fight(p, world.NewCreature(tmpl), setting, blast, deps), nil
}

// Fight plays an encounter with an already spawned creature.
func Fight(p *world.Player, c *world.Creature, setting Setting, blast *rng.WeightedList[string], deps *handler.Deps) EncounterResult {
	e := &encounter{
		deps:    deps,
		player:  p,
		c:       c,
		setting: setting,
		creeper: c.Behavior == data.Hostile && c.IsCreeper(deps.Config.Creeper.NameSuffix),
		blast:   blast,
	}
	res := e.run()
	deps.Log.Debug("encounter ended",
		zap.String("creature", c.Name),
		zap.Stringer("outcome", res.Outcome),
		zap.Int("rounds", res.Rounds),
	)
	event.Emit(deps.Bus, event.EncounterEnded{Creature: c.Name, Outcome: res.Outcome.String(), Rounds: res.Rounds})
	return res
}

func (e *encounter) run() EncounterResult {
	cfg := e.deps.Config.Combat
	r := e.deps.Rand
	noun := e.c.Noun()

	punct := "."
	if e.c.Behavior == data.Hostile {
		punct = "!"
	}
	event.Emit(e.deps.Bus, event.Messagef("You found a %s while %s%s", noun, e.setting.verb(), punct))
	e.deps.Log.Debug("encounter started",
		zap.String("creature", e.c.Name),
		zap.Stringer("behavior", e.c.Behavior),
		zap.Bool("night", e.player.Clock.IsNight()),
	)

	if e.c.Behavior == data.Hostile && !e.creeper && rng.OneIn(r, cfg.OpeningAttackOneIn) {
		if e.creatureAttacks() {
			return e.result(PlayerDead, nil)
		}
	}

	for {
		if e.deps.Choose("Attack", e.leaveLabel()) != 0 {
			if e.rounds == 0 {
				return e.result(Avoided, nil)
			}
			return e.result(Fled, nil)
		}
		e.rounds++

		if e.c.Fleeing > 0 {
			e.c.Fleeing--
		}
		e.player.ModifyExhaustion(cfg.RoundExhaustion)

		if e.c.Fleeing > 0 && rng.OneIn(r, cfg.FleeingMissOneIn) {
			event.Emit(e.deps.Bus, event.Messagef("You miss the %s.", noun))
		} else if e.playerAttacks() {
			event.Emit(e.deps.Bus, event.Messagef("The %s is dead!", noun))
			loot := ResolveLoot(e.player, e.c.Drops, e.deps)
			return e.result(CreatureDead, loot)
		}

		switch e.c.Behavior {
		case data.Passive:
			if e.c.Fleeing == 0 && rng.XInY(r, cfg.PassiveFleeX, cfg.PassiveFleeY) {
				e.c.Fleeing = rng.Between(r, cfg.FleeRoundsMin, cfg.FleeRoundsMax)
				event.Emit(e.deps.Bus, event.Messagef("The %s starts running away.", noun))
			}
		case data.Neutral, data.Hostile:
			if e.creeper {
				if e.fuse() {
					if e.player.Dead() {
						return e.result(PlayerDead, nil)
					}
					return e.result(Detonated, nil)
				}
				break
			}
			if rng.XInY(r, 1, e.player.Equipment.AttackSpeed()) && !rng.OneIn(r, cfg.CounterSuppressOneIn) {
				if e.creatureAttacks() {
					return e.result(PlayerDead, nil)
				}
			}
		}

		e.player.Tick()
	}
}

// leaveLabel is the non-attack option: hostile creatures are fled from,
// others ignored.
func (e *encounter) leaveLabel() string {
	switch e.c.Behavior {
	case data.Hostile:
		return "Flee"
	case data.Passive, data.Neutral:
		return "Ignore"
	}
	return "Ignore"
}

// playerAttacks swings the equipped weapon and reports whether the creature died.
func (e *encounter) playerAttacks() bool {
	cfg := e.deps.Config.Combat
	eq := e.player.Equipment

	dmg := eq.AttackDamage()
	crit := false
	if rng.OneIn(e.deps.Rand, cfg.CriticalOneIn) {
		if v := e.deps.Scripting.CriticalDamage(dmg, cfg.CriticalMultiplier); v > dmg {
			dmg, crit = v, true
		}
	}
	event.Emit(e.deps.Bus, event.Messagef("You attack the %s.", e.c.Noun()))
	if crit {
		event.Emit(e.deps.Bus, event.Message{Text: "Critical hit!"})
	}

	if weapon := eq.Weapon(); weapon != nil {
		if _, broke := eq.DecrementDurability(); broke {
			event.Emit(e.deps.Bus, event.ToolBroke{Tool: weapon.Name})
		}
	}
	return e.c.Damage(dmg)
}

// creatureAttacks lands a regular blow and reports whether it killed the player.
func (e *encounter) creatureAttacks() bool {
	noun := e.c.Noun()
	event.Emit(e.deps.Bus, event.Messagef("The %s attacks you!", noun))
	return e.player.Damage(e.c.AttackStrength, world.Physical, fmt.Sprintf("Killed by a %s.", noun))
}

// fuse advances the creeper's fuse and reports whether it exploded. The
// counter is checked before it is incremented, so the first round with a
// chance to explode is the one after the counter passes the threshold.
func (e *encounter) fuse() bool {
	cfg := e.deps.Config.Creeper
	counter := e.c.Fuse
	e.c.Fuse++

	if counter > cfg.FuseThreshold {
		p := e.deps.Scripting.DetonationChance(counter)
		if rng.Chance(e.deps.Rand, p) {
			e.detonate()
			return true
		}
	}
	event.Emit(e.deps.Bus, event.Messagef("The %s flashes!", e.c.Noun()))
	return false
}

func (e *encounter) detonate() {
	cfg := e.deps.Config.Creeper
	r := e.deps.Rand
	strength := e.c.AttackStrength

	dmg := 0
	for i := 0; i < cfg.DamageRolls; i++ {
		dmg = max(dmg, rng.Between(r, 1, strength))
	}
	event.Emit(e.deps.Bus, event.Messagef("The %s explodes!", e.c.Noun()))
	e.deps.Log.Debug("creeper detonated", zap.Int("fuse", e.c.Fuse), zap.Int("damage", dmg))
	if e.player.Damage(dmg, world.Blast, "Blew up.") {
		return
	}

	jitter := 1 + (r.Float64()*2-1)*cfg.YieldJitter
	n := e.deps.Scripting.BlastYield(strength, cfg.YieldDivisor, jitter)
	if n <= 0 {
		return
	}
	item := cfg.MiningYield
	if e.setting == Exploring {
		if e.blast == nil {
			return
		}
		picked, err := e.blast.Pick(r)
		if err != nil {
			// No exploring yield configured: nothing comes loose.
			return
		}
		item = picked
	}
	e.player.Inventory.Add(item, n)
	event.Emit(e.deps.Bus, event.LootReceived{Item: item, Count: n})
}

func (e *encounter) result(o Outcome, loot []Drop) EncounterResult {
	return EncounterResult{Creature: e.c.Name, Outcome: o, Rounds: e.rounds, Loot: loot}
}
