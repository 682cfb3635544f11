package world

import (
	"github.com/craftrpg/engine/internal/config"
	"github.com/craftrpg/engine/internal/core/event"
	"github.com/craftrpg/engine/internal/core/rng"
)

// DamageKind decides whether damage costs exhaustion.
type DamageKind int

const (
	Physical DamageKind = iota // blows; adds exhaustion per point
	Blast                      // explosions; no exhaustion, ignores armor
)

// Player holds the vitals, clock and belongings of the one session character.
// Accessed only from the session goroutine.
type Player struct {
	Health     int
	Hunger     int
	Saturation int
	Exhaustion float64
	Experience int

	Clock     Clock
	Equipment *Equipment
	Inventory *Inventory

	dead  bool
	cause string

	vitals      config.VitalsConfig
	tickSeconds int
	rand        rng.Source
	bus         *event.Bus
}

// NewPlayer creates a player at full health and hunger.
func NewPlayer(cfg *config.Config, r rng.Source, bus *event.Bus) *Player {
	return &Player{
		Health:      cfg.Vitals.MaxHealth,
		Hunger:      cfg.Vitals.MaxHunger,
		Saturation:  cfg.Vitals.StartSaturation,
		Equipment:   NewEquipment(cfg.Combat.UnarmedDamage, cfg.Combat.UnarmedAttackSpeed),
		Inventory:   NewInventory(),
		vitals:      cfg.Vitals,
		tickSeconds: cfg.Clock.TickSeconds,
		rand:        r,
		bus:         bus,
	}
}

// Dead reports whether the player has died.
func (p *Player) Dead() bool { return p.dead }

// Cause returns what killed the player, if anything did.
func (p *Player) Cause() string { return p.cause }

// Tick runs once per world turn: natural regeneration while well fed, then
// the clock moves on.
func (p *Player) Tick() {
	if p.dead {
		return
	}
	if p.Health < p.vitals.MaxHealth {
		if p.Hunger == p.vitals.MaxHunger ||
			(p.Hunger >= p.vitals.NearFullHunger && rng.OneIn(p.rand, p.vitals.NearFullRegenOneIn)) {
			p.Heal(1)
		}
	}
	p.PassTime(p.tickSeconds)
}

// PassTime advances the clock and announces a phase change.
func (p *Player) PassTime(seconds int) {
	tr, ok := p.Clock.Advance(seconds)
	if !ok {
		return
	}
	event.Emit(p.bus, event.PhaseChanged{
		Minutes: p.Clock.Minutes,
		Night:   p.Clock.IsNight(),
		Text:    tr.To.Announcement(),
	})
}

// Damage takes health. Physical damage also costs exhaustion. Reaching zero
// health kills the player and reports the cause and score; it returns true
// when this call was the fatal one.
func (p *Player) Damage(amount int, kind DamageKind, cause string) bool {
	if amount <= 0 || p.dead {
		return false
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	event.Emit(p.bus, event.Damaged{Amount: amount, Health: p.Health, Max: p.vitals.MaxHealth, Cause: cause})
	if kind == Physical {
		p.ModifyExhaustion(float64(amount) * p.vitals.DamageExhaustion)
	}
	if p.Health > 0 {
		return false
	}
	p.dead = true
	p.cause = cause
	event.Emit(p.bus, event.Died{Cause: cause, Score: p.Experience})
	return true
}

// Heal restores health up to the maximum and reports whether any was
// restored. Each successful heal costs the regeneration exhaustion.
func (p *Player) Heal(amount int) bool {
	if amount <= 0 || p.dead {
		return false
	}
	old := p.Health
	p.Health = min(p.Health+amount, p.vitals.MaxHealth)
	healed := p.Health - old
	if healed <= 0 {
		return false
	}
	event.Emit(p.bus, event.Healed{Amount: healed, Health: p.Health, Max: p.vitals.MaxHealth})
	p.ModifyExhaustion(p.vitals.RegenExhaustion)
	return true
}

// ModifyExhaustion accumulates exhaustion. At the threshold it is flushed into
// one point of saturation, or of hunger once saturation is gone.
func (p *Player) ModifyExhaustion(amount float64) {
	p.Exhaustion += amount
	if p.Exhaustion < p.vitals.ExhaustionThreshold {
		return
	}
	if p.Saturation > 0 {
		p.Saturation--
	} else if p.Hunger > 0 {
		p.Hunger--
	}
	p.Exhaustion = 0
	event.Emit(p.bus, event.HungerChanged{Hunger: p.Hunger, Max: p.vitals.MaxHunger, Saturation: p.Saturation})
}

// RestoreHunger applies food. It does nothing at full hunger and reports
// whether the food was taken.
func (p *Player) RestoreHunger(hunger, saturation int) bool {
	if p.Hunger >= p.vitals.MaxHunger {
		return false
	}
	p.Hunger = min(p.Hunger+max(hunger, 0), p.vitals.MaxHunger)
	p.Saturation = min(p.Saturation+max(saturation, 0), p.Hunger)
	event.Emit(p.bus, event.HungerChanged{Hunger: p.Hunger, Max: p.vitals.MaxHunger, Saturation: p.Saturation})
	return true
}

// AddExperience credits the score.
func (p *Player) AddExperience(n int) {
	if n > 0 {
		p.Experience += n
	}
}

// MaxHealth returns the health cap.
func (p *Player) MaxHealth() int { return p.vitals.MaxHealth }

// MaxHunger returns the hunger cap.
func (p *Player) MaxHunger() int { return p.vitals.MaxHunger }
