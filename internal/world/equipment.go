package world

import "github.com/craftrpg/engine/internal/data"

// Tool is an owned tool instance. A tool is a weapon iff it has combat
// stats, and can mine iff it has mining stats.
type Tool struct {
	Name          string
	Durability    int // -1 only for the instant before removal
	MaxDurability int
	Combat        *data.CombatStats
	Mining        *data.MiningStats
}

// NewTool creates a fresh tool from its template.
func NewTool(t *data.ToolTemplate) *Tool {
	return &Tool{
		Name:          t.Name,
		Durability:    t.Durability,
		MaxDurability: t.Durability,
		Combat:        t.Combat,
		Mining:        t.Mining,
	}
}

// IsWeapon reports whether the tool can be equipped for combat.
func (t *Tool) IsWeapon() bool { return t.Combat != nil }

// CanMine reports whether the tool can break blocks.
func (t *Tool) CanMine() bool { return t.Mining != nil }

// Equipment is the set of owned tools plus the equipped weapon (nil = unarmed).
type Equipment struct {
	tools  []*Tool
	weapon *Tool

	unarmedDamage int
	unarmedSpeed  float64
}

// NewEquipment creates an empty tool set with the unarmed baseline stats.
func NewEquipment(unarmedDamage int, unarmedSpeed float64) *Equipment {
	return &Equipment{unarmedDamage: unarmedDamage, unarmedSpeed: unarmedSpeed}
}

// Add takes ownership of a tool.
func (e *Equipment) Add(t *Tool) {
	e.tools = append(e.tools, t)
}

// Tools returns the owned tools in acquisition order.
func (e *Equipment) Tools() []*Tool {
	return append([]*Tool(nil), e.tools...)
}

// Weapons returns the owned tools that have combat stats.
func (e *Equipment) Weapons() []*Tool {
	var out []*Tool
	for _, t := range e.tools {
		if t.IsWeapon() {
			out = append(out, t)
		}
	}
	return out
}

// Weapon returns the equipped weapon, or nil when unarmed.
func (e *Equipment) Weapon() *Tool {
	return e.weapon
}

// Equip makes t the equipped weapon. Callers offer only owned weapons.
func (e *Equipment) Equip(t *Tool) {
	e.weapon = t
}

// Unequip returns to fighting unarmed.
func (e *Equipment) Unequip() {
	e.weapon = nil
}

// AttackDamage returns the equipped weapon's damage, else the unarmed baseline.
func (e *Equipment) AttackDamage() int {
	if e.weapon != nil && e.weapon.Combat != nil {
		return e.weapon.Combat.Damage
	}
	return e.unarmedDamage
}

// AttackSpeed returns the equipped weapon's speed factor, else the unarmed
// baseline. Lower factors let creatures counterattack more often.
func (e *Equipment) AttackSpeed() float64 {
	if e.weapon != nil && e.weapon.Combat != nil {
		return e.weapon.Combat.AttackSpeed
	}
	return e.unarmedSpeed
}

// DecrementDurability wears the equipped weapon by one use. Unarmed swings
// cost nothing and report (0, false).
func (e *Equipment) DecrementDurability() (remaining int, broke bool) {
	if e.weapon == nil {
		return 0, false
	}
	return e.Wear(e.weapon)
}

// Wear uses up one point of t's durability. Below zero the tool is destroyed:
// removed from the owned set and unequipped if it was the weapon.
func (e *Equipment) Wear(t *Tool) (remaining int, broke bool) {
	t.Durability--
	if t.Durability >= 0 {
		return t.Durability, false
	}
	e.remove(t)
	return t.Durability, true
}

func (e *Equipment) remove(t *Tool) {
	for i, owned := range e.tools {
		if owned == t {
			e.tools = append(e.tools[:i], e.tools[i+1:]...)
			break
		}
	}
	if e.weapon == t {
		e.weapon = nil
	}
}

// BestMiningTool returns the owned mining tool with the highest tier, ties
// broken by multiplier. Nil when none is owned.
func (e *Equipment) BestMiningTool() *Tool {
	var best *Tool
	for _, t := range e.tools {
		if !t.CanMine() {
			continue
		}
		if best == nil || t.Mining.Tier > best.Mining.Tier ||
			(t.Mining.Tier == best.Mining.Tier && t.Mining.Multiplier > best.Mining.Multiplier) {
			best = t
		}
	}
	return best
}
