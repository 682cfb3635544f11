package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
	Vitals  VitalsConfig  `toml:"vitals"`
	Clock   ClockConfig   `toml:"clock"`
	Explore ExploreConfig `toml:"explore"`
	Combat  CombatConfig  `toml:"combat"`
	Creeper CreeperConfig `toml:"creeper"`
	Mining  MiningConfig  `toml:"mining"`
}

type GameConfig struct {
	Seed       uint64 `toml:"seed" env:"CRAFTRPG_SEED"` // 0 = derive from wall clock
	DataDir    string `toml:"data_dir" env:"CRAFTRPG_DATA_DIR"`
	ScriptsDir string `toml:"scripts_dir" env:"CRAFTRPG_SCRIPTS_DIR"`
}

type LoggingConfig struct {
	Level  string `toml:"level" env:"CRAFTRPG_LOG_LEVEL"`
	Format string `toml:"format"` // "json" or "console"
}

type VitalsConfig struct {
	MaxHealth           int     `toml:"max_health"`
	MaxHunger           int     `toml:"max_hunger"`
	StartSaturation     int     `toml:"start_saturation"`
	ExhaustionThreshold float64 `toml:"exhaustion_threshold"`
	RegenExhaustion     float64 `toml:"regen_exhaustion"` // charged per successful heal
	NearFullHunger      int     `toml:"near_full_hunger"` // regen possible at or above this
	NearFullRegenOneIn  int     `toml:"near_full_regen_one_in"`
	DamageExhaustion    float64 `toml:"damage_exhaustion"` // per point of physical damage
}

type ClockConfig struct {
	TickSeconds int `toml:"tick_seconds"` // world time per vitals tick
}

type ExploreConfig struct {
	Seconds        int            `toml:"seconds"`
	Exhaustion     float64        `toml:"exhaustion"`
	EncounterOneIn int            `toml:"encounter_one_in"`
	FindOneIn      int            `toml:"find_one_in"`
	Finds          map[string]int `toml:"finds"` // item -> weight
}

type CombatConfig struct {
	RoundExhaustion      float64 `toml:"round_exhaustion"`
	OpeningAttackOneIn   int     `toml:"opening_attack_one_in"`
	CriticalOneIn        int     `toml:"critical_one_in"`
	CriticalMultiplier   float64 `toml:"critical_multiplier"`
	UnarmedDamage        int     `toml:"unarmed_damage"`
	UnarmedAttackSpeed   float64 `toml:"unarmed_attack_speed"`
	CounterSuppressOneIn int     `toml:"counter_suppress_one_in"`
	PassiveFleeX         float64 `toml:"passive_flee_x"`
	PassiveFleeY         float64 `toml:"passive_flee_y"`
	FleeRoundsMin        int     `toml:"flee_rounds_min"`
	FleeRoundsMax        int     `toml:"flee_rounds_max"`
	FleeingMissOneIn     int     `toml:"fleeing_miss_one_in"`
}

type CreeperConfig struct {
	NameSuffix     string         `toml:"name_suffix"`
	FuseThreshold  int            `toml:"fuse_threshold"` // detonation possible once the fuse exceeds this
	DamageRolls    int            `toml:"damage_rolls"`
	YieldDivisor   float64        `toml:"yield_divisor"`
	YieldJitter    float64        `toml:"yield_jitter"`
	MiningYield    string         `toml:"mining_yield"`
	ExploringYield map[string]int `toml:"exploring_yield"` // item -> weight
}

type MiningConfig struct {
	Seconds        int     `toml:"seconds"` // per block at multiplier 1
	Exhaustion     float64 `toml:"exhaustion"`
	EncounterOneIn int     `toml:"encounter_one_in"`
}

// Load reads a TOML file over defaults and then applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Vitals.MaxHealth <= 0 || c.Vitals.MaxHunger <= 0:
		return fmt.Errorf("vitals: max_health and max_hunger must be positive")
	case c.Vitals.StartSaturation < 0 || c.Vitals.StartSaturation > c.Vitals.MaxHunger:
		return fmt.Errorf("vitals: start_saturation must be in [0, max_hunger]")
	case c.Vitals.ExhaustionThreshold <= 0:
		return fmt.Errorf("vitals: exhaustion_threshold must be positive")
	case c.Clock.TickSeconds < 0:
		return fmt.Errorf("clock: tick_seconds must not be negative")
	case c.Combat.UnarmedAttackSpeed <= 0:
		return fmt.Errorf("combat: unarmed_attack_speed must be positive")
	case c.Combat.FleeRoundsMin > c.Combat.FleeRoundsMax:
		return fmt.Errorf("combat: flee_rounds_min > flee_rounds_max")
	case c.Creeper.YieldDivisor <= 0:
		return fmt.Errorf("creeper: yield_divisor must be positive")
	case c.Creeper.DamageRolls < 1:
		return fmt.Errorf("creeper: damage_rolls must be at least 1")
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			DataDir:    "data/yaml",
			ScriptsDir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Vitals: VitalsConfig{
			MaxHealth:           20,
			MaxHunger:           20,
			StartSaturation:     5,
			ExhaustionThreshold: 4.0,
			RegenExhaustion:     6.0,
			NearFullHunger:      17,
			NearFullRegenOneIn:  8,
			DamageExhaustion:    0.1,
		},
		Clock: ClockConfig{
			TickSeconds: 30,
		},
		Explore: ExploreConfig{
			Seconds:        30,
			Exhaustion:     0.001,
			EncounterOneIn: 4,
			FindOneIn:      3,
			Finds:          map[string]int{"Grass": 8, "Dirt": 1, "Wood": 2},
		},
		Combat: CombatConfig{
			RoundExhaustion:      0.1,
			OpeningAttackOneIn:   2,
			CriticalOneIn:        10,
			CriticalMultiplier:   1.5,
			UnarmedDamage:        1,
			UnarmedAttackSpeed:   1.0,
			CounterSuppressOneIn: 4,
			PassiveFleeX:         2,
			PassiveFleeY:         3,
			FleeRoundsMin:        3,
			FleeRoundsMax:        5,
			FleeingMissOneIn:     3,
		},
		Creeper: CreeperConfig{
			NameSuffix:     "creeper",
			FuseThreshold:  2,
			DamageRolls:    3,
			YieldDivisor:   7,
			YieldJitter:    0.25,
			MiningYield:    "Cobblestone",
			ExploringYield: map[string]int{"Dirt": 3, "Grass": 1},
		},
		Mining: MiningConfig{
			Seconds:        20,
			Exhaustion:     0.005,
			EncounterOneIn: 6,
		},
	}
}
