package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Vitals.MaxHealth)
	assert.Equal(t, 3, cfg.Creeper.DamageRolls)
	assert.Equal(t, "creeper", cfg.Creeper.NameSuffix)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeTOML(t, `
[game]
seed = 42

[vitals]
max_health = 30

[explore.finds]
Wood = 1
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, 30, cfg.Vitals.MaxHealth)
	// untouched keys keep their defaults
	assert.Equal(t, 20, cfg.Vitals.MaxHunger)
	assert.Equal(t, "data/yaml", cfg.Game.DataDir)
	assert.Equal(t, 1, cfg.Explore.Finds["Wood"])
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CRAFTRPG_SEED", "7")
	t.Setenv("CRAFTRPG_LOG_LEVEL", "debug")

	cfg, err := Load(writeTOML(t, "[game]\nseed = 42\n"))
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeTOML(t, "[vitals\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeTOML(t, "[combat]\nflee_rounds_min = 6\nflee_rounds_max = 2\n"))
	assert.ErrorContains(t, err, "flee_rounds_min")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero health", func(c *Config) { c.Vitals.MaxHealth = 0 }},
		{"saturation above hunger", func(c *Config) { c.Vitals.StartSaturation = 21 }},
		{"zero threshold", func(c *Config) { c.Vitals.ExhaustionThreshold = 0 }},
		{"negative tick", func(c *Config) { c.Clock.TickSeconds = -1 }},
		{"zero unarmed speed", func(c *Config) { c.Combat.UnarmedAttackSpeed = 0 }},
		{"zero yield divisor", func(c *Config) { c.Creeper.YieldDivisor = 0 }},
		{"no damage rolls", func(c *Config) { c.Creeper.DamageRolls = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
