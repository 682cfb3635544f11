package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/craftrpg/engine/internal/config"
	"github.com/craftrpg/engine/internal/core/event"
	"github.com/craftrpg/engine/internal/core/rng"
	"github.com/craftrpg/engine/internal/data"
	"github.com/craftrpg/engine/internal/handler"
	"github.com/craftrpg/engine/internal/scripting"
	"github.com/craftrpg/engine/internal/system"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Main game logic ───────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/game.toml"
	if p := os.Getenv("CRAFTRPG_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	scr := newScreen(os.Stdout, os.Getenv("NO_COLOR") == "")
	scr.banner(cfg.Game.Seed)

	// 3. Load static tables
	scr.section("Data")
	dir := cfg.Game.DataDir

	creatures, err := data.LoadCreatureTable(filepath.Join(dir, "creatures.yaml"))
	if err != nil {
		return fmt.Errorf("load creature table: %w", err)
	}
	scr.stat("Creatures", creatures.Count())
	scr.note(strings.Join(creatures.Names(), ", "))

	tools, err := data.LoadToolTable(filepath.Join(dir, "tools.yaml"))
	if err != nil {
		return fmt.Errorf("load tool table: %w", err)
	}
	scr.stat("Tools", tools.Count())

	recipes, err := data.LoadRecipeTable(filepath.Join(dir, "recipes.yaml"))
	if err != nil {
		return fmt.Errorf("load recipe table: %w", err)
	}
	scr.stat("Recipes", recipes.Count())

	foods, err := data.LoadFoodTable(filepath.Join(dir, "food.yaml"))
	if err != nil {
		return fmt.Errorf("load food table: %w", err)
	}
	scr.stat("Foods", foods.Count())

	blocks, err := data.LoadMiningTable(filepath.Join(dir, "mining.yaml"))
	if err != nil {
		return fmt.Errorf("load mining table: %w", err)
	}
	scr.stat("Blocks", blocks.Count())

	log.Info("data loaded",
		zap.Int("creatures", creatures.Count()),
		zap.Int("tools", tools.Count()),
		zap.Int("recipes", recipes.Count()),
		zap.Int("foods", foods.Count()),
		zap.Int("blocks", blocks.Count()),
	)

	// 4. Scripting
	luaEngine, err := scripting.NewEngine(cfg.Game.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("init scripting: %w", err)
	}
	defer luaEngine.Close()
	scr.ok("Lua formulas loaded")
	scr.printf("\n")

	// 5. Wire the session
	bus := event.NewBus()
	handler.SubscribeLines(bus, os.Stdout, scr.color)
	event.Subscribe(bus, func(e event.EncounterEnded) {
		log.Debug("encounter ended",
			zap.String("creature", e.Creature),
			zap.String("outcome", e.Outcome),
			zap.Int("rounds", e.Rounds),
		)
	})
	term := handler.NewTerminal(os.Stdin, os.Stdout)

	deps := &handler.Deps{
		Config:    cfg,
		Log:       log,
		Scripting: luaEngine,
		Creatures: creatures,
		Tools:     tools,
		Recipes:   recipes,
		Foods:     foods,
		Mining:    blocks,
		Bus:       bus,
		Rand:      rng.New(cfg.Game.Seed),
		Prompt:    term,
	}

	if deps.Choose("Play", "Quit") != 0 {
		return nil
	}

	sess, err := system.NewSession(deps)
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	reg := handler.NewRegistry(log)
	handler.RegisterAll(reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scr.ready("You wake up in a field.")
	over, err := handler.Run(ctx, sess, reg, deps)
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("game loop: %w", err)
	}
	if term.Closed() {
		log.Info("input closed")
	}

	scr.printf("\n")
	if over != nil {
		scr.section("Game Over")
		scr.printf("  %s\n  Score: %d\n", over.Cause, over.Score)
	} else {
		scr.section("Goodbye")
		scr.printf("  Turns played: %d, experience: %d\n", sess.Turns(), sess.Player().Experience)
	}
	log.Info("session ended", zap.Int("turns", sess.Turns()), zap.Bool("died", over != nil))
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.WarnLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	// game text owns stdout
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
