package scripting

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM holding the combat formulas.
// Single-goroutine access only (session loop). Every formula has a Go
// fallback used when the script does not define it.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
// A missing directory is not an error: the built-in formulas are used.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	// core first so combat scripts can use its helpers
	for _, sub := range []string{"core", "combat"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}
	for _, fn := range formulas {
		e.log.Debug("combat formula", zap.String("fn", fn), zap.Bool("scripted", e.Defines(fn)))
	}
	return e, nil
}

// formulas are the Lua globals the engine calls when defined.
var formulas = []string{"calc_critical_damage", "calc_detonation_chance", "calc_blast_yield"}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// Defines reports whether a script defined the named global function.
func (e *Engine) Defines(name string) bool {
	_, ok := e.vm.GetGlobal(name).(*lua.LFunction)
	return ok
}

// CriticalDamage calls Lua calc_critical_damage(base, multiplier).
// Fallback: floor(base * multiplier).
func (e *Engine) CriticalDamage(base int, multiplier float64) int {
	if v, ok := e.callNumber("calc_critical_damage", lua.LNumber(base), lua.LNumber(multiplier)); ok {
		return int(math.Floor(v))
	}
	return int(math.Floor(float64(base) * multiplier))
}

// DetonationChance calls Lua calc_detonation_chance(counter) and clamps the
// result to [0, 1]. Fallback: 1 - 1/counter.
func (e *Engine) DetonationChance(counter int) float64 {
	if counter <= 0 {
		return 0
	}
	p, ok := e.callNumber("calc_detonation_chance", lua.LNumber(counter))
	if !ok {
		p = 1 - 1/float64(counter)
	}
	return math.Max(0, math.Min(1, p))
}

// BlastYield calls Lua calc_blast_yield(strength, divisor, jitter) where
// jitter is the already-rolled factor in [1-j, 1+j]. Never negative.
// Fallback: round(strength / divisor * jitter).
func (e *Engine) BlastYield(strength int, divisor, jitter float64) int {
	v, ok := e.callNumber("calc_blast_yield", lua.LNumber(strength), lua.LNumber(divisor), lua.LNumber(jitter))
	if !ok {
		v = float64(strength) / divisor * jitter
	}
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	return n
}

// callNumber calls a global Lua function returning one number. ok is false
// when the function is not defined, fails, or returns a non-number.
func (e *Engine) callNumber(name string, args ...lua.LValue) (float64, bool) {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		return 0, false
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		e.log.Error("lua call error", zap.String("func", name), zap.Error(err))
		return 0, false
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)
	n, ok := result.(lua.LNumber)
	if !ok {
		e.log.Error("lua function returned non-number",
			zap.String("func", name), zap.String("type", result.Type().String()))
		return 0, false
	}
	return float64(n), true
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
