// Package automation drives eq parameters from Lua scripts.
//
// Scripts see these globals:
//
//	set(name, value)  store a parameter, returns the clamped value
//	get(name)         current value of a parameter
//	sleep(ms)         pause, aborted when the run is cancelled
//	log(msg)          write an info line
//	params()          array of parameter names
//
// Names are matched by eq.Lookup, so "peak_gain" and "Peak Gain" are the same
// parameter.
package automation

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-eqscope/eq"
)

// Engine runs scripts against one parameter store.
type Engine struct {
	params *eq.Parameters
	logger *zap.Logger
}

// New returns an Engine. A nil logger discards script output.
func New(params *eq.Parameters, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{params: params, logger: logger.Named("automation")}
}

// Run executes src until it finishes, fails or ctx is cancelled.
func (e *Engine) Run(ctx context.Context, src string) error {
	L := e.newState(ctx)
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return fmt.Errorf("automation: %w", err)
	}

	return nil
}

// RunFile executes the script at path.
func (e *Engine) RunFile(ctx context.Context, path string) error {
	L := e.newState(ctx)
	defer L.Close()

	e.logger.Info("running script", zap.String("path", path))

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("automation: %s: %w", path, err)
	}

	return nil
}

func (e *Engine) newState(ctx context.Context) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Base, string, table and math only: scripts get no file or OS access.
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	L.SetContext(ctx)

	L.SetGlobal("set", L.NewFunction(e.luaSet))
	L.SetGlobal("get", L.NewFunction(e.luaGet))
	L.SetGlobal("sleep", L.NewFunction(luaSleep))
	L.SetGlobal("log", L.NewFunction(e.luaLog))
	L.SetGlobal("params", L.NewFunction(luaParams))

	return L
}

func lookup(L *lua.LState) eq.ParamID {
	id, err := eq.Lookup(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
	}

	return id
}

func (e *Engine) luaSet(L *lua.LState) int {
	id := lookup(L)
	v := float64(L.CheckNumber(2))

	stored, err := e.params.Set(id, v)
	if err != nil {
		L.RaiseError("%s", err.Error())
	}

	e.logger.Debug("set", zap.Stringer("param", id), zap.Float64("value", stored))
	L.Push(lua.LNumber(stored))

	return 1
}

func (e *Engine) luaGet(L *lua.LState) int {
	L.Push(lua.LNumber(e.params.Get(lookup(L))))
	return 1
}

func luaSleep(L *lua.LState) int {
	d := time.Duration(float64(L.CheckNumber(1)) * float64(time.Millisecond))

	ctx := L.Context()
	if ctx == nil {
		time.Sleep(d)
		return 0
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
		L.RaiseError("sleep interrupted: %v", ctx.Err())
	}

	return 0
}

func (e *Engine) luaLog(L *lua.LState) int {
	e.logger.Info(L.CheckString(1))
	return 0
}

func luaParams(L *lua.LState) int {
	t := L.NewTable()
	for _, id := range eq.ParamIDs() {
		t.Append(lua.LString(id.String()))
	}

	L.Push(t)

	return 1
}
