package format

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// ErrNoFormatFunction is returned when a script does not define a global
// format function.
var ErrNoFormatFunction = errors.New("format: script must define format(value)")

// LuaFormatter runs a user-supplied Lua script to format label values.
//
// The script must define a global function format(value) returning a
// string. The Lua state is created without the io, os, and debug
// libraries; a label script has no business touching the filesystem.
//
// gopher-lua's LState is not goroutine-safe, so calls are serialized with
// a mutex. Formatting happens at render frequency, not per input event,
// which keeps the lock uncontended in practice.
type LuaFormatter struct {
	mu sync.Mutex
	L  *lua.LState
	fn *lua.LFunction
}

// NewLuaFormatter compiles the script and verifies it defines format(value).
func NewLuaFormatter(script string) (*LuaFormatter, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Base, string, and math are enough for label formatting.
	for _, open := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(open.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(open.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("format: opening lua lib %s: %w", open.name, err)
		}
	}

	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("format: compiling script: %w", err)
	}

	fn, ok := L.GetGlobal("format").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, ErrNoFormatFunction
	}

	return &LuaFormatter{L: L, fn: fn}, nil
}

// Format renders value through the script. Any script error falls back to
// Default so a bad label never breaks rendering.
func (f *LuaFormatter) Format(value float64) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.L == nil {
		return Default(value)
	}

	err := f.L.CallByParam(lua.P{
		Fn:      f.fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(value))
	if err != nil {
		return Default(value)
	}

	ret := f.L.Get(-1)
	f.L.Pop(1)

	s, ok := ret.(lua.LString)
	if !ok {
		return Default(value)
	}
	return string(s)
}

// Func adapts the formatter to the plain Func type.
func (f *LuaFormatter) Func() Func {
	return f.Format
}

// Close releases the Lua state. Format calls after Close fall back to
// Default.
func (f *LuaFormatter) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.L != nil {
		f.L.Close()
		f.L = nil
	}
}
