// Package decorscript runs a sandboxed Lua predicate as a decor.FilterFunc,
// letting an Update's filter window be driven by a user-supplied script
// instead of compiled Go.
package decorscript

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/decorset/internal/decor"
)

// Errors returned by decorscript operations.
var (
	// ErrFilterNotCallable indicates the script did not define a global
	// "filter" function.
	ErrFilterNotCallable = errors.New("decorscript: script does not define a callable \"filter\" function")
)

// sandboxedGlobals are removed after the safe standard libraries are
// opened, mirroring the filesystem/process-access removal the plugin
// runtime applies to every script it loads.
var sandboxedGlobals = []string{"dofile", "loadfile", "load", "loadstring", "require", "collectgarbage"}

// Filter runs a Lua script's global filter(from, to, isPoint, tagName,
// collapsed) function, adapting it to decor.FilterFunc.
//
// filter is called once per decoration intersecting an Update's filter
// window; it must return true to keep the decoration, false to drop it.
type Filter struct {
	state *lua.LState
}

// New compiles script in a sandboxed Lua state and binds its global
// "filter" function.
func New(script string) (*Filter, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	installSandbox(L)

	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("decorscript: %w", err)
	}
	if L.GetGlobal("filter").Type() != lua.LTFunction {
		L.Close()
		return nil, ErrFilterNotCallable
	}
	return &Filter{state: L}, nil
}

// Close releases the underlying Lua state. A Filter must not be used after
// Close.
func (f *Filter) Close() { f.state.Close() }

// Func adapts the script's filter function to decor.FilterFunc, for use
// with decor.WithFilter.
func (f *Filter) Func() decor.FilterFunc {
	return f.call
}

// call invokes the script's filter function for one decoration. A script
// error keeps the decoration rather than dropping it, since a filter that
// can't run is not evidence the decoration should be removed.
func (f *Filter) call(d decor.Decoration) bool {
	tagName, collapsed := "", false
	if spec, ok := d.RangeSpec(); ok {
		tagName = spec.TagName
		collapsed = spec.Collapsed
	}

	f.state.Push(f.state.GetGlobal("filter"))
	f.state.Push(lua.LNumber(d.From))
	f.state.Push(lua.LNumber(d.To))
	f.state.Push(lua.LBool(d.IsPoint()))
	f.state.Push(lua.LString(tagName))
	f.state.Push(lua.LBool(collapsed))

	if err := f.state.PCall(5, 1, nil); err != nil {
		return true
	}
	defer f.state.Pop(1)
	return lua.LVAsBool(f.state.Get(-1))
}

func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

func installSandbox(L *lua.LState) {
	for _, name := range sandboxedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
}
