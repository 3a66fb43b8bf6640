// Package luastack exposes stack.Stack to Lua scripts as the "stack" module.
//
//	local stack = require("stack")
//	local s = stack.new()
//	s:push("a")
//	print(s:pop(), s:pop()) --> a	nil
package luastack

import (
	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/stack"
	lua "github.com/yuin/gopher-lua"
)

const typeName = "lifo.stack"

var exports = map[string]lua.LGFunction{
	"new": newStack,
}

var methods = map[string]lua.LGFunction{
	"push":     push,
	"pop":      pop,
	"peek":     peek,
	"size":     size,
	"is_empty": isEmpty,
	"dump":     dump,
	"clear":    clearStack,
}

// Preload registers the stack module so scripts can require it.
func Preload(L *lua.LState) {
	L.PreloadModule(constant.LuaModule, Loader)
}

// Loader is the lua.LGFunction that builds the module table.
func Loader(L *lua.LState) int {
	mt := L.NewTypeMetatable(typeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), methods))
	L.SetField(mt, "__tostring", L.NewFunction(dump))

	L.Push(L.SetFuncs(L.NewTable(), exports))
	return 1
}

func newStack(L *lua.LState) int {
	ud := L.NewUserData()
	ud.Value = stack.New[lua.LValue]()
	L.SetMetatable(ud, L.GetTypeMetatable(typeName))
	L.Push(ud)
	return 1
}

func check(L *lua.LState) *stack.Stack[lua.LValue] {
	ud := L.CheckUserData(1)
	if s, ok := ud.Value.(*stack.Stack[lua.LValue]); ok {
		return s
	}
	L.ArgError(1, "stack expected")
	return nil
}

// push refuses nil so that a nil from pop or peek always means the stack was empty.
// Nothing is pushed when any argument is nil.
func push(L *lua.LState) int {
	s := check(L)
	for i := 2; i <= L.GetTop(); i++ {
		if L.Get(i) == lua.LNil {
			L.ArgError(i, "cannot push nil")
			return 0
		}
	}

	for i := 2; i <= L.GetTop(); i++ {
		s.Push(L.Get(i))
	}
	return 0
}

func pop(L *lua.LState) int {
	L.Push(check(L).Pop().OrElse(lua.LNil))
	return 1
}

func peek(L *lua.LState) int {
	L.Push(check(L).Peek().OrElse(lua.LNil))
	return 1
}

func size(L *lua.LState) int {
	L.Push(lua.LNumber(check(L).Size()))
	return 1
}

func isEmpty(L *lua.LState) int {
	L.Push(lua.LBool(check(L).IsEmpty()))
	return 1
}

func dump(L *lua.LState) int {
	L.Push(lua.LString(stack.DumpFunc(check(L), func(v lua.LValue) string {
		return v.String()
	})))
	return 1
}

func clearStack(L *lua.LState) int {
	check(L).Clear()
	return 0
}
