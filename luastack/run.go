package luastack

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/log"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// Options configures a script run.
type Options struct {
	Out         io.Writer
	PreloadLibs bool
}

var bytecodeCache sync.Map

// Run executes the Lua script at path with the stack module available.
func Run(ctx context.Context, path string, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)

	if options.PreloadLibs {
		libs.Preload(L)
	}
	Preload(L)
	L.SetGlobal("print", L.NewFunction(printTo(options.Out)))

	proto, err := compile(path)
	if err != nil {
		return err
	}

	log.Debugf("running lua script %s", path)
	L.Push(L.NewFunctionFromProto(proto))
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("lua: %w", err)
	}
	return nil
}

// compile returns the bytecode for path, parsing it only on the first call.
func compile(path string) (*lua.FunctionProto, error) {
	if cached, ok := bytecodeCache.Load(path); ok {
		return cached.(*lua.FunctionProto), nil
	}

	source, err := filesystem.ReadAll(path)
	if err != nil {
		return nil, err
	}

	chunk, err := parse.Parse(bytes.NewReader(source), path)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, err
	}

	if path != filesystem.Stdin {
		bytecodeCache.Store(path, proto)
	}
	return proto, nil
}

// printTo returns a replacement for the Lua print builtin that writes to w.
func printTo(w io.Writer) lua.LGFunction {
	return func(L *lua.LState) int {
		parts := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		_, _ = fmt.Fprintln(w, strings.Join(parts, "\t"))
		return 0
	}
}
