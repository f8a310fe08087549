// Package script dispatches subcommands to user-provided lua files. A
// script named <dir>/<name>.lua handles the subcommand <name>; it runs in
// a restricted interpreter with only the base, string, table and math
// libraries opened.
package script

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
)

// ErrNoScript is returned when no script file exists for a subcommand,
// so a surrounding fallback chain can try the next launcher.
type ErrNoScript struct{ name string }

func (e ErrNoScript) Error() string { return "no script for command: " + e.name }

// RunError reports a script that ran and failed.
type RunError struct {
	Name    string
	Message string
}

func (e RunError) Error() string {
	return fmt.Sprintf("script %s failed: %s", e.Name, e.Message)
}

// Launcher runs subcommands from a directory of lua scripts.
type Launcher struct {
	dir string
}

// NewLauncher returns a launcher reading scripts from dir.
func NewLauncher(dir string) Launcher {
	return Launcher{dir: dir}
}

// Launch executes <dir>/<name>.lua with cmd and args exposed as globals.
// The script fails the launch by raising an error or calling fail(msg).
func (l Launcher) Launch(ctx context.Context, name string, args []string) error {
	path := filepath.Join(l.dir, name+".lua")
	code, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoScript{name: name}
		}
		return fmt.Errorf("script %s: %w", name, err)
	}

	L := newSandboxState()
	defer L.Close()
	L.SetContext(ctx)

	L.SetGlobal("cmd", lua.LString(name))
	argTable := L.NewTable()
	for _, a := range args {
		argTable.Append(lua.LString(a))
	}
	L.SetGlobal("args", argTable)
	L.SetGlobal("fail", L.NewFunction(func(L *lua.LState) int {
		msg := L.OptString(1, "failed")
		L.RaiseError("%s", msg)
		return 0
	}))

	if err := L.DoString(string(code)); err != nil {
		return RunError{Name: name, Message: err.Error()}
	}
	return nil
}

// newSandboxState builds a lua state with a reduced library surface.
func newSandboxState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:    true,
		RegistrySize:    256,
		RegistryMaxSize: 1024,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("string", lua.OpenString)
	openLib("table", lua.OpenTable)
	openLib("math", lua.OpenMath)
	return L
}
