// Package scripting evaluates caller supplied JavaScript in a goja VM. The VM
// is given process.env and a require() bridge to the host shell and
// filesystem.
package scripting

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja"
	"github.com/ruralpay/hacklab/internal/shell"
)

// Eval runs code in a fresh VM and returns the completion value as a string.
// The returned error carries the thrown value's message.
func Eval(ctx context.Context, code string) (string, error) {
	vm := goja.New()

	if err := vm.Set("process", map[string]any{"env": environ()}); err != nil {
		return "", err
	}
	if err := vm.Set("require", hostModules(ctx)); err != nil {
		return "", err
	}

	v, err := vm.RunString(code)
	if err != nil {
		return "", errors.New(message(err))
	}
	if v == nil {
		return "undefined", nil
	}
	return v.String(), nil
}

func hostModules(ctx context.Context) func(string) (map[string]any, error) {
	return func(name string) (map[string]any, error) {
		switch name {
		case "child_process":
			return map[string]any{
				"execSync": func(cmd string) (string, error) {
					return shell.Run(ctx, cmd)
				},
			}, nil
		case "fs":
			return map[string]any{
				"readFileSync": func(path string) (string, error) {
					b, err := os.ReadFile(path)
					return string(b), err
				},
			}, nil
		}
		return nil, fmt.Errorf("Cannot find module '%s'", name)
	}
}

func message(err error) string {
	var ex *goja.Exception
	if !errors.As(err, &ex) {
		return err.Error()
	}

	obj, ok := ex.Value().(*goja.Object)
	if !ok {
		return "undefined"
	}
	m := obj.Get("message")
	if m == nil || goja.IsUndefined(m) {
		return "undefined"
	}
	return m.String()
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}
