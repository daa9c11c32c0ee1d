package cmd

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/unrss/shenv/internal/export"
)

// filterEnv is the environment a --where expression is evaluated against.
type filterEnv struct {
	Name       string   `expr:"name"`
	Kind       string   `expr:"kind"`
	Value      any      `expr:"value"`
	Raw        string   `expr:"raw"`
	Documented bool     `expr:"documented"`
	Categories []string `expr:"categories"`
}

func newFilterEnv(r export.Record) filterEnv {
	return filterEnv{
		Name:       r.Name,
		Kind:       r.Value.Kind().String(),
		Value:      r.Value.Scalar(),
		Raw:        r.Value.Raw(),
		Documented: r.Documented(),
		Categories: r.Categories,
	}
}

// compileFilter compiles a boolean --where expression. An empty source
// yields a nil program, which matches everything.
func compileFilter(source string) (*vm.Program, error) {
	if source == "" {
		return nil, nil
	}
	program, err := expr.Compile(source, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", source, err)
	}
	return program, nil
}

func matchFilter(program *vm.Program, r export.Record) (bool, error) {
	if program == nil {
		return true, nil
	}
	out, err := expr.Run(program, newFilterEnv(r))
	if err != nil {
		return false, fmt.Errorf("evaluate filter for %s: %w", r.Name, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}
