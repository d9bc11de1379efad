package services

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const maxFilterNodes = 100

// DefinitionEnv is what a filter expression sees for one manifest entry.
type DefinitionEnv struct {
	Kind string   `expr:"kind"`
	Name string   `expr:"name"`
	Code string   `expr:"code"`
	Tags []string `expr:"tags"`
}

// DefinitionFilter selects manifest entries with a boolean expression such as
// `kind == "recipe" && name startsWith "pickaxe"`.
type DefinitionFilter struct {
	program    *vm.Program
	expression string
}

// CompileDefinitionFilter compiles expression. An empty expression matches
// everything and returns a nil filter.
func CompileDefinitionFilter(expression string) (*DefinitionFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(DefinitionEnv{}),
		expr.AsBool(),
		expr.MaxNodes(maxFilterNodes),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", expression, err)
	}
	return &DefinitionFilter{program: program, expression: expression}, nil
}

// Match evaluates the filter. A nil filter matches everything.
func (f *DefinitionFilter) Match(env DefinitionEnv) (bool, error) {
	if f == nil {
		return true, nil
	}
	output, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("filter %q failed for %s %s: %w", f.expression, env.Kind, env.Name, err)
	}
	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T, expected bool", f.expression, output)
	}
	return result, nil
}

// String returns the source expression.
func (f *DefinitionFilter) String() string {
	if f == nil {
		return ""
	}
	return f.expression
}
