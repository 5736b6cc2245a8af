// Package filter compiles boolean expressions evaluated against search
// result rows. XIVAPI's server-side filters only support numeric range
// comparisons, so this gives callers full boolean expressions over the
// columns a search returned, e.g.
//
//	LevelItem > 50 && contains(Name, "ingot")
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/halcyorn/xivseek/xivapi"
)

// RowFilter is a compiled filter expression. It is safe for concurrent use.
type RowFilter struct {
	expression string
	program    *vm.Program
}

// CompilationError reports a filter expression that could not be compiled
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

// Error implements the error interface
func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid filter expression %q: %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid filter expression %q: %s", e.Expression, e.Reason)
}

// Unwrap returns the underlying cause
func (e *CompilationError) Unwrap() error {
	return e.Err
}

// Compile compiles an expression into an executable row filter. Column
// names referenced by the expression resolve at evaluation time, so
// undefined variables are allowed during compilation.
func Compile(expression string) (*RowFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // row columns vary per search
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &RowFilter{
		expression: expression,
		program:    program,
	}, nil
}

// Evaluate runs the filter against a single result row.
func (f *RowFilter) Evaluate(row xivapi.Row) (bool, error) {
	env := helperFunctions()
	for column, value := range row {
		env[column] = value
	}
	env["Row"] = map[string]any(row)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter against row: %w", err)
	}

	// Guaranteed bool by the AsBool compile option.
	return result.(bool), nil
}

// Apply returns the rows the filter matches, in input order. Rows that fail
// to evaluate are dropped and the first evaluation error is returned
// alongside the matches.
func (f *RowFilter) Apply(rows []xivapi.Row) ([]xivapi.Row, error) {
	var matched []xivapi.Row
	var firstErr error

	for _, row := range rows {
		ok, err := f.Evaluate(row)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if ok {
			matched = append(matched, row)
		}
	}

	return matched, firstErr
}

// Expression returns the original expression
func (f *RowFilter) Expression() string {
	return f.expression
}

// helperFunctions builds the helpers available to every expression.
func helperFunctions() map[string]any {
	env := make(map[string]any, 8)
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	return env
}
