// Package filter narrows decoded API responses with expr expressions.
//
// A filter is compiled once and evaluated against each record (JSON
// object) of a result set. Record fields are exposed as top-level
// variables, so an AGSI storage row can be filtered with expressions
// like:
//
//	number(full) > 80 && Country == "DE"
//	parseDate(gasDayStart) > daysAgo(7)
package filter

import (
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled record filter. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // record fields vary per platform
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one record. Records that cause
// an evaluation error are excluded rather than aborting the run.
func (f *Filter) Match(record map[string]any) bool {
	env := helperFunctions()
	for k, v := range record {
		env[k] = v
	}
	env["Record"] = record

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}
	return result.(bool)
}

// Apply returns the elements of a decoded JSON array whose object
// records match the filter. Non-object elements never match.
func (f *Filter) Apply(records []any) []any {
	matched := make([]any, 0, len(records))
	for _, rec := range records {
		obj, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		if f.Match(obj) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// helperFunctions builds the static environment available to every
// expression.
func helperFunctions() map[string]any {
	env := make(map[string]any, 16)

	// Numeric helper: the platforms serve most figures as strings.
	env["number"] = func(v any) float64 {
		switch val := v.(type) {
		case float64:
			return val
		case int:
			return float64(val)
		case string:
			f, _ := strconv.ParseFloat(val, 64)
			return f
		default:
			return 0
		}
	}

	// Date helpers
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}

	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper

	// Current time
	env["now"] = time.Now

	return env
}
