// Package function compiles expressions of one variable, x, into chart
// functions.
package function

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/apelloni/textplots/pkg/chart"
)

// Variable is the name of the free variable in an expression.
const Variable = "x"

var ErrEmpty = errors.New("function: empty expression")

// builtins are the constants and functions available to expressions, in
// addition to the language's own abs, ceil, floor and round.
var builtins = map[string]any{
	"pi": math.Pi,
	"e":  math.E,

	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log,
	"log2":  math.Log2,
	"log10": math.Log10,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"pow":   math.Pow,
	"hypot": math.Hypot,
}

// Names returns the sorted names of the builtin constants and functions.
func Names() []string {
	return slices.Sorted(maps.Keys(builtins))
}

// Compile parses src, such as "sin(x) / x", into a function of x.
//
// Evaluation errors, such as an integer division by zero, evaluate to NaN so
// the sample is dropped from the plot. The returned function is not safe for
// concurrent use.
func Compile(src string) (chart.Func, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmpty
	}

	env := newEnv()
	program, err := expr.Compile(src, expr.Env(env), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("function: compiling %q: %w", src, err)
	}

	return evaluator(program, env), nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) chart.Func {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}

func evaluator(program *vm.Program, env map[string]any) chart.Func {
	return func(x float64) float64 {
		env[Variable] = x
		out, err := expr.Run(program, env)
		if err != nil {
			return math.NaN()
		}
		y, ok := out.(float64)
		if !ok {
			return math.NaN()
		}
		return y
	}
}

func newEnv() map[string]any {
	env := make(map[string]any, len(builtins)+1)
	for name, v := range builtins {
		env[name] = v
	}
	env[Variable] = 0.0
	return env
}
