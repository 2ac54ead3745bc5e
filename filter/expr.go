package filter

import (
	"maps"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/trivia/opentdb"
)

// Filter is a compiled question filter
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache[*Filter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// Compiler compiles expressions into filters
type Compiler struct {
	helperFuncs map[string]any
	cache       *lruCache[*Filter]
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile parses and compiles an expression. The expression must evaluate to a bool.
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	env := createRuntimeEnvironment(opentdb.Question{}, c.helperFuncs)
	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &Filter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Compile compiles an expression with a default compiler
func Compile(expression string) (*Filter, error) {
	return NewCompiler().Compile(expression)
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one question
func (f *Filter) Match(q opentdb.Question) (bool, error) {
	result, err := expr.Run(f.program, createRuntimeEnvironment(q, f.helpers))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Question:   q.Text,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	// AsBool at compile time guarantees the type
	return result.(bool), nil
}

// Apply returns the questions matching the filter, in their original order
func (f *Filter) Apply(questions []opentdb.Question) ([]opentdb.Question, error) {
	matched := make([]opentdb.Question, 0, len(questions))
	for _, q := range questions {
		ok, err := f.Match(q)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

// createHelperFunctions creates the static helper functions. contains,
// startsWith and endsWith are operators in expr, so the case-insensitive
// variants carry a Fold suffix.
func createHelperFunctions() map[string]any {
	return map[string]any{
		"containsFold": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"hasPrefixFold": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"hasSuffixFold": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"words": func(str string) int {
			return len(strings.Fields(str))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// createRuntimeEnvironment builds the expression environment for one question
func createRuntimeEnvironment(q opentdb.Question, helpers map[string]any) map[string]any {
	env := make(map[string]any, len(helpers)+12)
	maps.Copy(env, helpers)

	env["Category"] = q.Category
	env["Type"] = q.Type
	env["Difficulty"] = q.Difficulty
	env["Text"] = q.Text
	env["CorrectAnswer"] = q.CorrectAnswer
	env["IncorrectAnswers"] = q.IncorrectAnswers
	env["Answers"] = q.Answers()

	env["isBoolean"] = func() bool {
		return q.IsBoolean()
	}
	env["isMultiple"] = func() bool {
		return !q.IsBoolean()
	}
	env["hasAnswer"] = createHasAnswerFunc(q.Answers())

	return env
}

func createHasAnswerFunc(answers []string) func(string) bool {
	lower := make([]string, len(answers))
	for i, a := range answers {
		lower[i] = strings.ToLower(a)
	}
	return func(answer string) bool {
		return slices.Contains(lower, strings.ToLower(answer))
	}
}
