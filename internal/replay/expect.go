package replay

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// check evaluates a frame's expectations against its result and returns the
// ones that did not hold. An expectation that does not compile is an error.
func check(expectations []string, res Result) ([]string, error) {
	var failed []string
	for _, e := range expectations {
		program, err := expr.Compile(e, expr.Env(Result{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("%w: expectation %q: %w", ErrScenario, e, err)
		}
		out, err := expr.Run(program, res)
		if err != nil {
			return nil, fmt.Errorf("expectation %q: %w", e, err)
		}
		if ok, _ := out.(bool); !ok {
			failed = append(failed, e)
		}
	}
	return failed, nil
}
