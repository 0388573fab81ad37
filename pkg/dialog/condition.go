package dialog

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
)

// ValidateConditionSyntax compiles a condition expression to check its
// syntax. The condition text stays opaque to the editor core and is never
// evaluated here; undefined variables are allowed since bindings only exist
// in whatever system eventually runs the flow.
func ValidateConditionSyntax(condition string) error {
	if condition == "" {
		return errors.New("condition expression cannot be empty")
	}

	_, err := expr.Compile(condition, expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("invalid condition expression: %w", err)
	}
	return nil
}
