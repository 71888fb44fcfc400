// Package compile wires the validator (internal/validate) and the code
// generator (internal/codegen) behind the four named build-time entry
// points the rest of the toolchain is expected to call: Compile,
// CompileWarnOnly, CompileForTest, and CompileWithValidation.
package compile

import (
	"fmt"

	"gbcc/internal/codegen"
	"gbcc/internal/game"
	"gbcc/internal/validate"
)

// ValidationException carries the full validation result when Compile
// aborts generation because of one or more error-level diagnostics. It
// mirrors the teacher's DiagnosticsError (internal/corelx/diagnostics.go):
// Error() surfaces the first error for a one-line message, while the full
// diagnostic set stays attached on Result for callers that want to inspect
// every finding.
type ValidationException struct {
	Result validate.Result
}

func (e *ValidationException) Error() string {
	if e == nil || len(e.Result.Errors) == 0 {
		return ""
	}
	first := e.Result.Errors[0]
	return fmt.Sprintf("[%s] %s", first.Category, first.Message)
}

// Compile validates g and, only if validation reports no errors, generates
// the translation unit. Any error-level diagnostic aborts generation; the
// full result is returned wrapped in a *ValidationException.
func Compile(g *game.Game) (string, error) {
	result := validate.Validate(g)
	if !result.IsValid() {
		return "", &ValidationException{Result: result}
	}
	return codegen.Generate(g), nil
}

// CompileWarnOnly always generates, even when validation reports errors.
// Every diagnostic — warning or error — is handed to log instead of
// aborting the build.
func CompileWarnOnly(g *game.Game, log func(validate.Diag)) string {
	result := validate.Validate(g)
	for _, w := range result.Warnings {
		log(w)
	}
	for _, e := range result.Errors {
		log(e)
	}
	return codegen.Generate(g)
}

// CompileForTest skips validation entirely and generates straight from g.
// It exists for test harnesses that want generated C for a deliberately
// invalid Game without the validator aborting the build.
func CompileForTest(g *game.Game) string {
	return codegen.Generate(g)
}

// CompileWithValidation always generates and always returns the full
// validation result alongside the generated code, regardless of whether
// validation passed.
func CompileWithValidation(g *game.Game) (string, validate.Result) {
	result := validate.Validate(g)
	return codegen.Generate(g), result
}
