// Package clierr carries process exit codes on errors so main() can map
// each failure class to a distinct code without re-inspecting error types.
package clierr

import "errors"

// Exit codes for the cephsig failure classes. Scripts driving cephsig rely
// on these staying stable.
const (
	CodeGeneric  = 1 // everything else
	CodeSyntax   = 2 // descriptions are not valid JSON
	CodeShape    = 3 // valid JSON, wrong description structure
	CodeNoMatch  = 4 // no signature accepts the invocation
	CodeCoercion = 5 // a token failed its declared type
)

// ExitError wraps a cause with an exit code. Unwrap keeps errors.Is/As
// working against the cause.
type ExitError struct {
	code  int
	cause error
}

func (e *ExitError) Error() string { return e.cause.Error() }

func (e *ExitError) ExitCode() int { return e.code }

func (e *ExitError) Unwrap() error { return e.cause }

// WithCode attaches an exit code to err. A nil err stays nil.
func WithCode(code int, err error) error {
	if err == nil {
		return nil
	}
	if code <= 0 {
		code = CodeGeneric
	}
	return &ExitError{code: code, cause: err}
}

// ExitCodeOf extracts the exit code from err, defaulting to CodeGeneric
// for errors that never got one.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return CodeGeneric
}
