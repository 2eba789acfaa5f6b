package argparse

import (
	"fmt"
	"strings"
)

// SyntaxError reports description text that is not valid JSON at all.
// It is distinct from ShapeError so callers can tell a truncated or
// garbled document apart from a structurally wrong one.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("descriptions are not valid JSON: %v", e.Err)
}

// Unwrap exposes the underlying encoding/json error.
func (e *SyntaxError) Unwrap() error { return e.Err }

// ShapeError reports syntactically valid JSON that does not conform to the
// expected description layout: a missing sig, a sig that is not an array,
// a descriptor without a type, an unknown argument kind, and so on.
type ShapeError struct {
	Tag string // command tag, empty when the fault is document-level
	Msg string
}

func (e *ShapeError) Error() string {
	if e.Tag == "" {
		return "malformed descriptions: " + e.Msg
	}
	return fmt.Sprintf("malformed descriptor %s: %s", e.Tag, e.Msg)
}

// NoMatchError reports that no signature accepts the given token sequence.
type NoMatchError struct {
	Tokens []string
	Reason string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no signature matches %q: %s", strings.Join(e.Tokens, " "), e.Reason)
}

// CoercionError reports a token that matched positionally but cannot be
// converted to its descriptor's declared kind.
type CoercionError struct {
	Tag    string
	Arg    string
	Kind   Kind
	Token  string
	Reason string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("%s: argument %s: %q is not a valid %s: %s",
		e.Tag, e.Arg, e.Token, e.Kind, e.Reason)
}
