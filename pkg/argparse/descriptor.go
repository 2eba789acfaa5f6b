package argparse

import "regexp"

// Descriptor describes one argument position within a signature: its name,
// kind, requiredness, repetition, and any kind-specific constraints.
type Descriptor struct {
	Name string `json:"name"`
	Kind Kind   `json:"type"`

	// Req marks the argument as mandatory. Defaults to true, matching the
	// description emitter.
	Req bool `json:"req"`

	// Repeated descriptors (n=N in the document) consume as many tokens
	// as will coerce, at least one when required.
	Repeated bool `json:"n,omitempty"`

	// Default, when set on an optional descriptor, is coerced and bound
	// when no token fills the position.
	Default string `json:"default,omitempty"`

	// Prefix is the literal command word for KindPrefix descriptors.
	Prefix string `json:"prefix,omitempty"`

	// Choices holds the accepted values for KindChoices.
	Choices []string `json:"strings,omitempty"`

	// RangeMin/RangeMax bound KindInt and KindFloat values when present.
	RangeMin *float64 `json:"range_min,omitempty"`
	RangeMax *float64 `json:"range_max,omitempty"`

	// GoodChars restricts KindString values to a character class,
	// e.g. "A-Za-z0-9-_.=".
	GoodChars string `json:"goodchars,omitempty"`

	goodchars *regexp.Regexp
}
