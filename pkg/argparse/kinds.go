package argparse

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies an argument descriptor's value type. The set is closed:
// a description document naming any other kind fails to parse.
type Kind string

const (
	KindPrefix   Kind = "CephPrefix"
	KindString   Kind = "CephString"
	KindInt      Kind = "CephInt"
	KindFloat    Kind = "CephFloat"
	KindBool     Kind = "CephBool"
	KindChoices  Kind = "CephChoices"
	KindUUID     Kind = "CephUUID"
	KindFilepath Kind = "CephFilepath"
)

// ParseKind maps a descriptor type string to its Kind, reporting whether
// the string names a known kind.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindPrefix, KindString, KindInt, KindFloat,
		KindBool, KindChoices, KindUUID, KindFilepath:
		return k, true
	}
	return "", false
}

func (k Kind) String() string { return string(k) }

// coerce converts one raw token into the descriptor's typed value.
// Bool and prefix descriptors are consumed by the matcher directly and
// never reach here.
func (d *Descriptor) coerce(token string) (any, *CoercionError) {
	fail := func(reason string) (any, *CoercionError) {
		return nil, &CoercionError{Arg: d.Name, Kind: d.Kind, Token: token, Reason: reason}
	}

	// A flag token never satisfies a value descriptor; without this an
	// optional string would swallow a misspelled flag.
	if strings.HasPrefix(token, "--") {
		return fail("expected a value, got a flag")
	}

	switch d.Kind {
	case KindString:
		if token == "" {
			return fail("empty string")
		}
		if d.goodchars != nil && !d.goodchars.MatchString(token) {
			return fail("contains characters outside " + d.GoodChars)
		}
		return token, nil

	case KindInt:
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return fail("not an integer")
		}
		if d.RangeMin != nil && float64(v) < *d.RangeMin {
			return fail("below minimum " + formatRange(*d.RangeMin))
		}
		if d.RangeMax != nil && float64(v) > *d.RangeMax {
			return fail("above maximum " + formatRange(*d.RangeMax))
		}
		return v, nil

	case KindFloat:
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return fail("not a number")
		}
		if d.RangeMin != nil && v < *d.RangeMin {
			return fail("below minimum " + formatRange(*d.RangeMin))
		}
		if d.RangeMax != nil && v > *d.RangeMax {
			return fail("above maximum " + formatRange(*d.RangeMax))
		}
		return v, nil

	case KindChoices:
		for _, c := range d.Choices {
			if token == c {
				return token, nil
			}
		}
		return fail("not one of " + strings.Join(d.Choices, "|"))

	case KindUUID:
		v, err := uuid.Parse(token)
		if err != nil {
			return fail("not a UUID")
		}
		return v, nil

	case KindFilepath:
		if token == "" {
			return fail("empty path")
		}
		return token, nil
	}

	return fail("kind cannot take a value")
}

func formatRange(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
