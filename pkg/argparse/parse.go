// SPDX-License-Identifier: AGPL-3.0-or-later

package argparse

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parse turns a JSON description document into a SignatureSet for the given
// dialect. The text must already be pure JSON; stripping any leading emitter
// noise is the caller's job.
//
// Errors are typed: *SyntaxError when the text is not JSON at all,
// *ShapeError when it is JSON but not a description document.
func Parse(text string, dialect Dialect) (*SignatureSet, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ShapeError{Msg: "top level must be an object keyed by command tag"}
		}
		return nil, &SyntaxError{Err: err}
	}
	// Literal null unmarshals into a nil map without error.
	if doc == nil {
		return nil, &ShapeError{Msg: "top level must be an object keyed by command tag"}
	}

	set := &SignatureSet{dialect: dialect}
	for tag, raw := range doc {
		sig, err := parseCommand(tag, raw, dialect)
		if err != nil {
			return nil, err
		}
		if sig == nil {
			continue // not available to this dialect
		}
		set.byTag.Set(tag, sig)
	}
	return set, nil
}

type rawCommand struct {
	Sig    json.RawMessage `json:"sig"`
	Help   string          `json:"help"`
	Module string          `json:"module"`
	Perm   string          `json:"perm"`
	Avail  string          `json:"avail"`
}

type rawDescriptor struct {
	Name      string          `json:"name"`
	Type      *string         `json:"type"`
	Req       json.RawMessage `json:"req"`
	N         json.RawMessage `json:"n"`
	Strings   string          `json:"strings"`
	Range     string          `json:"range"`
	Goodchars string          `json:"goodchars"`
	Prefix    string          `json:"prefix"`
	Default   string          `json:"default"`
}

func parseCommand(tag string, raw json.RawMessage, dialect Dialect) (*Signature, error) {
	var rc rawCommand
	if err := json.Unmarshal(raw, &rc); err != nil {
		return nil, &ShapeError{Tag: tag, Msg: "entry is not a command object"}
	}
	// An absent sig leaves the RawMessage nil; an explicit null hands us
	// its literal bytes. Neither is a signature.
	if rc.Sig == nil || string(rc.Sig) == "null" {
		return nil, &ShapeError{Tag: tag, Msg: "missing sig"}
	}
	if rc.Avail != "" && !strings.Contains(rc.Avail, dialect.String()) {
		return nil, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(rc.Sig, &entries); err != nil {
		return nil, &ShapeError{Tag: tag, Msg: "sig must be an array"}
	}

	sig := &Signature{
		Tag:    tag,
		Args:   make([]Descriptor, 0, len(entries)),
		Help:   rc.Help,
		Module: rc.Module,
		Perm:   rc.Perm,
		Avail:  rc.Avail,
	}
	for i, entry := range entries {
		desc, err := parseDescriptor(tag, i, entry)
		if err != nil {
			return nil, err
		}
		sig.Args = append(sig.Args, *desc)
	}
	return sig, nil
}

func parseDescriptor(tag string, idx int, entry json.RawMessage) (*Descriptor, error) {
	shapeErr := func(format string, args ...any) error {
		return &ShapeError{Tag: tag, Msg: fmt.Sprintf("sig[%d]: ", idx) + fmt.Sprintf(format, args...)}
	}

	// Bare strings are shorthand for a literal command word.
	var word string
	if err := json.Unmarshal(entry, &word); err == nil {
		return &Descriptor{Name: "prefix", Kind: KindPrefix, Req: true, Prefix: word}, nil
	}

	var rd rawDescriptor
	if err := json.Unmarshal(entry, &rd); err != nil {
		return nil, shapeErr("must be a string or a descriptor object")
	}
	if rd.Type == nil {
		return nil, shapeErr("descriptor missing type")
	}
	kind, ok := ParseKind(*rd.Type)
	if !ok {
		return nil, shapeErr("unknown argument type %q", *rd.Type)
	}

	d := &Descriptor{
		Name:      rd.Name,
		Kind:      kind,
		Req:       true,
		Prefix:    rd.Prefix,
		GoodChars: rd.Goodchars,
		Default:   rd.Default,
	}

	if rd.Req != nil {
		req, err := flexBool(rd.Req)
		if err != nil {
			return nil, shapeErr("bad req value %s", rd.Req)
		}
		d.Req = req
	}
	if rd.N != nil {
		repeated, err := flexN(rd.N)
		if err != nil {
			return nil, shapeErr("n must be 1 or N, got %s", rd.N)
		}
		d.Repeated = repeated
	}
	if rd.Range != "" {
		lo, hi, err := parseRange(rd.Range)
		if err != nil {
			return nil, shapeErr("bad range %q", rd.Range)
		}
		d.RangeMin, d.RangeMax = lo, hi
	}

	switch kind {
	case KindPrefix:
		if d.Prefix == "" {
			return nil, shapeErr("prefix descriptor missing prefix word")
		}
		if d.Name == "" {
			d.Name = "prefix"
		}
	case KindChoices:
		if rd.Strings == "" {
			return nil, shapeErr("choices descriptor missing strings")
		}
		d.Choices = strings.Split(rd.Strings, "|")
	}

	if kind != KindPrefix && d.Name == "" {
		return nil, shapeErr("descriptor missing name")
	}
	if d.GoodChars != "" {
		re, err := regexp.Compile("^[" + d.GoodChars + "]+$")
		if err != nil {
			return nil, shapeErr("bad goodchars %q", d.GoodChars)
		}
		d.goodchars = re
	}
	if d.Default != "" {
		if _, cerr := d.coerce(d.Default); cerr != nil {
			return nil, shapeErr("default %q does not satisfy %s", d.Default, d.Kind)
		}
	}
	return d, nil
}

// flexBool accepts the forms the emitter has produced over time: JSON
// booleans and their string spellings.
func flexBool(raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.ParseBool(s)
	}
	return false, fmt.Errorf("not a boolean")
}

// flexN accepts 1 (single), the string "N" (repeated), and their string and
// numeric spellings.
func flexN(raw json.RawMessage) (bool, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		if n == 1 {
			return false, nil
		}
		return false, fmt.Errorf("unsupported count %d", n)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch s {
		case "1":
			return false, nil
		case "N", "n":
			return true, nil
		}
	}
	return false, fmt.Errorf("not a count")
}

// parseRange understands "min" and "min|max".
func parseRange(s string) (lo, hi *float64, err error) {
	parts := strings.SplitN(s, "|", 2)
	if parts[0] != "" {
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, nil, err
		}
		lo = &v
	}
	if len(parts) == 2 && parts[1] != "" {
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, nil, err
		}
		hi = &v
	}
	if lo == nil && hi == nil {
		return nil, nil, fmt.Errorf("empty range")
	}
	if lo != nil && hi != nil && *lo > *hi {
		return nil, nil, fmt.Errorf("min above max")
	}
	return lo, hi, nil
}
