// SPDX-License-Identifier: AGPL-3.0-or-later

package argparse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Validate matches a token sequence against the set. Candidates are ranked
// by how many leading command words they match; the best-ranked signature
// that fully consumes the tokens wins. On failure the error comes from the
// best-ranked candidate: *NoMatchError when the shape never fit,
// *CoercionError when a token landed on its descriptor but would not convert.
func (s *SignatureSet) Validate(tokens []string) (*Result, error) {
	if s.Len() == 0 {
		return nil, &NoMatchError{Tokens: tokens, Reason: "empty signature set"}
	}

	type candidate struct {
		sig     *Signature
		matched int
	}
	cands := make([]candidate, 0, s.Len())
	s.Each(func(sig *Signature) bool {
		cands = append(cands, candidate{sig: sig, matched: matchWords(sig, tokens)})
		return true
	})
	// Stable keeps tag order within equal ranks; Each visits tags ascending.
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].matched > cands[j].matched
	})

	var firstErr error
	for _, c := range cands {
		res, err := bind(c.sig, tokens)
		if err == nil {
			return res, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// matchWords counts how many leading literal command words the tokens
// satisfy, which ranks candidate signatures before binding.
func matchWords(sig *Signature, tokens []string) int {
	n := 0
	for i := range sig.Args {
		d := &sig.Args[i]
		if d.Kind != KindPrefix {
			break
		}
		if n >= len(tokens) || tokens[n] != d.Prefix {
			break
		}
		n++
	}
	return n
}

func bind(sig *Signature, tokens []string) (*Result, error) {
	noMatch := func(format string, args ...any) error {
		return &NoMatchError{Tokens: tokens, Reason: sig.Tag + ": " + fmt.Sprintf(format, args...)}
	}

	bindings := make([]Binding, 0, len(sig.Args))
	i := 0
	for di := range sig.Args {
		d := &sig.Args[di]
		switch d.Kind {
		case KindPrefix:
			if i >= len(tokens) || tokens[i] != d.Prefix {
				if d.Req {
					return nil, noMatch("expected %q", d.Prefix)
				}
				continue
			}
			bindings = append(bindings, Binding{Name: d.Name, Raw: tokens[i : i+1], Value: d.Prefix})
			i++

		case KindBool:
			v, cerr, ok := matchFlag(d, tokens, i)
			if cerr != nil {
				cerr.Tag = sig.Tag
				return nil, cerr
			}
			if !ok {
				if d.Req {
					return nil, noMatch("missing required flag --%s", d.Name)
				}
				continue
			}
			bindings = append(bindings, Binding{Name: d.Name, Raw: tokens[i : i+1], Value: v})
			i++

		default:
			if d.Repeated {
				var vals []any
				start := i
				for i < len(tokens) {
					v, cerr := d.coerce(tokens[i])
					if cerr != nil {
						break
					}
					vals = append(vals, v)
					i++
				}
				if len(vals) == 0 {
					if !d.Req {
						continue
					}
					if start >= len(tokens) {
						return nil, noMatch("missing required argument %s", d.Name)
					}
					_, cerr := d.coerce(tokens[start])
					cerr.Tag = sig.Tag
					return nil, cerr
				}
				bindings = append(bindings, Binding{Name: d.Name, Raw: tokens[start:i], Value: vals})
				continue
			}

			if i >= len(tokens) {
				if d.Req {
					return nil, noMatch("missing required argument %s", d.Name)
				}
				if d.Default != "" {
					v, _ := d.coerce(d.Default)
					bindings = append(bindings, Binding{Name: d.Name, Value: v})
				}
				continue
			}
			v, cerr := d.coerce(tokens[i])
			if cerr != nil {
				if d.Req {
					cerr.Tag = sig.Tag
					return nil, cerr
				}
				if d.Default != "" {
					dv, _ := d.coerce(d.Default)
					bindings = append(bindings, Binding{Name: d.Name, Value: dv})
				}
				continue
			}
			bindings = append(bindings, Binding{Name: d.Name, Raw: tokens[i : i+1], Value: v})
			i++
		}
	}

	if i < len(tokens) {
		return nil, noMatch("unexpected trailing tokens %q", strings.Join(tokens[i:], " "))
	}
	return newResult(sig.Tag, bindings), nil
}

// matchFlag recognizes --name and --name=<bool>. A malformed value after the
// explicit --name= form is a coercion error, not a miss: the token named the
// flag, so no other descriptor may claim it.
func matchFlag(d *Descriptor, tokens []string, i int) (bool, *CoercionError, bool) {
	if i >= len(tokens) {
		return false, nil, false
	}
	tok := tokens[i]
	if tok == "--"+d.Name {
		return true, nil, true
	}
	if val, ok := strings.CutPrefix(tok, "--"+d.Name+"="); ok {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return false, &CoercionError{
				Arg: d.Name, Kind: d.Kind, Token: tok, Reason: "not a boolean",
			}, false
		}
		return b, nil, true
	}
	return false, nil, false
}
