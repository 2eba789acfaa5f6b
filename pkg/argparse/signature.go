// SPDX-License-Identifier: AGPL-3.0-or-later

// Package argparse parses JSON command-description documents into immutable
// signature sets and validates command invocations against them. It is the
// Go counterpart of Ceph's ceph_argparse module: the descriptions are the
// JSON emitted by a descriptor-producing executable, one entry per command
// tag, each carrying an ordered signature of typed argument descriptors.
package argparse

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/btree"
)

// Signature is one command's accepted argument shape plus the metadata the
// description document carries alongside it.
type Signature struct {
	Tag    string       `json:"-"`
	Args   []Descriptor `json:"sig"`
	Help   string       `json:"help,omitempty"`
	Module string       `json:"module,omitempty"`
	Perm   string       `json:"perm,omitempty"`
	Avail  string       `json:"avail,omitempty"`
}

// SignatureSet maps command tags to signatures. It is built once by Parse
// and read-only afterwards, so concurrent Validate calls are safe.
type SignatureSet struct {
	dialect Dialect
	byTag   btree.Map[string, *Signature]
}

// Dialect returns the dialect the set was parsed under.
func (s *SignatureSet) Dialect() Dialect { return s.dialect }

// Len returns the number of command signatures in the set.
func (s *SignatureSet) Len() int { return s.byTag.Len() }

// Get returns the signature registered under tag.
func (s *SignatureSet) Get(tag string) (*Signature, bool) {
	return s.byTag.Get(tag)
}

// Tags returns all command tags in ascending order.
func (s *SignatureSet) Tags() []string {
	tags := make([]string, 0, s.byTag.Len())
	s.byTag.Scan(func(tag string, _ *Signature) bool {
		tags = append(tags, tag)
		return true
	})
	return tags
}

// Each visits every signature in tag order until fn returns false.
func (s *SignatureSet) Each(fn func(sig *Signature) bool) {
	s.byTag.Scan(func(_ string, sig *Signature) bool {
		return fn(sig)
	})
}

// MarshalJSON renders the set as one JSON object keyed by command tag,
// in tag order, suitable for dumping and diffing.
func (s *SignatureSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	var marshalErr error
	s.byTag.Scan(func(tag string, sig *Signature) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		key, err := json.Marshal(tag)
		if err != nil {
			marshalErr = err
			return false
		}
		buf.Write(key)
		buf.WriteByte(':')
		body, err := json.Marshal(sig)
		if err != nil {
			marshalErr = err
			return false
		}
		buf.Write(body)
		return true
	})
	if marshalErr != nil {
		return nil, marshalErr
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
