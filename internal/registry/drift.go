package registry

import (
	"fmt"

	"github.com/wangzhiNJU/ceph/pkg/argparse"
)

// Finding is one registry-versus-document discrepancy.
type Finding struct {
	Tag    string
	Detail string
}

func (f Finding) String() string {
	return f.Tag + ": " + f.Detail
}

// Drift compares the expected commands against a parsed signature set and
// returns every discrepancy: registry commands the document dropped,
// document commands the registry never approved, and metadata or required
// argument mismatches. An empty slice means the two agree.
func (r *Registry) Drift(set *argparse.SignatureSet) []Finding {
	var findings []Finding

	expected := make(map[string]Command, len(r.Commands))
	for _, c := range r.Commands {
		expected[c.Tag] = c

		sig, ok := set.Get(c.Tag)
		if !ok {
			findings = append(findings, Finding{Tag: c.Tag, Detail: "missing from descriptions"})
			continue
		}
		if c.Module != "" && sig.Module != c.Module {
			findings = append(findings, Finding{
				Tag:    c.Tag,
				Detail: fmt.Sprintf("module is %q, registry expects %q", sig.Module, c.Module),
			})
		}
		if c.Perm != "" && sig.Perm != c.Perm {
			findings = append(findings, Finding{
				Tag:    c.Tag,
				Detail: fmt.Sprintf("perm is %q, registry expects %q", sig.Perm, c.Perm),
			})
		}
		for _, name := range c.Args {
			if !hasRequiredArg(sig, name) {
				findings = append(findings, Finding{
					Tag:    c.Tag,
					Detail: fmt.Sprintf("required argument %s not in signature", name),
				})
			}
		}
	}

	set.Each(func(sig *argparse.Signature) bool {
		if _, ok := expected[sig.Tag]; !ok {
			findings = append(findings, Finding{Tag: sig.Tag, Detail: "not in registry"})
		}
		return true
	})
	return findings
}

func hasRequiredArg(sig *argparse.Signature, name string) bool {
	for _, d := range sig.Args {
		if d.Name == name && d.Req && d.Kind != argparse.KindPrefix {
			return true
		}
	}
	return false
}
