package argparse

import "fmt"

// Dialect selects which consumer a description document is parsed for.
// The document lists every command; each command's avail field names the
// consumers it is exposed to, and Parse keeps only the matching ones.
type Dialect int

const (
	// DialectCLI parses descriptions for command-line consumers.
	DialectCLI Dialect = iota
	// DialectREST parses descriptions for REST API consumers.
	DialectREST
)

func (d Dialect) String() string {
	switch d {
	case DialectCLI:
		return "cli"
	case DialectREST:
		return "rest"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// ParseDialect maps a dialect name to its Dialect value.
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "cli":
		return DialectCLI, nil
	case "rest":
		return DialectREST, nil
	}
	return 0, fmt.Errorf("unknown dialect %q (want cli or rest)", s)
}
