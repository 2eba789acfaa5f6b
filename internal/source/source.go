// Package source acquires raw command-description text for the CLI: from a
// file, from stdin, or by running a descriptor-emitting executable and
// capturing its output.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Options selects where the description text comes from. Exactly one of
// Path or Exec must be set; Path "-" reads Stdin.
type Options struct {
	// Path is a file to read, or "-" for Stdin.
	Path string
	// Exec is a descriptor-emitting executable to run as "<exec> --<mode>".
	Exec string
	// Mode is the emitter mode flag, e.g. "all".
	Mode string
	// Stdin backs Path "-"; defaults to os.Stdin.
	Stdin io.Reader
}

// Load returns the raw description text for opts. The text may still carry
// leading emitter noise; callers extract the JSON payload themselves.
func Load(ctx context.Context, opts Options) (string, error) {
	switch {
	case opts.Path != "" && opts.Exec != "":
		return "", fmt.Errorf("cannot read from both a file and an executable")
	case opts.Exec != "":
		return fromExec(ctx, opts.Exec, opts.Mode)
	case opts.Path == "-":
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	case opts.Path != "":
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read descriptions: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("no description source given")
}

func fromExec(ctx context.Context, prog, mode string) (string, error) {
	if mode == "" {
		mode = "all"
	}
	cmd := exec.CommandContext(ctx, prog, "--"+mode)
	// Emitters interleave noise on stderr with the payload on stdout, so
	// capture both and let extraction sort it out.
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s --%s failed: %w", prog, mode, err)
	}
	return string(out), nil
}
