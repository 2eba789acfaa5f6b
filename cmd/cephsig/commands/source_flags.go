package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wangzhiNJU/ceph/internal/extract"
	"github.com/wangzhiNJU/ceph/internal/source"
	"github.com/wangzhiNJU/ceph/pkg/argparse"
)

// sourceOpts holds the shared flags that every command needing a
// description document takes.
type sourceOpts struct {
	from string
	exec string
	mode string
}

func (o *sourceOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.from, "from", "", "description file to read, or - for stdin")
	cmd.Flags().StringVar(&o.exec, "exec", "", "descriptor-emitting executable to run")
	cmd.Flags().StringVar(&o.mode, "mode", "all", "emitter mode flag when using --exec")
}

// loadSet acquires the document, strips emitter noise, and parses it under
// the --dialect the invocation selected.
func (o *sourceOpts) loadSet(cmd *cobra.Command) (*argparse.SignatureSet, error) {
	name, err := cmd.Flags().GetString("dialect")
	if err != nil {
		return nil, err
	}
	dialect, err := argparse.ParseDialect(name)
	if err != nil {
		return nil, err
	}

	raw, err := source.Load(cmd.Context(), source.Options{
		Path: o.from,
		Exec: o.exec,
		Mode: o.mode,
	})
	if err != nil {
		return nil, err
	}
	text, err := extract.JSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to extract descriptions: %w", err)
	}

	set, err := argparse.Parse(text, dialect)
	if err != nil {
		return nil, classify(err)
	}
	return set, nil
}
