package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewParseCommand checks that a description document parses cleanly.
func NewParseCommand() *cobra.Command {
	var src sourceOpts

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a description document and report its command count",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := src.loadSet(cmd)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Parsed %d command signature(s) for dialect %s\n",
				set.Len(), set.Dialect())
			return nil
		},
	}

	src.addFlags(cmd)
	return cmd
}
