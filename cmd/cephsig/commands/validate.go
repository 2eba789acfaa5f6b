package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand validates one invocation against a description document
// and prints the bound values.
func NewValidateCommand() *cobra.Command {
	var src sourceOpts

	cmd := &cobra.Command{
		Use:   "validate <token>...",
		Short: "Validate a command invocation against the descriptions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := src.loadSet(cmd)
			if err != nil {
				return err
			}

			res, err := set.Validate(args)
			if err != nil {
				return classify(err)
			}

			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			matched := "matched " + res.Tag
			if prefix := res.Prefix(); prefix != "" {
				matched = prefix + " " + matched
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", matched, out)
			return nil
		},
	}

	src.addFlags(cmd)
	return cmd
}
