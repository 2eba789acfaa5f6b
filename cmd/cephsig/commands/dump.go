package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewDumpCommand renders the parsed signature set as deterministic JSON,
// one object keyed by command tag in tag order, for diffing across emitter
// versions.
func NewDumpCommand() *cobra.Command {
	var (
		src sourceOpts
		out string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump the parsed signature set as indented JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := src.loadSet(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
					return fmt.Errorf("failed to create output dir: %w", err)
				}
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(set); err != nil {
				return fmt.Errorf("failed to encode json: %w", err)
			}
			return nil
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringVar(&out, "out", "", "write to this file instead of stdout")
	return cmd
}
