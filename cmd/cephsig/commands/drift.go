package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wangzhiNJU/ceph/internal/registry"
)

// NewDriftCommand compares a description document against the
// expected-command registry.
func NewDriftCommand() *cobra.Command {
	var (
		src     sourceOpts
		regPath string
	)

	cmd := &cobra.Command{
		Use:   "drift",
		Short: "Detect drift between descriptions and the command registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.Load(regPath)
			if err != nil {
				return err
			}
			set, err := src.loadSet(cmd)
			if err != nil {
				return err
			}

			findings := reg.Drift(set)
			if len(findings) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✓ Descriptions match the registry")
				return nil
			}
			for _, f := range findings {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), f.String())
			}
			return fmt.Errorf("drift detected: %d finding(s)", len(findings))
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringVar(&regPath, "registry", "commands.yaml", "path to the expected-command registry")
	return cmd
}
