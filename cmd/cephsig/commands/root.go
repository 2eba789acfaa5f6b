// SPDX-License-Identifier: AGPL-3.0-or-later

/*
cephsig - validation tooling for Ceph-style command descriptions.
It parses the JSON command-description documents a cluster executable
emits, validates candidate invocations against them, and detects drift
between the descriptions and an expected-command registry.
*/

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wangzhiNJU/ceph/cmd/cephsig/internal/clierr"
	"github.com/wangzhiNJU/ceph/pkg/argparse"
)

// NewRootCmd constructs the cephsig root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("CEPHSIG_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "cephsig",
		Short:         "cephsig - command-description parsing and validation",
		Long:          "cephsig parses JSON command-description documents, validates invocations against them, and checks them against an expected-command registry.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("dialect", "cli", "description dialect to parse (cli or rest)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of cephsig",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cephsig version %s\n", version)
		},
	})

	cmd.AddCommand(NewParseCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewDumpCommand())
	cmd.AddCommand(NewDriftCommand())

	return cmd
}

// classify attaches the exit code matching err's failure class.
func classify(err error) error {
	var (
		syntaxErr   *argparse.SyntaxError
		shapeErr    *argparse.ShapeError
		noMatchErr  *argparse.NoMatchError
		coercionErr *argparse.CoercionError
	)
	switch {
	case errors.As(err, &syntaxErr):
		return clierr.WithCode(clierr.CodeSyntax, err)
	case errors.As(err, &shapeErr):
		return clierr.WithCode(clierr.CodeShape, err)
	case errors.As(err, &noMatchErr):
		return clierr.WithCode(clierr.CodeNoMatch, err)
	case errors.As(err, &coercionErr):
		return clierr.WithCode(clierr.CodeCoercion, err)
	}
	return clierr.WithCode(clierr.CodeGeneric, err)
}
