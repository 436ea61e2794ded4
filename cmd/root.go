// Package cmd implements the nmf CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root nmf command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nmf",
		Short:         "nmf - encode and decode structured file names",
		Long: `nmf is a codec between structured file/directory descriptors and names.

A descriptor holds a stem, an optional tag set, an optional date, an
optional version, and an optional suffix (no suffix means directory name).
"nmf name" encodes a descriptor into its canonical name; "nmf parse"
decodes a name back into its fields.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewNameCmd())
	root.AddCommand(NewParseCmd())
	return root
}

func rootRunE(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
