package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/namefile-go/internal/namefile"
)

// NewParseCmd creates the parse subcommand.
func NewParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "parse <name>",
		Short:        "Decode a structured name into its fields",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonMode, _ := cmd.Flags().GetBool("json")
			noColor, _ := cmd.Flags().GetBool("no-color")

			d, err := namefile.Parse(args[0])
			if err != nil {
				return fmt.Errorf("decoding %s: %w", sanitizeName(args[0]), err)
			}

			out := newDescriptorOutput(d)
			if jsonMode {
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(out); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
				return nil
			}
			writeHuman(cmd.OutOrStdout(), out, noColor)
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Output result as JSON")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}
