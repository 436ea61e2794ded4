package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/eykd/namefile-go/internal/namefile"
)

// NewNameCmd creates the name subcommand.
func NewNameCmd() *cobra.Command {
	var (
		suffix      string
		tags        []string
		dateFlag    string
		versionFlag string
	)

	cmd := &cobra.Command{
		Use:          "name <stem>",
		Short:        "Encode a structured name from its fields",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonMode, _ := cmd.Flags().GetBool("json")

			opts := make([]namefile.Option, 0, 4)
			if suffix != "" {
				opts = append(opts, namefile.WithSuffix(suffix))
			}
			if len(tags) > 0 {
				opts = append(opts, namefile.WithTags(tags...))
			}
			if dateFlag != "" {
				opt, err := dateOption(dateFlag)
				if err != nil {
					return err
				}
				opts = append(opts, opt)
			}
			if versionFlag != "" {
				opts = append(opts, namefile.WithVersion(versionFlag))
			}

			d, err := namefile.New(args[0], opts...)
			if err != nil {
				return fmt.Errorf("building name: %w", err)
			}

			if jsonMode {
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(newDescriptorOutput(d)); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&suffix, "suffix", "", "File suffix; omit for a directory name")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag to attach (repeatable; order is irrelevant)")
	cmd.Flags().StringVar(&dateFlag, "date", "", `Date to stamp: "today", YYYYMMDD, 2006-01-02, or RFC 3339`)
	cmd.Flags().StringVar(&versionFlag, "version", "", "Version string (dotted grammar, e.g. 1.0.0 or 2.1rc1)")
	cmd.Flags().Bool("json", false, "Output result as JSON")

	return cmd
}

// dateOption maps the free-form --date flag onto one of the recognized
// date input shapes. Unrecognized text fails with ErrInvalidDate.
func dateOption(s string) (namefile.Option, error) {
	switch strings.ToLower(s) {
	case "today", "now":
		return namefile.WithToday(), nil
	}
	if d, err := namefile.ParseDate(s); err == nil {
		return namefile.WithDate(d), nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return namefile.WithDateTime(t), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", namefile.ErrInvalidDate, s)
}
