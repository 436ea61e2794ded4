package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/eykd/namefile-go/internal/namefile"
)

// descriptorOutput is the JSON output schema shared by the name and parse
// commands. Absent optional fields are omitted, never emitted as "".
type descriptorOutput struct {
	Name    string   `json:"name"`
	Kind    string   `json:"kind"` // "file" | "directory"
	Stem    string   `json:"stem"`
	Tags    []string `json:"tags,omitempty"`
	Date    string   `json:"date,omitempty"`
	Version string   `json:"version,omitempty"`
	Suffix  string   `json:"suffix,omitempty"`
}

func newDescriptorOutput(d namefile.Descriptor) descriptorOutput {
	out := descriptorOutput{
		Name: d.Name(),
		Kind: "directory",
		Stem: d.Stem(),
		Tags: d.Tags(),
	}
	if suffix, ok := d.Suffix(); ok {
		out.Kind = "file"
		out.Suffix = suffix
	}
	if date, ok := d.Date(); ok {
		out.Date = date.String()
	}
	if v, ok := d.Version(); ok {
		out.Version = v.String()
	}
	return out
}

// writeHuman renders the descriptor as one aligned line per present field.
func writeHuman(w io.Writer, out descriptorOutput, noColor bool) {
	label := color.New(color.FgCyan)
	kind := color.New(color.FgGreen, color.Bold)
	if noColor {
		label.DisableColor()
		kind.DisableColor()
	}

	field := func(name, value string) {
		fmt.Fprintf(w, "%s %s\n", label.Sprintf("%-9s", name+":"), value)
	}

	field("name", out.Name)
	fmt.Fprintf(w, "%s %s\n", label.Sprintf("%-9s", "kind:"), kind.Sprint(out.Kind))
	field("stem", out.Stem)
	if len(out.Tags) > 0 {
		field("tags", strings.Join(out.Tags, ", "))
	}
	if out.Date != "" {
		field("date", out.Date)
	}
	if out.Version != "" {
		field("version", out.Version)
	}
	if out.Suffix != "" {
		field("suffix", out.Suffix)
	}
}
