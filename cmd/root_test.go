package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd()
	for _, want := range []string{"name", "parse"} {
		var found bool
		for _, sub := range root.Commands() {
			if sub.Name() == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected %q subcommand registered on root command", want)
		}
	}
}

func TestNewRootCmd_AllCommandsWireRunE(t *testing.T) {
	root := NewRootCmd()
	for _, sub := range root.Commands() {
		c := sub
		t.Run(c.Name(), func(t *testing.T) {
			if c.Name() == "help" || c.Name() == "completion" {
				t.Skip("cobra builtin")
			}
			if c.RunE == nil {
				t.Errorf("command %q has nil RunE; must wire RunE for error visibility", c.Name())
			}
		})
	}
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{})

	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "nmf") {
		t.Errorf("expected help output to contain \"nmf\", got: %s", out.String())
	}
}
