package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/eykd/namefile-go/internal/namefile"
)

func TestParseCmd_HumanOutput(t *testing.T) {
	out, err := execute(t, "parse", "foo-bar-baz.20200101.1.0.0.txt", "--no-color")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"name:",
		"foo-bar-baz.20200101.1.0.0.txt",
		"kind:",
		"file",
		"stem:",
		"foo",
		"tags:",
		"bar, baz",
		"date:",
		"20200101",
		"version:",
		"1.0.0",
		"suffix:",
		"txt",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseCmd_DirectoryOmitsAbsentFields(t *testing.T) {
	out, err := execute(t, "parse", "foo", "--no-color")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "directory") {
		t.Errorf("output missing kind \"directory\":\n%s", out)
	}
	for _, absent := range []string{"tags:", "date:", "version:", "suffix:"} {
		if strings.Contains(out, absent) {
			t.Errorf("output contains %q for an absent field:\n%s", absent, out)
		}
	}
}

func TestParseCmd_JSONOutput(t *testing.T) {
	out, err := execute(t, "parse", "stem.1.0.txt", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got descriptorOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if got.Version != "1.0" || got.Suffix != "txt" {
		t.Errorf("got version %q suffix %q, want version \"1.0\" suffix \"txt\"", got.Version, got.Suffix)
	}
	if got.Kind != "file" {
		t.Errorf("got kind %q, want %q", got.Kind, "file")
	}
}

func TestParseCmd_JSONOmitsAbsentFields(t *testing.T) {
	out, err := execute(t, "parse", "foo", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	for _, absent := range []string{"tags", "date", "version", "suffix"} {
		if _, ok := raw[absent]; ok {
			t.Errorf("JSON output contains key %q for an absent field", absent)
		}
	}
}

func TestParseCmd_InvalidName(t *testing.T) {
	_, err := execute(t, "parse", "no spaces allowed")
	if !errors.Is(err, namefile.ErrInvalidName) {
		t.Errorf("error = %v, want ErrInvalidName", err)
	}
}

func TestParseCmd_ControlCharactersScrubbedFromError(t *testing.T) {
	_, err := execute(t, "parse", "bad\x1b[2Jname!")
	if err == nil {
		t.Fatal("expected error for invalid name")
	}
	if !strings.Contains(err.Error(), "bad?[2Jname!") {
		t.Errorf("error does not scrub control characters: %v", err)
	}
}
