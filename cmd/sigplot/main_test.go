// Package main provides tests for the sigplot CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/basepair-labs/sigplot/internal/cli"
	"github.com/basepair-labs/sigplot/internal/cli/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(out, "sigplot") {
		t.Errorf("version output should contain 'sigplot', got: %s", out)
	}
}

func TestHelpCommand(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	expectedCommands := []string{"plot", "watch", "inspect", "catalog", "init", "doctor", "version"}
	for _, expected := range expectedCommands {
		if !strings.Contains(out, expected) {
			t.Errorf("help output should contain %q, got: %s", expected, out)
		}
	}
}

func TestUnknownCommand(t *testing.T) {
	_, err := execute(t, "frobnicate")
	if err == nil {
		t.Error("unknown command should return an error")
	}
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "catalog", "--output", "text")
	if err != nil {
		t.Errorf("catalog command error = %v", err)
	}
	if !strings.Contains(out, "A[C>A]A") {
		t.Errorf("catalog output should contain 'A[C>A]A', got: %s", out)
	}
	if got := strings.Count(out, "\n"); got != 96 {
		t.Errorf("catalog should print 96 lines, got %d", got)
	}
}
