package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCatalogCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := NewCatalogCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestCatalogMarkdown(t *testing.T) {
	out := runCatalogCommand(t)

	// Auto mode on a buffer renders markdown: keys inside a code block.
	assert.Equal(t, 2, strings.Count(out, "```"), "balanced code fences")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 98, "96 keys plus two fences")
	assert.Equal(t, "A[C>A]A", lines[1], "catalog starts with the first C>A key")
	assert.Equal(t, "T[T>G]T", lines[96], "catalog ends with the last T>G key")
}

func TestCatalogClassOrder(t *testing.T) {
	out := runCatalogCommand(t)

	wantOrder := []string{"C>A", "C>G", "C>T", "T>A", "T>C", "T>G"}
	last := -1
	for _, class := range wantOrder {
		idx := strings.Index(out, "A["+class+"]A")
		require.GreaterOrEqual(t, idx, 0, "class %s missing", class)
		assert.Greater(t, idx, last, "class %s out of order", class)
		last = idx
	}
}

func TestCatalogClassesFlag(t *testing.T) {
	out := runCatalogCommand(t, "--classes")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8, "6 classes plus two fences")
	assert.Equal(t, []string{"C>A", "C>G", "C>T", "T>A", "T>C", "T>G"}, lines[1:7])
}
