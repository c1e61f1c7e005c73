package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basepair-labs/sigplot/internal/cli/testutil"
	"github.com/basepair-labs/sigplot/pkg/sigdata"
)

func runInspectCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewInspectCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInspectSummary(t *testing.T) {
	tmp := t.TempDir()
	matrix := testutil.WriteMatrix(t, tmp, "SBS1", "SBS2")

	out, err := runInspectCommand(t, matrix)
	require.NoError(t, err)

	assert.Contains(t, out, "Matrix Inspection")
	assert.Contains(t, out, "- **Rows**: 96")
	assert.Contains(t, out, "SBS1, SBS2")
	assert.Contains(t, out, "- **Context width**: 3")
	assert.Contains(t, out, "- **Report kind**: standard")
	assert.Contains(t, out, "C>A")
	assert.Contains(t, out, "Matrix is valid")
}

func TestInspectMissingFile(t *testing.T) {
	_, err := runInspectCommand(t, filepath.Join(t.TempDir(), "nope.tsv"))
	require.Error(t, err)
}

func TestInspectReportsMissingCatalogKeys(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "partial.tsv")
	content := "MutationType\tS1\nA[C>A]A\t5\nA[C>A]C\t3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := runInspectCommand(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "94 of 96 canonical keys missing")
}

func TestInspectReportsProblems(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "dup.tsv")
	content := "MutationType\tS1\nA[C>A]A\t5\nA[C>A]A\t3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := runInspectCommand(t, path)
	require.NoError(t, err, "inspect reports problems instead of failing")

	assert.Contains(t, out, "duplicate key")
	assert.NotContains(t, out, "Matrix is valid")
}

func TestBuildInspectReport(t *testing.T) {
	m := &sigdata.Matrix{
		Keys: []string{"A[C>A]A", "A[C>T]G", "T[T>G]C"},
		Samples: []sigdata.Sample{
			{Name: "S1", Values: []float64{1, 2, 3}},
			{Name: "S2", Values: []float64{4, 5, 6}},
		},
	}

	report := buildInspectReport("m.tsv", m)

	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, []string{"S1", "S2"}, report.Samples)
	assert.Equal(t, 3, report.Width)
	assert.Equal(t, "standard", report.Kind)
	assert.True(t, report.Valid)
	assert.Len(t, report.Missing, 93)

	require.Len(t, report.Classes, 6)
	byClass := map[string]classSummary{}
	var shareSum float64
	for _, cs := range report.Classes {
		byClass[cs.Class] = cs
		shareSum += cs.Share
	}
	assert.Equal(t, 1, byClass["C>A"].Keys)
	assert.InDelta(t, 5.0, byClass["C>A"].Total, 1e-9)
	assert.InDelta(t, 7.0, byClass["C>T"].Total, 1e-9)
	assert.InDelta(t, 9.0, byClass["T>G"].Total, 1e-9)
	assert.Equal(t, 0, byClass["C>G"].Keys)
	assert.InDelta(t, 100.0, shareSum, 1e-9)
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		width int
		want  string
	}{
		{3, "standard"},
		{5, "extended"},
		{7, "extended"},
		{4, "unknown"},
		{0, "unknown"},
		{-1, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, detectKind(tt.width), "width %d", tt.width)
	}
}

func TestInspectJSONShape(t *testing.T) {
	tmp := t.TempDir()
	matrix := testutil.WriteMatrix(t, tmp, "S1")

	m, err := sigdata.ReadFile(matrix)
	require.NoError(t, err)

	report := buildInspectReport(matrix, m)
	assert.True(t, report.Valid)
	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Problems)

	total := 0
	for _, cs := range report.Classes {
		total += cs.Keys
	}
	assert.Equal(t, 96, total, "every catalog key belongs to a class")
	for _, cs := range report.Classes {
		assert.Equal(t, 16, cs.Keys, "class %s", cs.Class)
	}
	assert.False(t, strings.Contains(report.Kind, "unknown"))
}
