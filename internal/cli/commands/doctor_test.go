package commands

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basepair-labs/sigplot/internal/cli/config"
	"github.com/basepair-labs/sigplot/internal/cli/output"
)

func TestDoctorCommand(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewDoctorCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	// Defaults in an empty directory: everything passes except the
	// output directory, which does not exist yet.
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "sigplot Environment Report")
	assert.Contains(t, out, "CFG01")
	assert.Contains(t, out, "OUT02")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "90/100")
	assert.Contains(t, out, "plot.out_dir")
}

func TestDoctorAllPass(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()
	require.NoError(t, os.Mkdir("figures", 0o755))

	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewDoctorCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "100/100")
}

func TestBuildDoctorOutputBadBackend(t *testing.T) {
	cfg := &config.Config{
		Output: "text",
		Plot: config.PlotConfig{
			OutDir:     t.TempDir(),
			Backend:    "gif",
			DPI:        100,
			PageWidth:  20,
			PageHeight: 10,
		},
	}
	r := output.NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, output.ModeText, false)

	out := buildDoctorOutput(cfg, r)

	require.Equal(t, 1, out.FailCount)
	assert.Equal(t, 75, out.Score)

	var backendCheck *HealthCheck
	for i := range out.Checks {
		if out.Checks[i].ID == "OUT02" {
			backendCheck = &out.Checks[i]
		}
	}
	require.NotNil(t, backendCheck)
	assert.Equal(t, "error", backendCheck.Status)
	assert.Contains(t, backendCheck.Details[0], "gif")

	require.NotEmpty(t, out.Recommendations)
	assert.Contains(t, out.Recommendations[0], "plot.backend")
}

func TestCheckPageGeometryWarnsOnHugePages(t *testing.T) {
	cfg := &config.Config{
		Plot: config.PlotConfig{DPI: 600, PageWidth: 20, PageHeight: 10},
	}

	check := checkPageGeometry(cfg)
	assert.Equal(t, "warn", check.Status)
	assert.Contains(t, check.Details[0], "12000x6000 px")
}

func TestCheckOutputDirNotADirectory(t *testing.T) {
	tmp := t.TempDir()
	file := tmp + "/occupied"
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cfg := &config.Config{Plot: config.PlotConfig{OutDir: file}}
	check := checkOutputDir(cfg)
	assert.Equal(t, "error", check.Status)
	assert.Contains(t, check.Details[0], "not a directory")
}
