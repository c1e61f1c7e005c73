package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchRendersOnChange(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(t, rec, nil)

	path := writeMatrixFile(t, "S1")
	outDir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- e.Watch(ctx, path, outDir, KindAuto) }()

	require.Eventually(t, func() bool { return rec.docCount() >= 1 },
		5*time.Second, 10*time.Millisecond, "initial render")

	// Rewriting the file should trigger a debounced re-render.
	require.NoError(t, os.WriteFile(path, []byte(matrixTSV("S1")), 0o644))
	require.Eventually(t, func() bool { return rec.docCount() >= 2 },
		5*time.Second, 10*time.Millisecond, "render after change")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err, "cancellation is a clean shutdown")
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(t, rec, nil)

	path := filepath.Join(t.TempDir(), "gone", "matrix.tsv")
	err := e.Watch(context.Background(), path, t.TempDir(), KindAuto)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
