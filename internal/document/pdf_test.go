package document

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallPage keeps PDF tests fast: tiny pages assemble in milliseconds.
func smallPage() PageSize {
	return PageSize{WidthPt: 144, HeightPt: 72, WidthPx: 200, HeightPx: 100}
}

func TestPDFRoundTrip(t *testing.T) {
	stem := filepath.Join(t.TempDir(), "signatures.96")
	doc, err := NewPDF(stem, smallPage(), nil)
	require.NoError(t, err)
	assert.Equal(t, stem+".pdf", doc.Path())

	for _, title := range []string{"SBS1", "SBS2"} {
		page, err := doc.NewPage(title)
		require.NoError(t, err)
		page.FillRect(10, 10, 50, 30, color.RGBA{R: 0xE3, G: 0x29, B: 0x26, A: 0xFF})
	}

	require.NoError(t, doc.Close())

	data, err := os.ReadFile(doc.Path())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "output is a PDF")
	assert.Greater(t, len(data), 500)

	// The temporary assembly file must be gone.
	entries, err := os.ReadDir(filepath.Dir(doc.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "signatures.96.pdf", entries[0].Name())
}

func TestPDFCloseIsExactlyOnce(t *testing.T) {
	stem := filepath.Join(t.TempDir(), "out")
	doc, err := NewPDF(stem, smallPage(), nil)
	require.NoError(t, err)

	_, err = doc.NewPage("SBS1")
	require.NoError(t, err)
	require.NoError(t, doc.Close())

	info, err := os.Stat(doc.Path())
	require.NoError(t, err)

	// A second Close neither fails nor rewrites the file.
	require.NoError(t, doc.Close())
	again, err := os.Stat(doc.Path())
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), again.ModTime())
	assert.Equal(t, info.Size(), again.Size())
}

func TestPDFCloseWithoutPages(t *testing.T) {
	doc, err := NewPDF(filepath.Join(t.TempDir(), "out"), smallPage(), nil)
	require.NoError(t, err)

	err = doc.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pages")

	// The failure still latches the closed state.
	require.NoError(t, doc.Close())
}

func TestPDFCloseFailureLatches(t *testing.T) {
	// A stem inside a directory that does not exist makes the
	// temporary file creation fail.
	stem := filepath.Join(t.TempDir(), "missing", "out")
	doc, err := NewPDF(stem, smallPage(), nil)
	require.NoError(t, err)

	_, err = doc.NewPage("SBS1")
	require.NoError(t, err)

	require.Error(t, doc.Close())
	require.NoError(t, doc.Close(), "second Close after a failure is a no-op")
}

func TestPDFNewPageAfterClose(t *testing.T) {
	doc, err := NewPDF(filepath.Join(t.TempDir(), "out"), smallPage(), nil)
	require.NoError(t, err)
	_, err = doc.NewPage("SBS1")
	require.NoError(t, err)
	require.NoError(t, doc.Close())

	_, err = doc.NewPage("SBS2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already closed")
}

func TestPDFRejectsBadPageSize(t *testing.T) {
	_, err := NewPDF("out", PageSize{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid page size")
}
