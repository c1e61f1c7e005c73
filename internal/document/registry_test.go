package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinFormats(t *testing.T) {
	assert.Equal(t, []string{"pdf", "svg"}, ListFormats())
	assert.True(t, IsRegistered("pdf"))
	assert.True(t, IsRegistered("svg"))
	assert.False(t, IsRegistered("png"))
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("dot", "out", DefaultPageSize(), nil)
	require.Error(t, err)

	var unknown *UnknownFormatError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "dot", unknown.Format)
	assert.Contains(t, unknown.Available, "pdf")
	assert.Contains(t, err.Error(), "Available formats")
}

func TestNewEmptyFormat(t *testing.T) {
	_, err := New("", "out", DefaultPageSize(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not specified")
}

func TestNewDispatches(t *testing.T) {
	doc, err := New("pdf", t.TempDir()+"/signatures.96", DefaultPageSize(), nil)
	require.NoError(t, err)
	assert.IsType(t, &PDF{}, doc)

	doc, err = New("svg", t.TempDir()+"/signatures.96", DefaultPageSize(), nil)
	require.NoError(t, err)
	assert.IsType(t, &SVGSet{}, doc)
}
