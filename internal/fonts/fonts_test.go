package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedListsFallback(t *testing.T) {
	l := Embedded()
	assert.Contains(t, l.Fonts(), Fallback)
	assert.Contains(t, l.Fonts(), "Courier New")
}

func TestResolve(t *testing.T) {
	l := List{"Arial", "Courier New"}
	assert.Equal(t, "Courier New", Resolve(l, "courier new"))
	assert.Equal(t, Fallback, Resolve(l, "Wingdings"))
	assert.Equal(t, Fallback, Resolve(l, ""))
	assert.Equal(t, Fallback, Resolve(nil, "Courier New"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fonts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fonts": ["Mono"]}`), 0o644))
	l, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, List{"Mono"}, l)

	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}
