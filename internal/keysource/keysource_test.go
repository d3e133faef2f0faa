package keysource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadStripsNewlines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nab\n\nabc"), 0o644))

	keys, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("a"), []byte("ab"), []byte(""), []byte("abc")}, keys)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
