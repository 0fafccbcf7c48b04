package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_WriteReadSkip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.bin")

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Write([]byte("abcdef")))
	require.NoError(t, w.Sync())
	require.NoError(t, w.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	got := make([]byte, 2)
	require.NoError(t, r.Read(got))
	assert.Equal(t, "ab", string(got))

	require.NoError(t, r.Skip(2))
	require.NoError(t, r.Read(got))
	assert.Equal(t, "ef", string(got))
}

func TestFile_ShortRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	require.NoError(t, os.WriteFile(path, []byte("ab"), 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	got := make([]byte, 10)
	assert.Error(t, r.Read(got), "short read must surface as an error")
}

func TestFile_Closed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.bin")
	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.ErrorIs(t, w.Write([]byte("x")), ErrClosed)
	assert.ErrorIs(t, w.Read(make([]byte, 1)), ErrClosed)
	assert.ErrorIs(t, w.Skip(1), ErrClosed)
	assert.ErrorIs(t, w.Sync(), ErrClosed)
	assert.NoError(t, w.Close(), "double close is harmless")
}

func TestFile_NegativeSkip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neg.bin")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()

	assert.ErrorIs(t, r.Skip(-1), ErrNegativeSkip)
}
