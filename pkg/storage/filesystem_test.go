package storage

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveOpenDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("assets/export.csv", []byte("ID\nAST-001\n"))
	require.NoError(t, err)
	require.Equal(t, "assets/export.csv", name)

	file, err := store.Open(name)
	require.NoError(t, err)
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	require.NoError(t, file.Close())
	require.Equal(t, "ID\nAST-001\n", string(content))

	require.NoError(t, store.Delete(name))
	require.NoError(t, store.Delete(name))
	_, err = store.Open(name)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalStorageRejectsEscapingNames(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("../outside.csv", []byte("x"))
	require.ErrorIs(t, err, ErrOutsideRoot)
	_, err = store.Open("/etc/passwd")
	require.ErrorIs(t, err, ErrOutsideRoot)
}

func TestLocalStorageCleanupOlderThan(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("old.csv", []byte("x"))
	require.NoError(t, err)
	_, err = store.Save("fresh.csv", []byte("y"))
	require.NoError(t, err)

	oldPath, err := store.Path("old.csv")
	require.NoError(t, err)
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	deleted, err := store.CleanupOlderThan(24 * time.Hour)
	require.NoError(t, err)
	require.Equal(t, []string{"old.csv"}, deleted)
}
