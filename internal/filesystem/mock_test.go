package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockFileSystem_RelativePaths(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("pages/index.tsx", nil)

	require.True(t, mfs.Exists("/workspace/pages/index.tsx"))
	require.True(t, mfs.Exists("pages"))
	require.False(t, mfs.Exists("/pages"))

	entries, err := mfs.ReadDir("pages")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "index.tsx", entries[0].Name())

	mfs.SetCurrentDir("/other")
	require.False(t, mfs.Exists("pages"))
}

func TestMockFileSystem_ReadDirSorted(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFiles("pages/b.tsx", "pages/a.tsx", "pages/c/index.tsx")

	entries, err := mfs.ReadDir("pages")
	require.NoError(t, err)

	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	require.Equal(t, []string{"a.tsx", "b.tsx", "c"}, names)
	require.True(t, entries[2].IsDir())
}

func TestMockFileSystem_Unreadable(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("pages/secret/index.tsx", nil)
	mfs.SetUnreadable("pages/secret")

	require.True(t, mfs.Exists("pages/secret"))

	_, err := mfs.ReadDir("pages/secret")
	require.True(t, errors.Is(err, fs.ErrPermission))

	info, err := mfs.Stat("pages/secret")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestMockFileSystem_Missing(t *testing.T) {
	mfs := NewMockFileSystem()

	_, err := mfs.ReadDir("pages")
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = mfs.Stat("pages")
	require.ErrorIs(t, err, fs.ErrNotExist)
}
