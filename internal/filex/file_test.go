package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_RelativeResolvesAgainstCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("images")
	require.NoError(t, err)

	want := filepath.Join(tmp, "images")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}

	again, err := EnsureDir("images")
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestEnsureDir_Absolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "a", "b")
	got, err := EnsureDir(abs)
	require.NoError(t, err)
	require.Equal(t, abs, got)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("images", []byte("x"), 0o660))

	_, err := EnsureDir("images")
	require.Error(t, err)
}

func TestExistsAndRemove(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.jpg")

	require.False(t, Exists(p))
	require.False(t, Exists(dir), "directories are not files")

	require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
	require.True(t, Exists(p))

	removed, err := Remove(p)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = Remove(p)
	require.NoError(t, err)
	require.False(t, removed)
}
