package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureSubdDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureSubdDir("preupload")
	require.NoError(t, err)

	want := filepath.Join(tmp, "preupload")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureSubdDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	first, err := EnsureSubdDir("preupload")
	require.NoError(t, err)

	second, err := EnsureSubdDir("preupload")
	require.NoError(t, err)

	require.Equal(t, first, second)
	fi, err := os.Stat(second)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureSubdDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	require.NoError(t, os.WriteFile("preupload", []byte("x"), 0o660))

	_, err := EnsureSubdDir("preupload")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestExportFileName(t *testing.T) {
	ts := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		prefix, ext, want string
	}{
		{"resumen", "pdf", "resumen_20261019_150405.pdf"},
		{"Guía de estudio", ".pdf", "gua_de_estudio_20261019_150405.pdf"},
		{"../../etc", "pdf", "etc_20261019_150405.pdf"},
		{"", "pdf", "export_20261019_150405.pdf"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ExportFileName(tt.prefix, ts, tt.ext), tt.prefix)
	}
}

func TestSaveInWorkDir_NeverOverwrites(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	p1, err := SaveInWorkDir("resumen.pdf", []byte("one"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "resumen.pdf"), p1)

	p2, err := SaveInWorkDir("resumen.pdf", []byte("two"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "resumen-1.pdf"), p2)

	b, err := os.ReadFile(p1)
	require.NoError(t, err)
	require.Equal(t, "one", string(b))

	b, err = os.ReadFile(p2)
	require.NoError(t, err)
	require.Equal(t, "two", string(b))
}

func TestSaveInWorkDir_StripsDirectories(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	p, err := SaveInWorkDir("../outside.pdf", []byte("x"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "outside.pdf"), p)
}
