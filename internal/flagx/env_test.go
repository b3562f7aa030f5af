package flagx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverlay(t *testing.T) {
	t.Setenv("SG_STR", "value")
	t.Setenv("SG_INT", "42")
	t.Setenv("SG_BAD_INT", "abc")
	t.Setenv("SG_DUR", "90s")
	t.Setenv("SG_EMPTY", "")

	s := "default"
	EnvString("SG_STR", &s)
	assert.Equal(t, "value", s)

	e := "keep"
	EnvString("SG_EMPTY", &e)
	EnvString("SG_MISSING_FOR_SURE", &e)
	assert.Equal(t, "keep", e)

	n := 1
	EnvInt("SG_INT", &n)
	assert.Equal(t, 42, n)
	EnvInt("SG_BAD_INT", &n)
	assert.Equal(t, 42, n)

	d := time.Second
	EnvDuration("SG_DUR", &d)
	assert.Equal(t, 90*time.Second, d)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SG_DOTENV_KEY=from-file\nSG_DOTENV_SET=from-file\n"), 0o600))

	t.Setenv("SG_DOTENV_SET", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("SG_DOTENV_KEY") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("SG_DOTENV_KEY"))
	assert.Equal(t, "from-env", os.Getenv("SG_DOTENV_SET"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
