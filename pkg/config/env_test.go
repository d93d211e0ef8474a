package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifykit/notifykit/pkg/config"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEnv_CustomPath(t *testing.T) {
	os.Unsetenv("TEST_LOADENV_CUSTOM")
	path := writeEnvFile(t, "TEST_LOADENV_CUSTOM=from_file\n")

	err := config.LoadEnv(path)

	require.NoError(t, err, "LoadEnv should not return error with a valid file")
	assert.Equal(t, "from_file", os.Getenv("TEST_LOADENV_CUSTOM"))
	os.Unsetenv("TEST_LOADENV_CUSTOM")
}

func TestLoadEnv_KeepsProcessValues(t *testing.T) {
	t.Setenv("TEST_LOADENV_KEPT", "from_process")
	path := writeEnvFile(t, "TEST_LOADENV_KEPT=from_file\n")

	err := config.LoadEnv(path)

	require.NoError(t, err)
	assert.Equal(t, "from_process", os.Getenv("TEST_LOADENV_KEPT"),
		"variables already set in the process environment keep their values")
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/non_existent_file.env")

	require.Error(t, err, "LoadEnv should return error with non-existent file")
	assert.ErrorIs(t, err, config.ErrLoadingEnv)
}

func TestMustLoadEnv(t *testing.T) {
	path := writeEnvFile(t, "TEST_MUSTLOADENV=ok\n")

	assert.NotPanics(t, func() {
		config.MustLoadEnv(path)
	}, "MustLoadEnv should not panic with a valid file")
	os.Unsetenv("TEST_MUSTLOADENV")

	assert.Panics(t, func() {
		config.MustLoadEnv("testdata/non_existent_file.env")
	}, "MustLoadEnv should panic with a non-existent file")
}
