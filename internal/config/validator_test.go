package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetForTest removes key for the rest of the test; t.Setenv must run first so the value is restored
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	require.NoError(t, os.Unsetenv(key))
}

func TestValidateEnv_NoVersionDeclared(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "")
	unsetForTest(t, EnvSchemaVersion)

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_VersionMatches(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)

	t.Run("clean configuration", func(t *testing.T) {
		cfg := &Config{ProfileAPIBaseURL: DefaultProfileAPIBaseURL, CatalogDir: t.TempDir()}

		warnings, err := ValidateEnvWithWarnings(cfg)
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("missing catalog dir and plain http", func(t *testing.T) {
		cfg := &Config{ProfileAPIBaseURL: "http://localhost:9000", CatalogDir: "/does/not/exist"}

		warnings, err := ValidateEnvWithWarnings(cfg)
		require.NoError(t, err, "Should not error even with warnings")
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], "CATALOG_DIR")
		assert.Contains(t, warnings[1], "PROFILE_API_BASE_URL")
	})

	t.Run("version mismatch is fatal", func(t *testing.T) {
		t.Setenv(EnvSchemaVersion, "2.0")

		_, err := ValidateEnvWithWarnings(&Config{ProfileAPIBaseURL: DefaultProfileAPIBaseURL})
		assert.Error(t, err)
	})
}
