package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
DB_HOST: db.internal
DB_PORT: "5432"
JWT_SECRET: from-file
JWT_TTL_MINUTES: 30
`)
	require.NoError(t, LoadConfigFrom(path))

	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, "5432", GetConfig("DB_PORT"))
	assert.Equal(t, "from-file", GetConfig("JWT_SECRET"))
	assert.Equal(t, 30, GetConfigInt("JWT_TTL_MINUTES", 120))
	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "RECIPE_API", GetConfig("JWT_ISSUER"))
	assert.Empty(t, GetConfig("UNKNOWN"))
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "JWT_SECRET: from-file\nDB_NAME: recipes\n")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("APP_PORT", "9000")

	require.NoError(t, LoadConfigFrom(path))

	assert.Equal(t, "from-env", GetConfig("JWT_SECRET"))
	assert.Equal(t, "recipes", GetConfig("DB_NAME"))
	assert.Equal(t, "9000", GetConfig("APP_PORT"))
}

func TestMissingConfigFileUsesEnvironment(t *testing.T) {
	t.Setenv("DB_USER", "postgres")

	require.NoError(t, LoadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Equal(t, "postgres", GetConfig("DB_USER"))
	assert.Equal(t, 120, GetConfigInt("JWT_TTL_MINUTES", 120))
}

func TestBadEnvironmentValue(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "soon")
	assert.Error(t, LoadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml")))
}
