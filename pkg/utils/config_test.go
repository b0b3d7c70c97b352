package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")

	config, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5000", config.App.Port)
	assert.Equal(t, "seaHaven", config.Database.Name)
	assert.Equal(t, 60, config.JWT.ExpiryMinutes)
	assert.Equal(t, int64(6), config.Stats.TopRoomsLimit)
	assert.Equal(t, []string{"http://localhost:5173"}, config.CORS.Origins)
	assert.False(t, config.Auth.StrictOwnership)
	assert.False(t, config.App.IsProduction())
	assert.False(t, config.Redis.Enabled())
	assert.False(t, config.App.TrustProxy)
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "ACCESS_TOKEN_SECRET=from-file\n" +
		"DB_USER=sea\n" +
		"DB_PASS=haven\n" +
		"APP_ENV=production\n" +
		"CORS_ORIGINS=http://localhost:5173, https://sea-haven.web.app\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("PORT", "8080")
	t.Setenv("AUTH_STRICT_OWNERSHIP", "true")
	t.Setenv("TRUST_PROXY", "true")

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.JWT.Secret)
	assert.Equal(t, "8080", config.App.Port)
	assert.True(t, config.Auth.StrictOwnership)
	assert.True(t, config.App.TrustProxy)
	assert.True(t, config.App.IsProduction())
	assert.Equal(t, []string{"http://localhost:5173", "https://sea-haven.web.app"}, config.CORS.Origins)
	assert.Contains(t, config.Database.ConnectionURI(), "mongodb+srv://sea:haven@")
}

func TestLoadConfigURIOverride(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	config, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", config.Database.ConnectionURI())
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
