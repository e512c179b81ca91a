package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"galapagos/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("MONGO_URI", "mongodb://localhost:27017/galapagos")
	t.Setenv("NEO4J_URI", "neo4j://localhost:7687")
	t.Setenv("NEO4J_USER", "neo4j")
	t.Setenv("NEO4J_PASSWORD", "secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)

	cfg, err := cmd.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "@every 1m", cfg.ReconcileSchedule)
	assert.Equal(t, "neo4j", cfg.Neo4jUser)
	assert.False(t, cfg.LogPretty)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"http_port: \"9000\"\nlog_level: debug\nlog_pretty: true\nreconcile_schedule: \"*/5 * * * *\"\n",
	), 0o600))
	setRequired(t)
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := cmd.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, "*/5 * * * *", cfg.ReconcileSchedule)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"MONGO_URI=mongodb://mongo:27017/galapagos\nNEO4J_URI=neo4j://graph:7687\nNEO4J_USER=neo4j\nNEO4J_PASSWORD=pw\n",
	), 0o600))
	for _, key := range []string{"MONGO_URI", "NEO4J_URI", "NEO4J_USER", "NEO4J_PASSWORD"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := cmd.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "mongodb://mongo:27017/galapagos", cfg.MongoURI)
	assert.Equal(t, "neo4j://graph:7687", cfg.Neo4jURI)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("NEO4J_PASSWORD", "")

	_, err := cmd.LoadConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Neo4jPassword")
	assert.Contains(t, err.Error(), "LogLevel")
}
