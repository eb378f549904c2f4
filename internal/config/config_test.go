package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"IMPACT_CONFIG_PATH", "IMPACT_SERVER_HOST", "IMPACT_SERVER_PORT", "IMPACT_DB_PATH",
		"IMPACT_SEED_SAMPLES", "IMPACT_LOG_LEVEL", "IMPACT_LOG_PATH", "IMPACT_TRANSPORT_MODE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "impact.db", cfg.DB.Path)
	require.True(t, cfg.DB.SeedSamples)
	require.Equal(t, TransportStdio, cfg.Transport.Mode)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "impact.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
db:
  path: /tmp/records.db
  seed_samples: false
log:
  level: debug
transport:
  mode: http
`), 0o644))

	t.Setenv("IMPACT_CONFIG_PATH", path)
	t.Setenv("IMPACT_SERVER_HOST", "127.0.0.1")
	t.Setenv("IMPACT_SERVER_PORT", "")
	t.Setenv("IMPACT_DB_PATH", "")
	t.Setenv("IMPACT_SEED_SAMPLES", "")
	t.Setenv("IMPACT_LOG_LEVEL", "warn")
	t.Setenv("IMPACT_LOG_PATH", "")
	t.Setenv("IMPACT_TRANSPORT_MODE", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/records.db", cfg.DB.Path)
	require.False(t, cfg.DB.SeedSamples)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, TransportHTTP, cfg.Transport.Mode)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("IMPACT_CONFIG_PATH", "")
	t.Setenv("IMPACT_TRANSPORT_MODE", "")
	t.Setenv("IMPACT_SEED_SAMPLES", "")
	t.Setenv("IMPACT_SERVER_PORT", "eighty")
	_, err := Load()
	require.ErrorContains(t, err, "IMPACT_SERVER_PORT")

	t.Setenv("IMPACT_SERVER_PORT", "")
	t.Setenv("IMPACT_SEED_SAMPLES", "maybe")
	_, err = Load()
	require.ErrorContains(t, err, "IMPACT_SEED_SAMPLES")

	t.Setenv("IMPACT_SEED_SAMPLES", "")
	t.Setenv("IMPACT_TRANSPORT_MODE", "grpc")
	_, err = Load()
	require.ErrorContains(t, err, "invalid transport mode")
}
