package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamal-freight/SFB-LeadService/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Setenv("SCHEDULING_API_URL", "")
	path := writeConfig(t, "[scheduling_api]\nurl = \"http://localhost:3000\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, domain.DefaultBrokerUTCOffsetHours, cfg.Broker.UTCOffsetHours)
	assert.Equal(t, 120, cfg.Wizard.SessionTTLMinutes)
	assert.Equal(t, 10, cfg.Wizard.CleanupIntervalMinutes)
}

func TestLoad_EnvOverridesSchedulingURL(t *testing.T) {
	t.Setenv("SCHEDULING_API_URL", "http://backend:3000")
	path := writeConfig(t, "[scheduling_api]\nurl = \"http://localhost:3000\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://backend:3000", cfg.SchedulingAPI.URL)
}

func TestLoad_RequiresSchedulingURL(t *testing.T) {
	t.Setenv("SCHEDULING_API_URL", "")
	path := writeConfig(t, "[server]\nhttp_port = 9000\n")

	_, err := Load(path)
	assert.Error(t, err)
}
