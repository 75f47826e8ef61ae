package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "hospital", AppConfig.DatabaseName)
	assert.Equal(t, 30, AppConfig.DefaultSlotMinutes)
	assert.Equal(t, 5*time.Minute, AppConfig.SlotCacheTTL)
	assert.Equal(t, 10*time.Second, AppConfig.ScheduleLockTTL)
	assert.False(t, IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ENV", "production")
	t.Setenv("DEFAULT_SLOT_MINUTES", "15")
	t.Setenv("SCHEDULE_LOCK_WAIT", "750ms")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")

	LoadConfig()

	require.True(t, IsProduction())
	assert.Equal(t, 15, AppConfig.DefaultSlotMinutes)
	assert.Equal(t, 750*time.Millisecond, AppConfig.ScheduleLockWait)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, AppConfig.TrustedProxies)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
