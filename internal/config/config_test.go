package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptySources() Sources { return Sources{} }

func TestDefaults(t *testing.T) {
	cfg, err := LoadFrom(nil, emptySources())
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.User)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, 1500*time.Millisecond, cfg.FeedbackDelay)
	assert.False(t, cfg.StrictDragDrop)
	assert.Equal(t, BackendSQLite, cfg.ScoreBackend)
	assert.Equal(t, "devroad:score", cfg.Redis.Key)
	assert.Equal(t, 15*time.Second, cfg.Remote.Timeout)
	assert.False(t, cfg.UsesRemote())
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("DEVROAD_USER", "ada")
	t.Setenv("DEVROAD_LOG_LEVEL", "debug")
	t.Setenv("DEVROAD_SESSION_FEEDBACK_DELAY", "250ms")
	t.Setenv("DEVROAD_VALIDATION_STRICT_DRAG_DROP", "true")
	t.Setenv("DEVROAD_REMOTE_URL", "https://example.test")

	cfg, err := LoadFrom(nil, emptySources())
	require.NoError(t, err)
	assert.Equal(t, "ada", cfg.User)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.FeedbackDelay)
	assert.True(t, cfg.StrictDragDrop)
	assert.True(t, cfg.UsesRemote())
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "user: grace\nlang: fr\nsession:\n  feedback_delay: 2s\nredis:\n  addr: 127.0.0.1:6379\nscore:\n  backend: redis\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "devroad.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadFrom(nil, Sources{ConfigPaths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, "grace", cfg.User)
	assert.Equal(t, "fr", cfg.Lang)
	assert.Equal(t, 2*time.Second, cfg.FeedbackDelay)
	assert.Equal(t, BackendRedis, cfg.ScoreBackend)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
}

func TestBadConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "devroad.yaml"), []byte("user: [unclosed"), 0o644))
	_, err := LoadFrom(nil, Sources{ConfigPaths: []string{dir}})
	assert.Error(t, err)
}

func TestFlagsWin(t *testing.T) {
	t.Setenv("DEVROAD_USER", "env-user")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("user", "", "")
	fs.String("db", "", "")
	fs.Bool("strict-drag-drop", false, "")
	fs.Duration("feedback-delay", 0, "")
	require.NoError(t, fs.Parse([]string{"--user", "flag-user", "--db", "/tmp/x.db", "--strict-drag-drop", "--feedback-delay", "0s"}))

	cfg, err := LoadFrom(fs, emptySources())
	require.NoError(t, err)
	assert.Equal(t, "flag-user", cfg.User)
	assert.Equal(t, "/tmp/x.db", cfg.DB)
	assert.True(t, cfg.StrictDragDrop)
	assert.Equal(t, time.Duration(0), cfg.FeedbackDelay)
}

func TestEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DEVROAD_REDIS_KEY=from-dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DEVROAD_REDIS_KEY") })

	cfg, err := LoadFrom(nil, Sources{EnvFiles: []string{path, filepath.Join(dir, "missing.env")}})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Redis.Key)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"memory backend", func(c *Config) { c.ScoreBackend = BackendMemory }, false},
		{"redis without addr", func(c *Config) { c.ScoreBackend = BackendRedis }, true},
		{"redis with addr", func(c *Config) { c.ScoreBackend = BackendRedis; c.Redis.Addr = "x:1" }, false},
		{"unknown backend", func(c *Config) { c.ScoreBackend = "etcd" }, true},
		{"empty user", func(c *Config) { c.User = " " }, true},
		{"negative delay", func(c *Config) { c.FeedbackDelay = -time.Second }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(nil, emptySources())
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
