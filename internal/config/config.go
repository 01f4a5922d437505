// Package config resolves devroad settings from flags, DEVROAD_* environment
// variables, an optional devroad.yaml and an optional .env file, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/devroad/devroad/internal/logger"
)

const EnvPrefix = "DEVROAD"

// Score backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	DB   string
	User string
	Lang string

	Log logger.Options

	FeedbackDelay  time.Duration
	StrictDragDrop bool

	Remote RemoteConfig
	Redis  RedisConfig
	Serve  ServeConfig

	ScoreBackend string
}

type RemoteConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

type RedisConfig struct {
	Addr string
	Key  string
}

type ServeConfig struct {
	Addr   string
	APIKey string
}

// Sources lists where Load looks besides flags and the environment.
type Sources struct {
	ConfigPaths []string
	EnvFiles    []string
}

// DefaultSources are the standard config locations.
func DefaultSources() Sources {
	return Sources{
		ConfigPaths: []string{".", "$HOME/.config/devroad", "/etc/devroad"},
		EnvFiles:    []string{".env"},
	}
}

// Load resolves the configuration for a command's flags.
func Load(flags *pflag.FlagSet) (*Config, error) {
	return LoadFrom(flags, DefaultSources())
}

// LoadFrom is Load with explicit sources.
func LoadFrom(flags *pflag.FlagSet, src Sources) (*Config, error) {
	loadEnvFiles(src.EnvFiles)
	v, err := newViper(flags, src.ConfigPaths)
	if err != nil {
		return nil, err
	}
	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads .env files without overriding variables already set.
// Missing files are skipped.
func loadEnvFiles(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// flagKeys maps flag names to the nested keys they set.
var flagKeys = map[string]string{
	"log-level":        "log.level",
	"log-file":         "log.file",
	"feedback-delay":   "session.feedback_delay",
	"strict-drag-drop": "validation.strict_drag_drop",
	"remote-url":       "remote.url",
	"score-backend":    "score.backend",
	"addr":             "serve.addr",
}

func newViper(flags *pflag.FlagSet, paths []string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("devroad")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if len(paths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("user", "local")
	v.SetDefault("lang", "en")
	v.SetDefault("log.mode", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("session.feedback_delay", 1500*time.Millisecond)
	v.SetDefault("validation.strict_drag_drop", false)
	v.SetDefault("remote.timeout", 15*time.Second)
	v.SetDefault("redis.key", "devroad:score")
	v.SetDefault("serve.addr", "127.0.0.1:8787")
	v.SetDefault("score.backend", BackendSQLite)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		DB:   v.GetString("db"),
		User: v.GetString("user"),
		Lang: v.GetString("lang"),
		Log: logger.Options{
			Mode:  v.GetString("log.mode"),
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
		FeedbackDelay:  v.GetDuration("session.feedback_delay"),
		StrictDragDrop: v.GetBool("validation.strict_drag_drop"),
		Remote: RemoteConfig{
			URL:     v.GetString("remote.url"),
			APIKey:  v.GetString("remote.api_key"),
			Timeout: v.GetDuration("remote.timeout"),
		},
		Redis: RedisConfig{
			Addr: v.GetString("redis.addr"),
			Key:  v.GetString("redis.key"),
		},
		Serve: ServeConfig{
			Addr:   v.GetString("serve.addr"),
			APIKey: v.GetString("serve.api_key"),
		},
		ScoreBackend: strings.ToLower(v.GetString("score.backend")),
	}
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.User) == "" {
		return fmt.Errorf("user must not be empty")
	}
	if c.FeedbackDelay < 0 {
		return fmt.Errorf("session.feedback_delay must not be negative")
	}
	switch c.ScoreBackend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("score.backend=redis requires redis.addr")
		}
	default:
		return fmt.Errorf("unknown score.backend %q", c.ScoreBackend)
	}
	return nil
}

// UsesRemote reports whether exercises come from the remote backend.
func (c *Config) UsesRemote() bool {
	return c.Remote.URL != ""
}
