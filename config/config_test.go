package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  serviceName: accounts
  log:
    level: info
http:
  port: 3000
store:
  driver: Memory
session:
  secret: from-file
  maxAge: 30m
auth:
  scrypt:
    n: 1024
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("HTTP_PORT", "8081")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "accounts", cfg.Env.ServiceName)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.Equal(t, 30*time.Minute, cfg.Session.MaxAge)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 1024, cfg.Auth.Scrypt.N)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.ErrorContains(t, err, "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Store.Driver = "REDIS"
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StoreDriverRedis, cfg.Store.Driver)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionMaxAge, cfg.Session.MaxAge)

	empty := &Config{}
	empty.applyDefaults()
	assert.Equal(t, StoreDriverMemory, empty.Store.Driver)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "memory store", mutate: func(*Config) {}},
		{
			name:    "missing session secret",
			mutate:  func(c *Config) { c.Session.Secret = "" },
			wantErr: "session.secret is required",
		},
		{
			name:    "postgres without section",
			mutate:  func(c *Config) { c.Store.Driver = StoreDriverPostgres },
			wantErr: "postgres section is required",
		},
		{
			name:    "redis without url",
			mutate:  func(c *Config) { c.Store.Driver = StoreDriverRedis },
			wantErr: "redis.url is required",
		},
		{
			name: "redis with url",
			mutate: func(c *Config) {
				c.Store.Driver = StoreDriverRedis
				c.Redis = &RedisConfig{URL: "redis://localhost:6379/0"}
			},
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Store.Driver = "mongo" },
			wantErr: "unknown store driver: mongo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Session.Secret = "secret"
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
