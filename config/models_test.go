package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: time.Second},
		Postgres: PostgresConfig{
			Host: "localhost", Port: 5432, User: "postgres", Password: "postgres", DBName: "team_management",
		},
		GitHub: GitHubConfig{APIURL: "https://api.github.com", PageSize: 100, Timeout: 10 * time.Second},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "no port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server.port is required"},
		{name: "no db user", mutate: func(c *Config) { c.Postgres.User = "" }, wantErr: "postgres credentials are required"},
		{name: "no db host", mutate: func(c *Config) { c.Postgres.Host = "" }, wantErr: "postgres.host is required"},
		{name: "page size", mutate: func(c *Config) { c.GitHub.PageSize = 500 }, wantErr: "github.page_size must be between 1 and 100"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestDSNAndAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Postgres.SSLMode = "disable"
	require.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=team_management sslmode=disable", cfg.Postgres.DSN())
	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GITHUB_ORGANIZATION", " acme ")
	t.Setenv("GITHUB_PAGE_SIZE", "50")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "acme", cfg.GitHub.DefaultOrganization())
	require.Equal(t, 50, cfg.GitHub.PageSize)
	require.Equal(t, 10*time.Second, cfg.GitHub.Timeout)
	require.Equal(t, "users.noreply.github.com", cfg.GitHub.NoreplyDomain)
}
