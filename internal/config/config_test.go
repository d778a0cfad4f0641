package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// chdirEmpty moves the test into a directory without config.yaml.
func chdirEmpty(t *testing.T) {
	t.Helper()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  shutdown_timeout: "5s"

storage:
  driver: "postgres"
  sqlite_path: "/data/kjv_strongs.sqlite"

database:
  dsn: "postgres://u:p@localhost:5432/bible"
  max_conns: 10
  min_conns: 2

lexicon:
  greek_path: "/data/strongs-greek-dictionary.js"
  hebrew_path: "/data/hebrew.json"

log:
  level: "debug"
  format: "text"

cors:
  allowed_origins: "http://localhost:5173, https://study.example.org"

rate_limit:
  requests_per_minute: 120
`

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8000},
		Storage: StorageConfig{Driver: DriverSQLite, SQLitePath: "kjv_strongs.sqlite", SQLiteMaxOpenConns: 4},
		Database: DatabaseConfig{
			MaxConns: 10,
			MinConns: 2,
		},
		Lexicon:   LexiconConfig{GreekPath: "greek.json", HebrewPath: "hebrew.json"},
		Log:       LogConfig{Level: "info", Format: "json"},
		RateLimit: RateLimitConfig{CleanupInterval: time.Minute},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("server.write_timeout = %v, want default 30s", cfg.Server.WriteTimeout)
	}

	if cfg.Storage.Driver != DriverPostgres {
		t.Errorf("storage.driver = %q, want %q", cfg.Storage.Driver, DriverPostgres)
	}
	if cfg.Storage.SQLiteMaxOpenConns != 8 {
		t.Errorf("storage.sqlite_max_open_conns = %d, want default 8", cfg.Storage.SQLiteMaxOpenConns)
	}
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/bible" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}

	if cfg.Lexicon.GreekPath != "/data/strongs-greek-dictionary.js" {
		t.Errorf("lexicon.greek_path = %q", cfg.Lexicon.GreekPath)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	wantOrigins := []string{"http://localhost:5173", "https://study.example.org"}
	if got := cfg.CORS.Origins(); !reflect.DeepEqual(got, wantOrigins) {
		t.Errorf("cors origins = %v, want %v", got, wantOrigins)
	}
	if cfg.RateLimit.RequestsPerMinute != 120 {
		t.Errorf("rate_limit.requests_per_minute = %d, want 120", cfg.RateLimit.RequestsPerMinute)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("STORAGE_DRIVER", "sqlite")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
	if cfg.Storage.Driver != DriverSQLite {
		t.Errorf("storage.driver = %q, want %q (ENV override)", cfg.Storage.Driver, DriverSQLite)
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	chdirEmpty(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("server.port = %d, want 8000 (default)", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverSQLite {
		t.Errorf("storage.driver = %q, want sqlite (default)", cfg.Storage.Driver)
	}
	if cfg.Storage.SQLitePath != "kjv_strongs.sqlite" {
		t.Errorf("storage.sqlite_path = %q", cfg.Storage.SQLitePath)
	}
	if got := cfg.CORS.Origins(); len(got) != 1 || got[0] != "http://localhost:5173" {
		t.Errorf("cors origins = %v, want [http://localhost:5173]", got)
	}
	if cfg.RateLimit.RequestsPerMinute != 0 {
		t.Errorf("rate limiting should be disabled by default, got %d rpm", cfg.RateLimit.RequestsPerMinute)
	}
}

func TestLoad_PostgresWithoutDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORAGE_DRIVER", "postgres")
	chdirEmpty(t)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for postgres driver without DSN")
	}
}

func TestLoadFrom_ExplicitPathNotFound(t *testing.T) {
	if _, err := LoadFrom("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid sqlite", mutate: func(c *Config) {}},
		{name: "valid postgres", mutate: func(c *Config) {
			c.Storage.Driver = DriverPostgres
			c.Database.DSN = "postgres://localhost/bible"
		}},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "mysql" }, wantErr: true},
		{name: "empty sqlite path", mutate: func(c *Config) { c.Storage.SQLitePath = " " }, wantErr: true},
		{name: "zero sqlite conns", mutate: func(c *Config) { c.Storage.SQLiteMaxOpenConns = 0 }, wantErr: true},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Storage.Driver = DriverPostgres }, wantErr: true},
		{name: "postgres min above max", mutate: func(c *Config) {
			c.Storage.Driver = DriverPostgres
			c.Database.DSN = "postgres://localhost/bible"
			c.Database.MinConns = 20
		}, wantErr: true},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "missing greek lexicon", mutate: func(c *Config) { c.Lexicon.GreekPath = "" }, wantErr: true},
		{name: "missing hebrew lexicon", mutate: func(c *Config) { c.Lexicon.HebrewPath = "" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "uppercase log level", mutate: func(c *Config) { c.Log.Level = "DEBUG" }},
		{name: "negative rate limit", mutate: func(c *Config) { c.RateLimit.RequestsPerMinute = -1 }, wantErr: true},
		{name: "rate limit without cleanup", mutate: func(c *Config) {
			c.RateLimit.RequestsPerMinute = 60
			c.RateLimit.CleanupInterval = 0
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCORSConfig_Origins(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "", want: nil},
		{raw: "*", want: []string{"*"}},
		{raw: " a , ,b ", want: []string{"a", "b"}},
	}
	for _, tt := range tests {
		got := CORSConfig{AllowedOrigins: tt.raw}.Origins()
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Origins(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
