package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL())
	assert.Contains(t, cfg.MySQLDSN(), "loc=UTC")
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[app]
port = 9090

[database]
driver = "mysql"

[mysql]
host = "db.internal"
user = "tracker"
password = "pw"
db = "study"
params = "parseTime=true"

[session]
secret = "from-file"
ttl_minutes = 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("SESSION_SECURE_COOKIE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "tracker:pw@tcp(db.internal:3306)/study?parseTime=true", cfg.MySQLDSN())
	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.True(t, cfg.Session.SecureCookie)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsEmptySecret(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
