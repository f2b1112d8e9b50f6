package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "DB_PORT", "JWT_SECRET", "CORS_ALLOW_ORIGINS", "RESET_DB"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.ResetDB)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("RESET_DB", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, 3307, cfg.DBPort)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.ResetDB)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	assert.Equal(t, 5432, Load().DBPort)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{DBDriver: DriverPostgres, DBHost: "db", DBPort: 5432, DBUser: "u", DBPassword: "p", DBName: "health", DBSSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=health sslmode=disable TimeZone=UTC", cfg.DSN())

	cfg.DBDriver = DriverMySQL
	cfg.DBPort = 3306
	assert.Equal(t, "u:p@tcp(db:3306)/health?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true", cfg.DSN())
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{DBDriver: DriverPostgres}
	require.Error(t, cfg.Validate(), "missing secret must be rejected")

	cfg.JWTSecret = "secret"
	require.NoError(t, cfg.Validate())

	cfg.DBDriver = "sqlite"
	require.Error(t, cfg.Validate())
}
