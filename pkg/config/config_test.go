package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := Load("school")
	require.NoError(t, err)

	assert.Equal(t, "school", conf.ServiceName)
	assert.Equal(t, "school", conf.DB.DBName)
	assert.Equal(t, "8080", conf.Server.Port)
	assert.Equal(t, "orphan", conf.School.ReferentialPolicy)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REFERENTIAL_POLICY", "restrict")
	t.Setenv("JWT_EXPIRATION_HOURS", "48")

	conf, err := Load("school")
	require.NoError(t, err)

	assert.Equal(t, "db.internal", conf.DB.Host)
	assert.Equal(t, "9090", conf.Server.Port)
	assert.Equal(t, "restrict", conf.School.ReferentialPolicy)
	assert.Equal(t, 48, conf.JWT.ExpirationHours)
}

func TestGetDSN(t *testing.T) {
	c := DBConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		DBName:   "school",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=school sslmode=disable",
		c.GetDSN())
}
