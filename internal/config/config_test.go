package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "recruitment")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("KAFKA_BROKER", "localhost:9092")
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantErr   bool
		errString string
	}{
		{
			name: "defaults",
		},
		{
			name: "explicit values",
			env: map[string]string{
				"PORT":                 "8080",
				"JWT_TTL":              "15m",
				"DB_AUTO_MIGRATE":      "true",
				"CORS_ALLOWED_ORIGINS": "http://a.test, http://b.test ,",
			},
		},
		{
			name:      "bad duration",
			env:       map[string]string{"JWT_TTL": "soon"},
			wantErr:   true,
			errString: "invalid JWT_TTL",
		},
		{
			name:      "bad bool",
			env:       map[string]string{"DB_AUTO_MIGRATE": "maybe"},
			wantErr:   true,
			errString: "invalid DB_AUTO_MIGRATE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setValidEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, "localhost", cfg.Database.Host)
			assert.Equal(t, "disable", cfg.Database.SSLMode)
			assert.NoError(t, cfg.ValidateAPIConfig())
		})
	}
}

func TestLoad_ExplicitValues(t *testing.T) {
	setValidEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestValidateAPIConfig(t *testing.T) {
	t.Run("missing jwt secret has no fallback", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("JWT_SECRET", "")

		cfg, err := Load()
		require.NoError(t, err)

		err = cfg.ValidateAPIConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("invalid port", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("PORT", "70000")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Error(t, cfg.ValidateAPIConfig())
	})
}

func TestValidateWorkerConfig(t *testing.T) {
	setValidEnv(t)
	t.Setenv("KAFKA_BROKER", "")

	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.ValidateWorkerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKER")
}

func TestValidateConsumerConfig(t *testing.T) {
	setValidEnv(t)
	t.Setenv("DB_HOST", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.ValidateConsumerConfig())

	cfg.Kafka.Broker = ""
	err = cfg.ValidateConsumerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_BROKER")
}
