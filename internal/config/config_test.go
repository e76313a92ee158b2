package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingDBPassword(t *testing.T) {
	original := os.Getenv("DB_PASSWORD")
	defer func() {
		if original != "" {
			os.Setenv("DB_PASSWORD", original)
		} else {
			os.Unsetenv("DB_PASSWORD")
		}
	}()

	os.Unsetenv("DB_PASSWORD")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_WithDefaults(t *testing.T) {
	saved := map[string]string{}
	keys := []string{"DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "HTTP_PORT", "CORS_ORIGINS", "AZURE_TTS_REGION", "AUDIO_CACHE_DIR"}
	for _, k := range keys {
		saved[k] = os.Getenv(k)
		os.Unsetenv(k)
	}
	defer func() {
		for k, v := range saved {
			if v != "" {
				os.Setenv(k, v)
			} else {
				os.Unsetenv(k)
			}
		}
	}()

	os.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "english_learning", cfg.Database.Name)
	assert.Equal(t, "english_learning", cfg.Database.User)
	assert.Equal(t, "eastus", cfg.TTS.Region)
	assert.Equal(t, "audio_cache", cfg.TTS.CacheDir)
}

func TestLoad_CORSOriginsSplit(t *testing.T) {
	savedCORS := os.Getenv("CORS_ORIGINS")
	savedPassword := os.Getenv("DB_PASSWORD")
	defer func() {
		if savedCORS != "" {
			os.Setenv("CORS_ORIGINS", savedCORS)
		} else {
			os.Unsetenv("CORS_ORIGINS")
		}
		if savedPassword != "" {
			os.Setenv("DB_PASSWORD", savedPassword)
		} else {
			os.Unsetenv("DB_PASSWORD")
		}
	}()

	os.Setenv("DB_PASSWORD", "pw")
	os.Setenv("CORS_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}
