package tts

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"englearn/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCacheKey(t *testing.T) {
	k1 := CacheKey("hello", "en-US-JennyNeural", 1.0)
	k2 := CacheKey("hello", "en-US-JennyNeural", 1.0)

	assert.Equal(t, k1, k2)
	assert.True(t, filepath.Ext(k1) == ".mp3")

	// Any input change produces a different key.
	assert.NotEqual(t, k1, CacheKey("world", "en-US-JennyNeural", 1.0))
	assert.NotEqual(t, k1, CacheKey("hello", "en-US-GuyNeural", 1.0))
	assert.NotEqual(t, k1, CacheKey("hello", "en-US-JennyNeural", 1.5))
}

func TestBuildSSML(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{
			name:     "normal speed",
			rate:     1.0,
			expected: "rate='0%'",
		},
		{
			name:     "faster",
			rate:     1.5,
			expected: "rate='+50%'",
		},
		{
			name:     "slower",
			rate:     0.8,
			expected: "rate='-19%'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ssml := buildSSML("hello", "en-US-JennyNeural", tt.rate)
			assert.Contains(t, ssml, tt.expected)
			assert.Contains(t, ssml, "en-US-JennyNeural")
			assert.Contains(t, ssml, "hello")
		})
	}
}

func TestClient_Generate_CacheHit(t *testing.T) {
	dir := t.TempDir()

	client, err := New(config.TTSConfig{Key: "k", Region: "eastus", CacheDir: dir}, zap.NewNop())
	assert.NoError(t, err)

	// Pre-seed the cache; no HTTP request must be made.
	cached := filepath.Join(dir, CacheKey("hello", "en-US-JennyNeural", 1.0))
	assert.NoError(t, os.WriteFile(cached, []byte("mp3-bytes"), 0o644))

	path, err := client.Generate("hello", "en-US-JennyNeural", 1.0)

	assert.NoError(t, err)
	assert.Equal(t, cached, path)
}

func TestClient_Generate_FetchesAndCaches(t *testing.T) {
	dir := t.TempDir()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/ssml+xml", r.Header.Get("Content-Type"))
		assert.Equal(t, "k", r.Header.Get("Ocp-Apim-Subscription-Key"))
		w.Write([]byte("synthesized"))
	}))
	defer srv.Close()

	client, err := New(config.TTSConfig{Key: "k", Region: "eastus", CacheDir: dir}, zap.NewNop())
	assert.NoError(t, err)
	client.endpoint = srv.URL

	path, err := client.Generate("hello", "en-US-JennyNeural", 1.0)

	assert.NoError(t, err)
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte("synthesized"), data)
}

func TestClient_Generate_APIError(t *testing.T) {
	dir := t.TempDir()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := New(config.TTSConfig{Key: "bad", Region: "eastus", CacheDir: dir}, zap.NewNop())
	assert.NoError(t, err)
	client.endpoint = srv.URL

	path, err := client.Generate("hello", "en-US-JennyNeural", 1.0)

	assert.Error(t, err)
	assert.Empty(t, path)
}

func TestClient_Generate_EmptyText(t *testing.T) {
	client, err := New(config.TTSConfig{Key: "k", Region: "eastus", CacheDir: t.TempDir()}, zap.NewNop())
	assert.NoError(t, err)

	_, err = client.Generate("", "en-US-JennyNeural", 1.0)

	assert.Error(t, err)
}
