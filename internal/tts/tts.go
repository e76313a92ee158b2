package tts

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"englearn/internal/config"

	"go.uber.org/zap"
)

// Voices are the selectable Azure neural voices, display name to id
var Voices = map[string]string{
	"Jenny (female, natural)": "en-US-JennyNeural",
	"Guy (male, natural)":     "en-US-GuyNeural",
	"Aria (female, lively)":   "en-US-AriaNeural",
	"Davis (male, calm)":      "en-US-DavisNeural",
	"Jane (female, elegant)":  "en-US-JaneNeural",
	"Jason (male, formal)":    "en-US-JasonNeural",
	"Sara (female, gentle)":   "en-US-SaraNeural",
	"Tony (male, friendly)":   "en-US-TonyNeural",
}

// Client synthesizes speech through Azure Cognitive Services,
// caching audio on disk keyed by a content hash of the inputs
type Client struct {
	key      string
	endpoint string
	cacheDir string
	http     *http.Client
	logger   *zap.Logger
}

// New creates a TTS client and ensures the cache directory exists
func New(cfg config.TTSConfig, logger *zap.Logger) (*Client, error) {
	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio cache dir: %w", err)
	}

	return &Client{
		key:      cfg.Key,
		endpoint: fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", cfg.Region),
		cacheDir: cfg.CacheDir,
		http:     &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}, nil
}

// CacheKey derives the cache file name for a synthesis request. The
// same text, voice and rate always map to the same key.
func CacheKey(text, voice string, rate float64) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%s_%g", text, voice, rate)))
	return hex.EncodeToString(sum[:]) + ".mp3"
}

// Generate returns the path of an mp3 for the given text, reusing the
// cached file when one exists
func (c *Client) Generate(text, voice string, rate float64) (string, error) {
	if text == "" {
		return "", fmt.Errorf("text is empty")
	}
	if voice == "" {
		voice = "en-US-JennyNeural"
	}
	if rate <= 0 {
		rate = 1.0
	}

	audioPath := filepath.Join(c.cacheDir, CacheKey(text, voice, rate))
	if _, err := os.Stat(audioPath); err == nil {
		return audioPath, nil
	}

	audio, err := c.synthesize(text, voice, rate)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(audioPath, audio, 0o644); err != nil {
		return "", fmt.Errorf("write audio cache: %w", err)
	}

	return audioPath, nil
}

func (c *Client) synthesize(text, voice string, rate float64) ([]byte, error) {
	req, err := http.NewRequest(http.MethodPost, c.endpoint, strings.NewReader(buildSSML(text, voice, rate)))
	if err != nil {
		return nil, fmt.Errorf("build tts request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", "audio-16khz-128kbitrate-mono-mp3")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("TTS API returned non-200", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("tts api status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tts response: %w", err)
	}

	return audio, nil
}

// buildSSML wraps text in the SSML envelope Azure expects. The rate is
// expressed as a signed percentage offset from normal speed.
func buildSSML(text, voice string, rate float64) string {
	ratePercent := int((rate - 1.0) * 100)
	rateStr := "0%"
	if ratePercent != 0 {
		rateStr = fmt.Sprintf("%+d%%", ratePercent)
	}

	return fmt.Sprintf(
		`<speak version='1.0' xml:lang='en-US'><voice xml:lang='en-US' name='%s'><prosody rate='%s'>%s</prosody></voice></speak>`,
		voice, rateStr, text,
	)
}
