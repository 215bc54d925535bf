package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "static")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "static", cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 256, cfg.LLM.CacheSize)
	assert.Equal(t, "sequence", cfg.FlowLayout)
	assert.True(t, cfg.CanvasGrouping)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("LLM_PROVIDER", "GenAI")
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("FLOW_LAYOUT", "layered")
	t.Setenv("CANVAS_GROUPING", "false")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_FILE", "/tmp/job-canvas.log")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "genai", cfg.LLM.Provider)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "layered", cfg.FlowLayout)
	assert.False(t, cfg.CanvasGrouping)
	assert.Equal(t, "/tmp/job-canvas.log", cfg.Logger.LogFile)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:       "8080",
			FlowLayout: "sequence",
			LLM:        LLMConfig{Provider: "static", Timeout: time.Second},
			Logger:     LoggerConfig{Format: "json"},
		}
	}
	testCases := []struct {
		name     string
		mutate   func(*Config)
		errorMsg string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing key", func(c *Config) { c.LLM.Provider = "langchain" }, "GEMINI_API_KEY"},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "openai" }, "LLM_PROVIDER"},
		{"zero timeout", func(c *Config) { c.LLM.Timeout = 0 }, "LLM_TIMEOUT"},
		{"bad layout", func(c *Config) { c.FlowLayout = "radial" }, "FLOW_LAYOUT"},
		{"bad format", func(c *Config) { c.Logger.Format = "xml" }, "LOG_FORMAT"},
		{"negative cache", func(c *Config) { c.LLM.CacheSize = -1 }, "LLM_CACHE_SIZE"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorMsg)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("JOB_CANVAS_TEST_VALUE=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("JOB_CANVAS_TEST_VALUE") })

	LoadDotEnv(path, filepath.Join(dir, "missing.env"))
	assert.Equal(t, "from-dotenv", os.Getenv("JOB_CANVAS_TEST_VALUE"))
}
