// Package config loads service settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoggerConfig holds settings for the zap logger.
type LoggerConfig struct {
	Level       string
	Format      string
	ServiceName string
	LogFile     string
	MaxSize     int
	MaxBackups  int
	MaxAge      int
	Compress    bool
}

type LLMConfig struct {
	Provider       string
	APIKey         string
	Model          string
	Timeout        time.Duration
	CacheSize      int
	StaticResponse string
}

type Config struct {
	Port           string
	AppEnv         string
	DatabaseURL    string
	FlowLayout     string
	CanvasGrouping bool
	LLM            LLMConfig
	Logger         LoggerConfig
}

// SetDefaults lets the service start with nothing but an API key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("database_url", "")
	v.SetDefault("llm_provider", "langchain")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("llm_model", "gemini-2.5-flash")
	v.SetDefault("llm_timeout", 30*time.Second)
	v.SetDefault("llm_cache_size", 256)
	v.SetDefault("llm_static_response", "")
	v.SetDefault("flow_layout", "sequence")
	v.SetDefault("canvas_grouping", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size", 50)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age", 28)
	v.SetDefault("log_compress", true)
}

// LoadDotEnv loads the given files (".env" when none), ignoring missing ones.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			log.Printf("ℹ️  no %s file loaded, using environment only", f)
		}
	}
}

// Load reads every setting from v, falling back to the environment variable
// of the upper-cased key name, and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("port"),
		AppEnv:         v.GetString("app_env"),
		DatabaseURL:    v.GetString("database_url"),
		FlowLayout:     strings.ToLower(v.GetString("flow_layout")),
		CanvasGrouping: v.GetBool("canvas_grouping"),
		LLM: LLMConfig{
			Provider:       strings.ToLower(v.GetString("llm_provider")),
			APIKey:         v.GetString("gemini_api_key"),
			Model:          v.GetString("llm_model"),
			Timeout:        v.GetDuration("llm_timeout"),
			CacheSize:      v.GetInt("llm_cache_size"),
			StaticResponse: v.GetString("llm_static_response"),
		},
		Logger: LoggerConfig{
			Level:       v.GetString("log_level"),
			Format:      v.GetString("log_format"),
			ServiceName: "job-canvas",
			LogFile:     v.GetString("log_file"),
			MaxSize:     v.GetInt("log_max_size"),
			MaxBackups:  v.GetInt("log_max_backups"),
			MaxAge:      v.GetInt("log_max_age"),
			Compress:    v.GetBool("log_compress"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT must not be empty"))
	}
	switch c.LLM.Provider {
	case "langchain", "genai":
		if c.LLM.APIKey == "" {
			errs = append(errs, fmt.Errorf("GEMINI_API_KEY is required for provider %q", c.LLM.Provider))
		}
	case "static":
	default:
		errs = append(errs, fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider))
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, errors.New("LLM_TIMEOUT must be positive"))
	}
	if c.LLM.CacheSize < 0 {
		errs = append(errs, errors.New("LLM_CACHE_SIZE must not be negative"))
	}
	switch c.FlowLayout {
	case "sequence", "layered":
	default:
		errs = append(errs, fmt.Errorf("unknown FLOW_LAYOUT %q", c.FlowLayout))
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown LOG_FORMAT %q", c.Logger.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
