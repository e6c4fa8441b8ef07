package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		Mode           string   `yaml:"mode"` // debug, release or test
		AllowedOrigins []string `yaml:"allowedOrigins"`
		FrontendURL    string   `yaml:"frontendUrl"`
	} `yaml:"server"`

	Gemini struct {
		ApiKey         string `yaml:"apiKey"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"gemini"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Log struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"maxSizeMB"`
		MaxBackups int    `yaml:"maxBackups"`
		MaxAgeDays int    `yaml:"maxAgeDays"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`

	RateLimit struct {
		Requests      int `yaml:"requests"`
		WindowSeconds int `yaml:"windowSeconds"`
	} `yaml:"rateLimit"`

	Analysis struct {
		MaxTextLength   int `yaml:"maxTextLength"`
		MaxEssayLength  int `yaml:"maxEssayLength"`
		CacheTTLMinutes int `yaml:"cacheTTLMinutes"`
	} `yaml:"analysis"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 5000
	cfg.Server.Mode = "debug"
	cfg.Server.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:5174"}
	cfg.Gemini.Model = "gemini-2.5-flash"
	cfg.Gemini.TimeoutSeconds = 30
	cfg.Log.Level = "info"
	cfg.Log.MaxSizeMB = 100
	cfg.Log.MaxBackups = 5
	cfg.Log.MaxAgeDays = 30
	cfg.RateLimit.Requests = 20
	cfg.RateLimit.WindowSeconds = 60
	cfg.Analysis.MaxTextLength = 10000
	cfg.Analysis.MaxEssayLength = 20000
	cfg.Analysis.CacheTTLMinutes = 60
	return &cfg
}

// LoadConfig reads the configuration file over the defaults, then applies
// environment overrides. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("APP_MODE"); v != "" {
		c.Server.Mode = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		c.Server.FrontendURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.ApiKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		c.Database.URI = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	return nil
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode))
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.WindowSeconds <= 0 {
		errs = append(errs, errors.New("rateLimit.requests and rateLimit.windowSeconds must be positive"))
	}
	if c.Analysis.MaxTextLength <= 0 || c.Analysis.MaxEssayLength <= 0 {
		errs = append(errs, errors.New("analysis limits must be positive"))
	}
	if c.Gemini.TimeoutSeconds < 0 {
		errs = append(errs, errors.New("gemini.timeoutSeconds must not be negative"))
	}
	return errors.Join(errs...)
}

func (c *Config) Addr() string { return fmt.Sprintf(":%d", c.Server.Port) }

func (c *Config) GeminiTimeout() time.Duration {
	return time.Duration(c.Gemini.TimeoutSeconds) * time.Second
}

func (c *Config) RateWindow() time.Duration {
	return time.Duration(c.RateLimit.WindowSeconds) * time.Second
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Analysis.CacheTTLMinutes) * time.Minute
}

// Origins is the CORS allow list including the frontend URL.
func (c *Config) Origins() []string {
	origins := append([]string(nil), c.Server.AllowedOrigins...)
	if c.Server.FrontendURL == "" {
		return origins
	}
	for _, o := range origins {
		if o == c.Server.FrontendURL {
			return origins
		}
	}
	return append(origins, c.Server.FrontendURL)
}
