package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/zrohdes/ai-survey-platform/internal/infra"
	"github.com/zrohdes/ai-survey-platform/pkg/llm"
)

// StoreMemory selects the in-process store. Database drivers use the infra names.
const StoreMemory = "memory"

type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	LLM    LLMConfig    `yaml:"llm"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	Mode            string        `yaml:"mode"` // gin mode: debug, release or test
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StoreConfig struct {
	Driver string `yaml:"driver"` // memory, postgres or sqlite
	DSN    string `yaml:"dsn"`
}

type LLMConfig struct {
	Provider string        `yaml:"provider"` // openai or gemini
	APIKey   string        `yaml:"api_key"`
	Model    string        `yaml:"model"`
	BaseURL  string        `yaml:"base_url,omitempty"` // openai only
	Timeout  time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "5000", Mode: "release", ShutdownTimeout: 10 * time.Second},
		Store:  StoreConfig{Driver: StoreMemory},
		LLM:    LLMConfig{Provider: llm.ProviderOpenAI, Timeout: 60 * time.Second},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads .env (if present), applies defaults, then the YAML file at path (if non-empty),
// then environment overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.Mode, "GIN_MODE")
	setString(&c.Store.Driver, "STORE_DRIVER")
	setString(&c.Store.DSN, "POSTGRES_URL")
	setString(&c.Store.DSN, "DATABASE_URL")
	setString(&c.LLM.Provider, "LLM_PROVIDER")
	setString(&c.Log.Level, "LOG_LEVEL")

	c.LLM.Provider = strings.ToLower(c.LLM.Provider)
	c.Store.Driver = strings.ToLower(c.Store.Driver)

	switch c.LLM.Provider {
	case llm.ProviderOpenAI:
		setString(&c.LLM.APIKey, "OPENAI_API_KEY")
		setString(&c.LLM.Model, "OPENAI_MODEL")
		setString(&c.LLM.BaseURL, "OPENAI_BASE_URL")
	case llm.ProviderGemini:
		setString(&c.LLM.APIKey, "GOOGLE_API_KEY")
		setString(&c.LLM.APIKey, "GEMINI_API_KEY")
		setString(&c.LLM.Model, "GEMINI_MODEL")
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLM.Timeout = d
	}
	if v := os.Getenv("LOG_DEVELOPMENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid LOG_DEVELOPMENT %q: %w", v, err)
		}
		c.Log.Development = b
	}
	return nil
}

// Validate checks everything the server needs before it starts.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory:
	case infra.DriverPostgres, infra.DriverSQLite:
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for the %s driver", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unsupported store driver %q (use memory, postgres or sqlite)", c.Store.Driver)
	}

	switch c.LLM.Provider {
	case llm.ProviderOpenAI, llm.ProviderGemini:
	default:
		return fmt.Errorf("unsupported llm provider %q (use openai or gemini)", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("an API key is required for the %s provider", c.LLM.Provider)
	}
	if c.LLM.Timeout < 0 {
		return fmt.Errorf("llm.timeout must not be negative")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
