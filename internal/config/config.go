package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
)

// Config holds all configuration from environment variables.
type Config struct {
	Token   string `envconfig:"TELEGRAM_API_TOKEN" required:"true"`
	APIKey  string `envconfig:"OPENAI_API_KEY" required:"true"`
	BaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-4-vision-preview"`

	// Bot API server, e.g. a self-hosted telegram-bot-api. Empty uses api.telegram.org.
	TelegramServerURL string `envconfig:"TELEGRAM_API_URL"`

	// Path to config.toml file
	ConfigFile string `envconfig:"CONFIG_FILE" default:"config.toml"`

	// Prompts loaded from config.toml
	Prompts Prompts
}

// Prompts holds the model prompts loaded from config.toml.
type Prompts struct {
	Describe string `toml:"describe"`
}

// FileConfig represents the structure of config.toml.
type FileConfig struct {
	Prompts Prompts `toml:"prompts"`
}

// DefaultPrompts provides fallback prompts if config.toml is not found.
var DefaultPrompts = Prompts{
	Describe: `I need information about a specific boat. Please provide the following details based on the image provided.
Do not use line breaks, the answer is displayed inline in a Telegram message, so format it accordingly.

1. Type of Boat: description or name of the boat.
2. Hull Length: estimate or provide the length of the hull.
3. Year of Construction: determine or estimate the year the boat was constructed.`,
}

// LoadDotenv loads variables from a dotenv file into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LoadEnv loads the configuration from environment variables.
func (c Config) LoadEnv() (Config, error) {
	cfg := c

	if err := envconfig.Process("", &cfg); err != nil {
		return c, err
	}

	return cfg, nil
}

// LoadFile loads prompts from config.toml file.
func (c *Config) LoadFile() error {
	configPath := c.ConfigFile
	if !filepath.IsAbs(configPath) {
		// Try current directory first, then the executable directory
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			execPath, err := os.Executable()
			if err == nil {
				configPath = filepath.Join(filepath.Dir(execPath), c.ConfigFile)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		c.Prompts = DefaultPrompts
		return nil
	}

	var fileConfig FileConfig
	if _, err := toml.DecodeFile(configPath, &fileConfig); err != nil {
		return fmt.Errorf("failed to decode %s: %w", configPath, err)
	}

	c.Prompts = fileConfig.Prompts

	if c.Prompts.Describe == "" {
		c.Prompts.Describe = DefaultPrompts.Describe
	}

	return nil
}

func NewConfig() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := LoadDotenv(envFile); err != nil {
		return nil, err
	}

	var cfg Config
	loadedCfg, err := cfg.LoadEnv()
	if err != nil {
		return nil, err
	}

	if err := loadedCfg.LoadFile(); err != nil {
		return nil, err
	}

	return &loadedCfg, nil
}

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(
			NewConfig,
		),
	)
}
