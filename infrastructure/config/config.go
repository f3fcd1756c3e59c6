package config

import (
	"YT_comment_export/internal/core/domain"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "YTCE"

var envFileNames = []string{".env.local", ".env"}

type Config struct {
	Youtube struct {
		APIKey           string `mapstructure:"api_key"`
		ClientSecretFile string `mapstructure:"client_secret_file"`
		TokenFile        string `mapstructure:"token_file"`
	} `mapstructure:"youtube"`

	Scrape struct {
		LinksFile       string `mapstructure:"links_file"`
		OutputDir       string `mapstructure:"output_dir"`
		MaxResults      int    `mapstructure:"max_results"`
		Order           string `mapstructure:"order"`
		Timezone        string `mapstructure:"timezone"`
		ContinueOnError bool   `mapstructure:"continue_on_error"`
	} `mapstructure:"scrape"`

	Log struct {
		Dir    string `mapstructure:"dir"`
		Prefix string `mapstructure:"prefix"`
		Debug  bool   `mapstructure:"debug"`
	} `mapstructure:"log"`

	UI struct {
		Mode        string `mapstructure:"mode"`
		OpenResults bool   `mapstructure:"open_results"`
	} `mapstructure:"ui"`
}

// LoadError says which loading stage failed.
type LoadError struct {
	Stage string
	Path  string
	Err   error
}

func (e LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s at %q: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Stage, e.Err)
}

func (e LoadError) Unwrap() error {
	return e.Err
}

var (
	ErrMissingCredential = errors.New("youtube.api_key or youtube.client_secret_file is required")
	ErrInvalidMaxResults = errors.New("scrape.max_results must be positive")
	ErrUnknownUIMode     = errors.New("ui.mode must be plain or tui")
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("youtube.api_key", "")
	v.SetDefault("youtube.client_secret_file", "")
	v.SetDefault("youtube.token_file", "token.json")
	v.SetDefault("scrape.links_file", "links.txt")
	v.SetDefault("scrape.output_dir", "results")
	v.SetDefault("scrape.max_results", 100)
	v.SetDefault("scrape.order", "relevance")
	v.SetDefault("scrape.timezone", "Asia/Seoul")
	v.SetDefault("scrape.continue_on_error", true)
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.prefix", "comment_export")
	v.SetDefault("log.debug", false)
	v.SetDefault("ui.mode", "plain")
	v.SetDefault("ui.open_results", false)
}

// Load reads .env files, then config.yaml from searchPaths (defaults "." and
// "./config"), then YTCE_* environment variables, which win.
func Load(searchPaths ...string) (*Config, error) {
	for _, name := range envFileNames {
		if err := godotenv.Load(name); err != nil && !isNotExist(err) {
			return nil, LoadError{Stage: "dotenv", Path: name, Err: err}
		}
	}

	v := viper.New()
	setDefaults(v)

	if len(searchPaths) == 0 {
		searchPaths = []string{".", "./config"}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, LoadError{Stage: "read", Path: v.ConfigFileUsed(), Err: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, LoadError{Stage: "unmarshal", Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, LoadError{Stage: "validate", Path: v.ConfigFileUsed(), Err: err}
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Youtube.APIKey == "" && c.Youtube.ClientSecretFile == "" {
		return ErrMissingCredential
	}
	if c.Scrape.MaxResults <= 0 {
		return ErrInvalidMaxResults
	}
	if _, err := c.OrderMode(); err != nil {
		return err
	}
	if _, err := time.LoadLocation(c.Scrape.Timezone); err != nil {
		return fmt.Errorf("scrape.timezone %q: %w", c.Scrape.Timezone, err)
	}
	switch c.UI.Mode {
	case "plain", "tui":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUIMode, c.UI.Mode)
	}
	return nil
}

func (c *Config) OrderMode() (domain.OrderMode, error) {
	return domain.ParseOrderMode(c.Scrape.Order)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
