// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PLAYGROUND"

// Config holds runtime configuration values shared by the commands.
type Config struct {
	CatalogDir   string // external exercise packs directory, empty for embedded packs only
	OutputDir    string
	HTTPAddr     string
	EmbedBaseURL string
	Locale       string
}

// Load reads configuration values from PLAYGROUND_* environment variables.
// Without envFiles an optional .env in the working directory is loaded;
// explicitly named files must exist. Variables already set in the
// environment take precedence over file values.
func Load(envFiles ...string) (Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("catalog_dir", "")
	v.SetDefault("output_dir", "results")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("embed_base_url", "")
	v.SetDefault("locale", "en")

	cfg := Config{
		CatalogDir:   strings.TrimSpace(v.GetString("catalog_dir")),
		OutputDir:    strings.TrimSpace(v.GetString("output_dir")),
		HTTPAddr:     strings.TrimSpace(v.GetString("http_addr")),
		EmbedBaseURL: strings.TrimSpace(v.GetString("embed_base_url")),
		Locale:       strings.ToLower(strings.TrimSpace(v.GetString("locale"))),
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "results"
	}
	if cfg.Locale == "" {
		cfg.Locale = "en"
	}
	if cfg.Locale != "en" && cfg.Locale != "nl" {
		return Config{}, fmt.Errorf("invalid %s_LOCALE %q: must be en or nl", EnvPrefix, cfg.Locale)
	}
	if cfg.HTTPAddr != "" && !strings.Contains(cfg.HTTPAddr, ":") {
		cfg.HTTPAddr = ":" + cfg.HTTPAddr
	}

	return cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}
