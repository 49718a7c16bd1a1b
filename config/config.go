package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"coldreach/internal/logger"
)

// Config holds all configuration for both the landing page client and the
// generation server. Mapstructure tags map environment variables and config
// file keys.
type Config struct {
	// Runtime
	AppEnv    string `mapstructure:"APP_ENV"`    // "production" switches gin and zap to release mode
	ColorMode string `mapstructure:"COLOR_MODE"` // "light" or "dark"

	// Landing page
	ProjectID string `mapstructure:"PROJECT_ID"` // wallet modal project identifier
	APIURL    string `mapstructure:"API_URL"`    // base URL of the generation API, e.g. "http://localhost:8080"

	// Generation server
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g. ":8080"
	OpenAIKey     string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"` // e.g. "gpt-4o"
	CORSOrigins   string `mapstructure:"CORS_ORIGINS"` // comma separated list of allowed origins
}

var keys = []string{
	"APP_ENV",
	"COLOR_MODE",
	"PROJECT_ID",
	"API_URL",
	"SERVER_ADDRESS",
	"OPENAI_API_KEY",
	"OPENAI_MODEL",
	"CORS_ORIGINS",
}

// LoadEnvFile loads a .env file from the working directory if present.
// A missing file is not an error; production deployments rely on the
// process environment.
func LoadEnvFile(log *logger.Logger) {
	err := godotenv.Load()
	switch {
	case err == nil:
		log.Info("Loaded environment variables from .env file")
	case errors.Is(err, fs.ErrNotExist):
		log.Debug(".env file not found, relying on system environment variables")
	default:
		log.Warn("Error loading .env file", "error", err)
	}
}

// LoadConfig reads configuration from config.yaml in path (optional) and
// environment variables. Environment variables win over the file.
func LoadConfig(path string, log *logger.Logger) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("COLOR_MODE", "light")
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("OPENAI_MODEL", "gpt-4o")
	v.SetDefault("API_URL", "http://localhost:8080")

	// Unmarshal only sees env vars for keys viper already knows about.
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug("config.yaml not found, relying on environment variables", "path", path)
	} else {
		log.Info("Using configuration file", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return cfg, nil
}

// WarnMissingClient logs the client settings the wallet and API
// collaborators will have to cope without.
func (c Config) WarnMissingClient(log *logger.Logger) {
	if c.ProjectID == "" {
		log.Warn("PROJECT_ID is not set; wallet connection metadata will be incomplete")
	}
	if c.APIURL == "" {
		log.Warn("API_URL is not set")
	}
}

// WarnMissingServer logs server settings that will make generation fail.
func (c Config) WarnMissingServer(log *logger.Logger) {
	if c.OpenAIKey == "" {
		log.Warn("OPENAI_API_KEY is not set; generation requests will fail")
	}
}

// IsProduction reports whether APP_ENV selects production mode.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production") || strings.EqualFold(c.AppEnv, "prod")
}

// AllowedOrigins splits CORSOrigins, dropping blanks.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
