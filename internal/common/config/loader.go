// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like FMCSA_WEB_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored when absent
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Load .env from the working directory or the project root so the server can
// be started from cmd/api-server as well.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	if cfg.FMCSA.WebKey == "" {
		if val := os.Getenv("FMCSA_WEB_KEY"); val != "" {
			cfg.FMCSA.WebKey = val
		}
	}

	if cfg.Loads.Postgres.User == "" {
		if val := os.Getenv("DB_USER"); val != "" {
			cfg.Loads.Postgres.User = val
		}
	}
	if cfg.Loads.Postgres.Password == "" {
		if val := os.Getenv("DB_PASSWORD"); val != "" {
			cfg.Loads.Postgres.Password = val
		}
	}
}

// LoadFromFile loads configuration from a specific file path. Uses its own
// viper instance so repeated calls do not share override state.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "carrier-sales-api"
	}

	// Server defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}

	// Loads defaults
	if cfg.Loads.Source == "" {
		cfg.Loads.Source = "csv"
	}
	if cfg.Loads.CSVPath == "" {
		cfg.Loads.CSVPath = "data/loads.csv"
	}
	if cfg.Loads.Postgres.MaxConnections == 0 {
		cfg.Loads.Postgres.MaxConnections = 25
	}
	if cfg.Loads.Postgres.MaxIdle == 0 {
		cfg.Loads.Postgres.MaxIdle = 5
	}
	if cfg.Loads.Postgres.SSLMode == "" {
		cfg.Loads.Postgres.SSLMode = "disable"
	}

	// FMCSA defaults
	if cfg.FMCSA.Mode == "" {
		cfg.FMCSA.Mode = "static"
	}
	if cfg.FMCSA.BaseURL == "" {
		cfg.FMCSA.BaseURL = "https://mobile.fmcsa.dot.gov/qc/services"
	}
	if cfg.FMCSA.Timeout == 0 {
		cfg.FMCSA.Timeout = 10000
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	switch cfg.Loads.Source {
	case "csv":
		if cfg.Loads.CSVPath == "" {
			return fmt.Errorf("loads.csv_path is required when loads.source is csv")
		}
	case "postgres":
		if cfg.Loads.Postgres.Host == "" {
			return fmt.Errorf("loads.postgres.host is required when loads.source is postgres")
		}
		if cfg.Loads.Postgres.Database == "" {
			return fmt.Errorf("loads.postgres.database is required when loads.source is postgres")
		}
		if cfg.Loads.Postgres.User == "" {
			return fmt.Errorf("loads.postgres.user is required when loads.source is postgres")
		}
	default:
		return fmt.Errorf("loads.source must be csv or postgres, got %q", cfg.Loads.Source)
	}

	switch cfg.FMCSA.Mode {
	case "live":
		if cfg.FMCSA.WebKey == "" {
			return fmt.Errorf("fmcsa.web_key is required when fmcsa.mode is live")
		}
	case "static":
	default:
		return fmt.Errorf("fmcsa.mode must be live or static, got %q", cfg.FMCSA.Mode)
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
