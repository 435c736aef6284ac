package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration.
type Config struct {
	AppAddr string `mapstructure:"APP_ADDR"`
	GinMode string `mapstructure:"GIN_MODE"`
	Env     string `mapstructure:"ENV"`

	DBDSN      string `mapstructure:"DB_DSN"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBName     string `mapstructure:"DB_NAME"`

	RateLimitRPM       int    `mapstructure:"RATE_LIMIT_RPM"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// Load reads configuration from an optional config.yaml plus environment
// variables, with defaults for every key.
func Load() (Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ADDR", ":8080")
	viper.SetDefault("GIN_MODE", "")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DB_DSN", "")
	viper.SetDefault("DB_USER", "root")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_HOST", "127.0.0.1:3306")
	viper.SetDefault("DB_NAME", "advocates")
	viper.SetDefault("RATE_LIMIT_RPM", 120)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")

	// Missing config file is fine; env vars and defaults cover everything.
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// DSN returns the MySQL DSN, assembled from parts unless DB_DSN overrides it.
func (c Config) DSN() string {
	if strings.TrimSpace(c.DBDSN) != "" {
		return c.DBDSN
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBName)
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowedOrigins splits the configured CORS origin list.
func (c Config) AllowedOrigins() []string {
	out := []string{}
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
