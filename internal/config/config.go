// Package config loads server settings with viper.
//
// Precedence, highest first: environment variables, config.yaml (looked up
// in "." and "./config"), then the defaults below. Keys are the upper-case
// env names in both places.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

type Config struct {
	Port int

	// Storage
	StorageDriver string
	DBPath        string
	MongoURI      string
	MongoDatabase string
	MongoTimeout  time.Duration

	// Auth. An empty JWTSecret disables the /api/auth routes.
	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	// Logging
	LogLevel  slog.Level
	LogFormat string
}

// AuthEnabled reports whether a signing secret was configured.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)

	v.SetDefault("STORAGE_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", "data/tuiter.db")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "tuiter")
	v.SetDefault("MONGO_TIMEOUT", "10s")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("BCRYPT_COST", 12)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// Load reads the configuration. configPaths overrides where config.yaml is
// searched for; tests pass a temp dir.
func Load(configPaths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{".", "./config"}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a broken one is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:          v.GetInt("PORT"),
		StorageDriver: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		DBPath:        v.GetString("DB_PATH"),
		MongoURI:      v.GetString("MONGO_URI"),
		MongoDatabase: v.GetString("MONGO_DATABASE"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		BcryptCost:    v.GetInt("BCRYPT_COST"),
		LogFormat:     strings.ToLower(v.GetString("LOG_FORMAT")),
	}

	var err error
	if cfg.MongoTimeout, err = parseDuration(v, "MONGO_TIMEOUT"); err != nil {
		return Config{}, err
	}
	if cfg.JWTTTL, err = parseDuration(v, "JWT_TTL"); err != nil {
		return Config{}, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return Config{}, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: PORT %d out of range", c.Port)
	}
	switch c.StorageDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return errors.New("config: DB_PATH is required for the sqlite driver")
		}
	case DriverMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" {
			return errors.New("config: MONGO_URI and MONGO_DATABASE are required for the mongo driver")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q (want %q or %q)", c.StorageDriver, DriverSQLite, DriverMongo)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: unknown LOG_FORMAT %q", c.LogFormat)
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 16 {
		return errors.New("config: JWT_SECRET must be at least 16 characters")
	}
	return nil
}

// parseDuration accepts Go duration strings ("10s", "1h30m").
func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: invalid duration %q", key, raw)
	}
	return d, nil
}
