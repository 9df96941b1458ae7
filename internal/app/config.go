package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"coc_clan_stats/internal/config"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration. Unset variables keep the values
// from the config package defaults.
type Config struct {
	MembersFile  string        `env:"MEMBERS_FILE"`
	WarFile      string        `env:"WAR_FILE"`
	PageSize     int           `env:"PAGE_SIZE"`
	TopN         int           `env:"TOP_N"`
	CacheEnabled bool          `env:"CACHE_ENABLED"`
	CacheTTL     time.Duration `env:"CACHE_TTL"`
	HistoryDays  int           `env:"HISTORY_DAYS"`
	Interval     time.Duration `env:"UPDATE_INTERVAL"`
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := Config{
		PageSize:     config.DefaultPageSize,
		TopN:         config.DefaultTopN,
		CacheEnabled: true,
		CacheTTL:     config.DefaultCacheTTL,
		HistoryDays:  config.DefaultHistoryDays,
		Interval:     config.DefaultUpdateInterval,
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	if cfg.TopN < 0 {
		return nil, fmt.Errorf("TOP_N must not be negative, got %d", cfg.TopN)
	}
	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("CACHE_TTL must not be negative, got %s", cfg.CacheTTL)
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("UPDATE_INTERVAL must be positive, got %s", cfg.Interval)
	}

	return &cfg, nil
}
