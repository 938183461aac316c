package cliparse

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// ServerConfig configures the popular query API server.
type ServerConfig struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	PublishKeySalt string
	CacheTTL       time.Duration
	Verbose        bool
	PrintKeys      bool
}

// ClientConfig configures the terminal client.
type ClientConfig struct {
	APIURL     string
	SearchHost string
	Fragment   string
	LogFile    string
	Verbose    bool
}

// LoadDotEnv loads variables from a .env file in the working directory.
// Variables already set in the environment win. A missing file is fine.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// ParseServerFlags validates flags and falls back to environment variables
func ParseServerFlags(args []string) (ServerConfig, error) {
	var cfg ServerConfig

	fs := pflag.NewFlagSet("popular-query", pflag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Database URL")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Database type (sqlite or postgres)")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", 0, "How long results stay in the in-memory cache")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose logging")
	fs.BoolVar(&cfg.PrintKeys, "print-keys", false, "Print the publish key of every period and exit")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.PublishKeySalt, "publish-salt", "", "Publish key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return ServerConfig{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return ServerConfig{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && !cfg.PrintKeys {
		return ServerConfig{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return ServerConfig{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.CacheTTL == 0 {
		if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
			d, err := time.ParseDuration(ttl)
			if err != nil {
				return ServerConfig{}, errors.New("invalid CACHE_TTL env variable")
			}
			cfg.CacheTTL = d
		} else {
			cfg.CacheTTL = 5 * time.Minute
		}
	}

	// Secrets - MUST be provided
	if cfg.PublishKeySalt == "" {
		cfg.PublishKeySalt = os.Getenv("PUBLISH_KEY_SALT")
	}
	if cfg.PublishKeySalt == "" {
		return ServerConfig{}, errors.New("PUBLISH_KEY_SALT required")
	}

	return cfg, nil
}

// ParseClientFlags parses the terminal client's flags
func ParseClientFlags(args []string) (ClientConfig, error) {
	var cfg ClientConfig

	fs := pflag.NewFlagSet("popular-tui", pflag.ContinueOnError)
	fs.StringVarP(&cfg.APIURL, "api-url", "a", "", "Base URL of the popular query API")
	fs.StringVar(&cfg.SearchHost, "search-host", "", "Host of the external search site")
	fs.StringVarP(&cfg.Fragment, "fragment", "f", "", "Initial fragment (a period or \"about\")")
	fs.StringVar(&cfg.LogFile, "log-file", "", "Write logs to this file")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return ClientConfig{}, err
	}

	if cfg.APIURL == "" {
		cfg.APIURL = os.Getenv("POPULAR_API_URL")
		if cfg.APIURL == "" {
			cfg.APIURL = "http://localhost:8080"
		}
	}
	if cfg.SearchHost == "" {
		cfg.SearchHost = os.Getenv("SEARCH_HOST")
		if cfg.SearchHost == "" {
			cfg.SearchHost = "hypnohub.net"
		}
	}
	if cfg.LogFile == "" {
		cfg.LogFile = os.Getenv("POPULAR_LOG_FILE")
	}

	// Accept "#daily" as well as "daily"
	if len(cfg.Fragment) > 0 && cfg.Fragment[0] == '#' {
		cfg.Fragment = cfg.Fragment[1:]
	}

	return cfg, nil
}
