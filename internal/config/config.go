package config

import (
	"fmt"
	"net/textproto"
	"os"
	"strings"

	"github.com/Aquilabot/KreaPC-Builder/internal/utils"
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Address  string
	Catalog  string
	Region   string
	LogLevel string
	// Headers are sent with every catalog request.
	Headers map[string]string
}

var logLevels = map[string]log.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("address", ":3000")
	v.SetDefault("catalog", "")
	v.SetDefault("region", "us")
	v.SetDefault("log_level", "info")
	v.SetDefault("headers", "")

	v.SetEnvPrefix("minipc")
	v.AutomaticEnv()

	cfg := &Config{
		Address:  v.GetString("address"),
		Catalog:  v.GetString("catalog"),
		Region:   v.GetString("region"),
		LogLevel: v.GetString("log_level"),
	}

	headers, err := parseHeaders(v.GetString("headers"))
	if err != nil {
		return nil, fmt.Errorf("headers: %w", err)
	}
	cfg.Headers = headers

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("empty listen address")
	}

	if c.Catalog != "" && !utils.MatchHTTPURL(c.Catalog) {
		if err := validateFileExists(c.Catalog); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
	}

	if !utils.MatchPCPPURL(utils.BuildPrefixURL(c.Region)) {
		return fmt.Errorf("invalid region: %s", c.Region)
	}

	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("invalid log level: %s (valid: trace, debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Level returns the fiber log level matching LogLevel.
func (c *Config) Level() log.Level {
	if level, ok := logLevels[c.LogLevel]; ok {
		return level
	}
	return log.LevelInfo
}

// parseHeaders reads a comma separated list of Name=Value pairs.
func parseHeaders(raw string) (map[string]string, error) {
	headers := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed header %q, expected Name=Value", pair)
		}
		headers[textproto.CanonicalMIMEHeaderKey(name)] = strings.TrimSpace(value)
	}
	return headers, nil
}

func validateFileExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	} else if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	return nil
}
