package config

import (
	"fmt"
	"net/url"
	"time"
)

type Config interface {
	EnvConfig
}

type EnvConfig interface {
	GetAPIBaseURL() string
	GetAppName() string
	GetDataFolder() string
	GetRequestTimeout() time.Duration
	GetEnv() string
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{}
}

// Validate checks that the configured base URL is an absolute http(s) URL.
func Validate(c EnvConfig) error {
	base := c.GetAPIBaseURL()
	parsed, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("invalid API base URL %q: %w", base, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid API base URL %q: scheme must be http or https", base)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid API base URL %q: missing host", base)
	}
	return nil
}
