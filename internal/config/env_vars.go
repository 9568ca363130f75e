package config

import (
	"os"
	"time"
)

const (
	baseURLVar = "API_BASE_URL"
	appNameVar = "APP_NAME"
	folderVar  = "FOLDER"
	timeoutVar = "REQUEST_TIMEOUT"

	defaultBaseURL = "http://localhost:8080"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

// GetAPIBaseURL is resolved from the environment on every call so the same
// build can be re-pointed at a different backend without recompilation.
func (EnvVars) GetAPIBaseURL() string {
	return GetEnv(baseURLVar, defaultBaseURL)
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Finance Panel")
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderVar, "./data")
}

func (EnvVars) GetRequestTimeout() time.Duration {
	raw := GetEnv(timeoutVar, "")
	if raw == "" {
		return 0 // no client-side timeout, bounded only by the network stack
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return d
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
