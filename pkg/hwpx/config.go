package hwpx

import (
	"os"
	"strconv"
	"sync"
)

// Config contains package-wide configuration options.
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off).
	LogLevel string
	// StrictRefs enables a save-time check that every charPr/paraPr/style/
	// borderFill ID referenced from document content is populated in the
	// registry. Off by default for parity with reference output.
	StrictRefs bool
	// PreviewLimit is the number of characters of plain text written to
	// Preview/PrvText.txt.
	PreviewLimit int
}

var (
	globalConfig *Config
	configMu     sync.RWMutex
	configOnce   sync.Once
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		StrictRefs:   false,
		PreviewLimit: 200,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if val := os.Getenv("HWPX_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}
	if val := os.Getenv("HWPX_STRICT_REFS"); val != "" {
		config.StrictRefs = parseBool(val)
	}
	if val := os.Getenv("HWPX_PREVIEW_LIMIT"); val != "" {
		if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
			config.PreviewLimit = limit
		}
	}

	return config
}

func parseBool(val string) bool {
	switch val {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	}
	return false
}

// GetGlobalConfig returns the global configuration, initializing it from
// the environment on first use.
func GetGlobalConfig() *Config {
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		if globalConfig == nil {
			globalConfig = ConfigFromEnvironment()
		}
	})
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}

// SetGlobalConfig replaces the global configuration.
func SetGlobalConfig(config *Config) {
	configOnce.Do(func() {})
	configMu.Lock()
	defer configMu.Unlock()
	if config == nil {
		config = DefaultConfig()
	}
	globalConfig = config
}
