package config

import (
	"fmt"
	"slices"
)

var logLevels = []string{"", "debug", "info", "warn", "error"}

type LogConfig struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string `koanf:"level"`
}

func (c *LogConfig) String() string {
	return newSection("Log").field("level", c.Level).String()
}

func (c *LogConfig) Validate() error {
	if !slices.Contains(logLevels, c.Level) {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Level)
	}
	return nil
}
