// Package config holds the reusable configuration sections of the catalog service.
// Each section is loaded by koanf and validates itself.
package config

import (
	"fmt"
	"time"
)

type HTTPConfig struct {
	Port           int `koanf:"port"`
	MaxHeaderBytes int `koanf:"maxHeaderBytes"`
	Timeout        struct {
		Read       time.Duration `koanf:"read"`
		Write      time.Duration `koanf:"write"`
		Idle       time.Duration `koanf:"idle"`
		ReadHeader time.Duration `koanf:"readHeader"`
	} `koanf:"timeout"`
}

func (c *HTTPConfig) String() string {
	return newSection("Server").
		field("port", c.Port).
		field("maxHeaderBytes", c.MaxHeaderBytes).
		field("timeout.read", c.Timeout.Read).
		field("timeout.write", c.Timeout.Write).
		field("timeout.idle", c.Timeout.Idle).
		field("timeout.readHeader", c.Timeout.ReadHeader).
		String()
}

func (c *HTTPConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Port)
	}
	if c.MaxHeaderBytes < 0 {
		return fmt.Errorf("server.maxHeaderBytes must not be negative, got %d", c.MaxHeaderBytes)
	}
	return firstError(
		positive("server.timeout.read", c.Timeout.Read),
		positive("server.timeout.write", c.Timeout.Write),
		positive("server.timeout.idle", c.Timeout.Idle),
		positive("server.timeout.readHeader", c.Timeout.ReadHeader),
	)
}
