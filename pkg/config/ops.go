package config

import (
	"fmt"
	"time"
)

// ShutdownConfig bounds how long the servers get to drain on SIGINT/SIGTERM.
type ShutdownConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

func (c *ShutdownConfig) String() string {
	return newSection("Shutdown").field("timeout", c.Timeout).String()
}

func (c *ShutdownConfig) Validate() error {
	return positive("shutdown.timeout", c.Timeout)
}

// PProfConfig exposes net/http/pprof on a separate listener when enabled.
type PProfConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

func (c *PProfConfig) String() string {
	return newSection("PProf").field("enabled", c.Enabled).field("addr", c.Addr).String()
}

func (c *PProfConfig) Validate() error {
	if c.Enabled && c.Addr == "" {
		return fmt.Errorf("pprof.addr is required when pprof is enabled")
	}
	return nil
}
