package config

import (
	"fmt"
	"net/url"
	"time"
)

// NATSConfig configures the broker that receives the association events.
// Publishing is disabled unless Enabled is set.
type NATSConfig struct {
	Enabled bool          `koanf:"enabled"`
	Url     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

func (c *NATSConfig) String() string {
	return newSection("NATS").
		field("enabled", c.Enabled).
		field("url", MaskURL(c.Url)).
		field("timeout", c.Timeout).
		String()
}

func (c *NATSConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	u, err := url.Parse(c.Url)
	if c.Url == "" || err != nil || u.Scheme != "nats" {
		return fmt.Errorf("nats.url must be a nats:// URL when nats is enabled")
	}
	return positive("nats.timeout", c.Timeout)
}
