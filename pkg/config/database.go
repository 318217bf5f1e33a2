package config

import (
	"fmt"
	"net/url"
	"time"
)

type DatabaseConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
	// Migrate applies the embedded schema migrations on startup.
	Migrate bool `koanf:"migrate"`
}

func (c *DatabaseConfig) String() string {
	return newSection("Database").
		field("url", MaskURL(c.URL)).
		field("timeout", c.Timeout).
		field("migrate", c.Migrate).
		String()
}

func (c *DatabaseConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("database.url is not configured")
	}
	u, err := url.Parse(c.URL)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		return fmt.Errorf("database.url must be a postgres:// URL: %s", MaskURL(c.URL))
	}
	return positive("database.timeout", c.Timeout)
}

// MaskURL hides the password of a connection URL so it can be logged.
func MaskURL(raw string) string {
	if raw == "" {
		return "<not configured>"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "****"
	}
	return u.Redacted()
}
