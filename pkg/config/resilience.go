package config

import (
	"fmt"
	"time"
)

// CircuitBreakerConfig controls when the event publisher stops calling the broker.
type CircuitBreakerConfig struct {
	ConsecutiveFailures uint32        `koanf:"consecutivefailures"`
	ErrorRatePercent    int           `koanf:"errorratepercent"`
	OpenTimeout         time.Duration `koanf:"opentimeout"`
}

func (c *CircuitBreakerConfig) String() string {
	return newSection("Circuit Breaker").
		field("consecutivefailures", c.ConsecutiveFailures).
		field("errorratepercent", c.ErrorRatePercent).
		field("opentimeout", c.OpenTimeout).
		String()
}

func (c *CircuitBreakerConfig) Validate() error {
	if c.ConsecutiveFailures == 0 {
		return fmt.Errorf("publisher.circuitbreaker.consecutivefailures must be greater than 0")
	}
	if c.ErrorRatePercent < 0 || c.ErrorRatePercent > 100 {
		return fmt.Errorf("publisher.circuitbreaker.errorratepercent must be between 0 and 100, got %d", c.ErrorRatePercent)
	}
	return positive("publisher.circuitbreaker.opentimeout", c.OpenTimeout)
}
