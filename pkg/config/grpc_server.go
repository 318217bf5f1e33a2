package config

import (
	"fmt"
	"strconv"
	"time"
)

type GrpcServerConfig struct {
	Port              string `koanf:"port"`
	ReflectionEnabled bool   `koanf:"reflection"`
	// HealthInterval is how often the health service re-checks the database.
	HealthInterval time.Duration `koanf:"healthinterval"`
}

func (c *GrpcServerConfig) String() string {
	return newSection("gRPC").
		field("port", c.Port).
		field("reflection", c.ReflectionEnabled).
		field("healthinterval", c.HealthInterval).
		String()
}

func (c *GrpcServerConfig) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("grpc.port must be a port number, got %q", c.Port)
	}
	return positive("grpc.healthinterval", c.HealthInterval)
}
