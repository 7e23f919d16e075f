package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Solo"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"27017"`
		User     string `envconfig:"DB_USER" default:""`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"solo"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

// ConnectionString builds the document store URI from the DB section.
func (c *Config) ConnectionString() string {
	if c.DB.User != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%d", c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port)
	}

	return fmt.Sprintf("mongodb://%s:%d", c.DB.Host, c.DB.Port)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
