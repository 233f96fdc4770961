package server

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort int32 = 8080
	// MaxRequestsInFlight bounds concurrent /metrics scrapes.
	MaxRequestsInFlight = 4
)

var ErrInvalidPort = errors.New("port must be between 1 and 65535")

type Config struct {
	Address string `yaml:"address"`
	Port    int32  `yaml:"port"`
	Systemd bool   `yaml:"systemd"`
}

func DefaultConfig() *Config {
	return &Config{Port: DefaultPort}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, c.Port)
	}
	return nil
}

// ListenAddress is the TCP address used when not socket activated.
func (c *Config) ListenAddress() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(int(c.Port)))
}
