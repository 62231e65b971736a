package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider ProviderConfig `yaml:"provider" json:"provider"`
	Device   DeviceConfig   `yaml:"device" json:"device"`
	Server   ServerConfig   `yaml:"server" json:"server"`
}

func Load() (*Config, error) {
	fileName := "/etc/oauth2-device-bridge/config/config.yaml"
	if fn := os.Getenv("OAUTH2_DEVICE_BRIDGE_CONFIG"); fn != "" {
		fileName = fn
	}
	var cfg Config
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.ValidateAndInitialize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ValidateAndInitialize() error {
	if err := c.Provider.validateAndInitialize(); err != nil {
		return err
	}
	if err := c.Device.validateAndInitialize(); err != nil {
		return err
	}
	if err := c.Server.validateAndInitialize(); err != nil {
		return err
	}
	return nil
}

func errFieldMustBeSet(field string) error {
	return fmt.Errorf("%s must be set", field)
}
