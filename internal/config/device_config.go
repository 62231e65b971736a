package config

import (
	"fmt"
	"time"
)

const (
	defaultCodeLength    = 8
	defaultCodeTTL       = 5 * time.Minute
	defaultSweepInterval = 2 * time.Minute
)

type DeviceConfig struct {
	CodeLength    int    `yaml:"codeLength" json:"codeLength"`
	CodeTTL       string `yaml:"codeTTL" json:"codeTTL"`
	SweepInterval string `yaml:"sweepInterval" json:"sweepInterval"`

	codeTTL       time.Duration
	sweepInterval time.Duration
}

func (d *DeviceConfig) validateAndInitialize() error {
	if d.CodeLength == 0 {
		d.CodeLength = defaultCodeLength
	}
	if d.CodeLength < 0 {
		return fmt.Errorf("device.codeLength must be positive")
	}

	parseDuration := func(field, value string, def time.Duration) (time.Duration, error) {
		if value == "" {
			return def, nil
		}
		dur, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("failed to parse %s '%s': %w", field, value, err)
		}
		if dur <= 0 {
			return 0, fmt.Errorf("%s must be positive", field)
		}
		return dur, nil
	}

	var err error
	if d.codeTTL, err = parseDuration("device.codeTTL", d.CodeTTL, defaultCodeTTL); err != nil {
		return err
	}
	if d.sweepInterval, err = parseDuration("device.sweepInterval", d.SweepInterval, defaultSweepInterval); err != nil {
		return err
	}

	return nil
}

// TTL is the lifetime of a device-code session from creation. Sessions
// past it are treated as nonexistent regardless of status.
func (d *DeviceConfig) TTL() time.Duration {
	return d.codeTTL
}

func (d *DeviceConfig) SweepEvery() time.Duration {
	return d.sweepInterval
}
