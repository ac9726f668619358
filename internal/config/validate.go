package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	return c.validateLogging()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("logging.color must be one of auto, always, never (got %q)", c.Logging.Color)
	}
	return nil
}
