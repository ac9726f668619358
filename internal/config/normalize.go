package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	return c.normalizeLogging()
}

func (c *Config) normalizeLogging() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Color = strings.ToLower(strings.TrimSpace(c.Logging.Color))
	if c.Logging.Color == "" {
		c.Logging.Color = defaultLogColor
	}
	sink := strings.TrimSpace(c.Logging.Sink)
	if sink == "" {
		c.Logging.Sink = ""
		return nil
	}
	expanded, err := expandPath(sink)
	if err != nil {
		return fmt.Errorf("logging.sink: %w", err)
	}
	c.Logging.Sink = expanded
	return nil
}
