package main

import (
	"strings"

	"debuglog/internal/logging"
)

// severityFlag adapts logging.Severity to a cobra flag value.
type severityFlag struct {
	value logging.Severity
	set   bool
}

func (f *severityFlag) String() string {
	return strings.ToLower(f.value.String())
}

func (f *severityFlag) Set(value string) error {
	if err := f.value.UnmarshalText([]byte(value)); err != nil {
		return err
	}
	f.set = true
	return nil
}

func (f *severityFlag) Type() string {
	return "severity"
}
