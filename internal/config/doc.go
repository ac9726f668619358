// Package config loads, normalizes, and validates debuglog host settings.
//
// Settings live in a TOML file with a single [logging] table. Missing files
// fall back to repository defaults, DEBUGLOG_LEVEL overrides the level,
// DEBUGLOG_SINK fills in an empty sink, and sink paths get tilde expansion.
// Level names are parsed by the logging package when the logger is built.
package config
