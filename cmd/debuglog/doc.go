// Command debuglog is a small host for the debuglog logging facility.
//
// It loads [logging] settings from TOML, builds a logger from them, and
// exposes commands that emit records (emit), run guarded file checks
// (probe), list severities against the configured minimum (levels), read
// back the sink (tail), and manage the configuration file (config init,
// config validate).
package main
