package config

const (
	defaultLogLevel   = "trace"
	defaultLogColor   = "auto"
	defaultConfigPath = "~/.config/debuglog/config.toml"
	projectConfigName = "debuglog.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level: defaultLogLevel,
			Color: defaultLogColor,
		},
	}
}
