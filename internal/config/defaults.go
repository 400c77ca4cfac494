package config

const (
	defaultMindsDir   = "~/.local/share/confmind/conferences"
	defaultLogDir     = "~/.local/share/confmind/logs"
	defaultSocketPath = "~/.local/share/confmind/confmind.sock"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns the built-in configuration used when no file is present.
func Default() Config {
	return Config{
		Paths: Paths{
			MindsDir:   defaultMindsDir,
			LogDir:     defaultLogDir,
			SocketPath: defaultSocketPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
