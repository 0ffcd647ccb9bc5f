package config

// CLIConfig is the configuration for triedis-cli.
type CLIConfig struct {
	// Host is the server host to connect to.
	Host string `koanf:"host" yaml:"host"`

	// Port is the server port.
	Port int `koanf:"port" yaml:"port"`

	// HistoryFile overrides the default history location.
	HistoryFile string `koanf:"history_file" yaml:"history_file"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose" yaml:"verbose"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Host: "127.0.0.1",
		Port: 6379,
	}
}
