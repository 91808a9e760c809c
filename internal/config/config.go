package config

type Config struct {
	BaseURL     string `flag:"base-url"`
	TokenPath   string `flag:"token-path"`
	MetricsAddr string `flag:"metrics-addr"`
	LogLevel    string `flag:"log-level"`
}
