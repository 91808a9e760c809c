package flags

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var BaseURL = &cli.StringFlag{
	Name:    "base-url",
	Aliases: []string{"u"},
	Usage:   "Base URL of the SocialUni backend",
	Value:   "http://localhost:8080/api",
	Sources: cli.EnvVars("SOCIALUNI_BASE_URL"),
}

var TokenPath = &cli.StringFlag{
	Name:    "token-path",
	Usage:   "Where the session token is persisted. Empty picks a file under the user config dir",
	Sources: cli.EnvVars("SOCIALUNI_TOKEN_PATH"),
}

var MetricsAddr = &cli.StringFlag{
	Name:    "metrics-addr",
	Usage:   "Listen address of the Prometheus metrics endpoint",
	Value:   ":9091",
	Sources: cli.EnvVars("SOCIALUNI_METRICS_ADDR"),
}

var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}
