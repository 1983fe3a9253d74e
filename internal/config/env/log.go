package env

import (
	"os"

	"roulette_sim/internal/config"
)

const logLevelEnvName = "LOG_LEVEL"

type logConfig struct {
	level string
}

func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = "info"
	}
	return &logConfig{level: level}
}

func (c *logConfig) Level() string {
	return c.level
}
