package env

import (
	"fmt"
	"os"
	"strings"

	"roulette_sim/internal/config"
)

const (
	outputPathEnvName    = "OUTPUT_PATH"
	outputDriversEnvName = "OUTPUT_DRIVERS"

	defaultOutputPath = "OverRouletteProfessionalData.csv"

	DriverFile     = "file"
	DriverPostgres = "postgres"
)

type outputConfig struct {
	filePath string
	drivers  []string
}

func NewOutputConfig() (config.OutputConfig, error) {
	path := os.Getenv(outputPathEnvName)
	if len(path) == 0 {
		path = defaultOutputPath
	}

	raw := os.Getenv(outputDriversEnvName)
	if len(raw) == 0 {
		raw = DriverFile
	}

	seen := make(map[string]bool)
	var drivers []string
	for _, d := range strings.Split(raw, ",") {
		d = strings.ToLower(strings.TrimSpace(d))
		if len(d) == 0 || seen[d] {
			continue
		}
		if d != DriverFile && d != DriverPostgres {
			return nil, fmt.Errorf("unknown output driver %q", d)
		}
		seen[d] = true
		drivers = append(drivers, d)
	}
	if len(drivers) == 0 {
		return nil, fmt.Errorf("%s has no drivers", outputDriversEnvName)
	}

	return &outputConfig{
		filePath: path,
		drivers:  drivers,
	}, nil
}

func (c *outputConfig) FilePath() string {
	return c.filePath
}

func (c *outputConfig) Drivers() []string {
	return c.drivers
}
