package config

import (
	"fmt"
	"slices"
)

var (
	validDrivers = []string{DriverSQLite, DriverNone}
	validEnvs    = []string{"local", "dev", "prod"}
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !slices.Contains(validEnvs, c.App.Env) {
		return fmt.Errorf("app.env must be one of %v (got %q)", validEnvs, c.App.Env)
	}

	if !slices.Contains(validDrivers, c.Storage.Driver) {
		return fmt.Errorf("storage.driver must be one of %v (got %q)", validDrivers, c.Storage.Driver)
	}
	if c.Storage.Driver == DriverSQLite && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required for the sqlite driver")
	}
	if c.Storage.BusyTimeout < 0 {
		return fmt.Errorf("storage.busy_timeout must be >= 0 (got %v)", c.Storage.BusyTimeout)
	}
	if c.Storage.MaxOpenConns < 1 {
		return fmt.Errorf("storage.max_open_conns must be >= 1 (got %d)", c.Storage.MaxOpenConns)
	}

	if !slices.Contains(validLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", validLevels, c.Log.Level)
	}
	if !slices.Contains(validFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", validFormats, c.Log.Format)
	}

	return nil
}
