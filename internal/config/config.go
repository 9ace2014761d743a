package config

import "time"

// Storage driver names. DriverNone is the stub used on build targets with
// no embedded-store support; every store access then fails fast with an
// explicit sentinel instead of opening a file.
const (
	DriverSQLite = "sqlite"
	DriverNone   = "none"
)

// Config is the root application configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// AppConfig holds application identity settings.
type AppConfig struct {
	Name string `yaml:"name" env:"APP_NAME" env-default:"alchemize"`
	Env  string `yaml:"env"  env:"APP_ENV"  env-default:"local"`
}

// StorageConfig holds embedded-store settings.
type StorageConfig struct {
	Driver       string        `yaml:"driver"         env:"STORAGE_DRIVER"         env-default:"sqlite"`
	Path         string        `yaml:"path"           env:"STORAGE_PATH"           env-default:"./data/alchemize.db"`
	BusyTimeout  time.Duration `yaml:"busy_timeout"   env:"STORAGE_BUSY_TIMEOUT"   env-default:"5s"`
	MaxOpenConns int           `yaml:"max_open_conns" env:"STORAGE_MAX_OPEN_CONNS" env-default:"1"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
