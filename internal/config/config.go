package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/julianstephens/calmher/internal/constants"
)

// Config represents the complete calmher configuration
type Config struct {
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ScheduleConfig struct {
	// Timezone is an IANA name; dates and zone-less event times are read in it
	Timezone string `mapstructure:"timezone"`
}

type StorageConfig struct {
	// Driver is one of none, json, sqlite, postgres, kafka
	Driver string `mapstructure:"driver"`
	// Path is the file used by the json and sqlite drivers
	Path string `mapstructure:"path"`
	// DSN is the PostgreSQL connection string without a password.
	// When empty the OS keyring entry is used.
	DSN string `mapstructure:"dsn"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	// RequestTimeout bounds persistence work done for a single request
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type LoggingConfig struct {
	Debug bool `mapstructure:"debug"`
	// Dir enables file logging with rotation; empty logs to stderr only
	Dir string `mapstructure:"dir"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			Timezone: "UTC",
		},
		Storage: StorageConfig{
			Driver: constants.DriverNone,
		},
		Kafka: KafkaConfig{
			Topic: constants.DefaultKafkaTopic,
		},
		Server: ServerConfig{
			Addr:           constants.DefaultServerAddr,
			CORSOrigins:    []string{"*"},
			RequestTimeout: constants.DefaultRequestTimeout,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("schedule.timezone", defaults.Schedule.Timezone)

	viper.SetDefault("storage.driver", defaults.Storage.Driver)
	viper.SetDefault("storage.path", defaults.Storage.Path)
	viper.SetDefault("storage.dsn", defaults.Storage.DSN)

	viper.SetDefault("kafka.brokers", defaults.Kafka.Brokers)
	viper.SetDefault("kafka.topic", defaults.Kafka.Topic)

	viper.SetDefault("server.addr", defaults.Server.Addr)
	viper.SetDefault("server.cors_origins", defaults.Server.CORSOrigins)
	viper.SetDefault("server.request_timeout", defaults.Server.RequestTimeout)

	viper.SetDefault("logging.debug", defaults.Logging.Debug)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Init wires viper to the config file, defaults and CALMHER_* environment
// variables. A missing config file is not an error.
func Init(cfgFile string) error {
	SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(strings.ToUpper(constants.AppName))
	// CALMHER_STORAGE_DRIVER for storage.driver
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Location returns the configured scheduling timezone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Schedule.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// StoragePath returns the sink file path, defaulting into DataDir.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	switch c.Storage.Driver {
	case constants.DriverJSON:
		return filepath.Join(DataDir(), constants.AppName+".json")
	case constants.DriverSQLite:
		return filepath.Join(DataDir(), constants.AppName+".db")
	}
	return ""
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, constants.AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + constants.AppName
	}
	return filepath.Join(home, ".config", constants.AppName)
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DataDir returns where file-backed sinks live by default
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, constants.AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + constants.AppName
	}
	return filepath.Join(home, ".local", "share", constants.AppName)
}
