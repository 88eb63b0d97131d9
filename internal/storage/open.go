package storage

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/keyring"
	"github.com/julianstephens/calmher/internal/storage/kafka"
	"github.com/julianstephens/calmher/internal/storage/postgres"
	"github.com/julianstephens/calmher/internal/storage/sqlite"
)

// Options selects and configures a sink.
type Options struct {
	Driver  string
	Path    string // file path for json and sqlite
	DSN     string // postgres; falls back to the OS keyring when empty
	Brokers []string
	Topic   string
}

// Open builds the sink for opts.Driver without connecting to it.
func Open(opts Options) (Sink, error) {
	switch opts.Driver {
	case "", constants.DriverNone:
		return NopSink{}, nil
	case constants.DriverJSON:
		return NewJSONStore(pathOrDefault(opts.Path, "calmher.json")), nil
	case constants.DriverSQLite:
		return sqlite.NewStore(pathOrDefault(opts.Path, "calmher.db")), nil
	case constants.DriverPostgres:
		// passwords may only live in the keyring, never in config
		if opts.DSN != "" {
			if err := postgres.ValidateConnString(opts.DSN); err != nil {
				return nil, err
			}
		}
		dsn, err := keyring.ResolveConnectionString(opts.DSN)
		if err != nil {
			return nil, err
		}
		return postgres.New(dsn), nil
	case constants.DriverKafka:
		return kafka.NewSink(kafka.Config{Brokers: opts.Brokers, Topic: opts.Topic})
	}
	return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
}

func pathOrDefault(path, name string) string {
	if path != "" {
		return path
	}
	return filepath.Join(".", name)
}
