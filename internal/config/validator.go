package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/julianstephens/calmher/internal/constants"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "storage.driver")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidDrivers returns the list of valid storage drivers
func ValidDrivers() []string {
	return []string{
		constants.DriverNone,
		constants.DriverJSON,
		constants.DriverSQLite,
		constants.DriverPostgres,
		constants.DriverKafka,
	}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateSchedule()...)
	errors = append(errors, c.validateStorage()...)
	errors = append(errors, c.validateServer()...)

	return errors
}

func (c *Config) validateSchedule() []ValidationError {
	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return []ValidationError{{
			Field:   "schedule.timezone",
			Value:   c.Schedule.Timezone,
			Message: "must be a valid IANA timezone",
		}}
	}
	return nil
}

func (c *Config) validateStorage() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidDrivers(), c.Storage.Driver) {
		errors = append(errors, ValidationError{
			Field:   "storage.driver",
			Value:   c.Storage.Driver,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidDrivers(), ", ")),
		})
	}

	if c.Storage.Driver == constants.DriverKafka {
		if len(c.Kafka.Brokers) == 0 {
			errors = append(errors, ValidationError{
				Field:   "kafka.brokers",
				Value:   c.Kafka.Brokers,
				Message: "at least one broker is required for the kafka driver",
			})
		}
		if strings.TrimSpace(c.Kafka.Topic) == "" {
			errors = append(errors, ValidationError{
				Field:   "kafka.topic",
				Value:   c.Kafka.Topic,
				Message: "must not be empty for the kafka driver",
			})
		}
	}

	return errors
}

func (c *Config) validateServer() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Server.Addr) == "" {
		errors = append(errors, ValidationError{
			Field:   "server.addr",
			Value:   c.Server.Addr,
			Message: "must not be empty",
		})
	}

	if c.Server.RequestTimeout <= 0 {
		errors = append(errors, ValidationError{
			Field:   "server.request_timeout",
			Value:   c.Server.RequestTimeout,
			Message: "must be positive",
		})
	}

	return errors
}
