package order

import (
	"errors"
	"fmt"

	"ordergen/constants"
)

var (
	// ErrInvalidArgument is returned for input rejected before any work starts
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIOFailure is returned when the output file cannot be created or written
	ErrIOFailure = errors.New("io failure")
)

// Config holds the parameters of a single generation run
type Config struct {
	NumRows    int
	MaxTaskID  int
	OutputPath string
	// Seed makes the shuffle reproducible. Nil means seed from the clock.
	Seed *int64
}

// Validate checks the config and returns an error wrapping ErrInvalidArgument.
// The output path is not checked here; a path that cannot be opened surfaces
// as ErrIOFailure from Generate.
func (c Config) Validate() error {
	if c.NumRows <= 0 {
		return fmt.Errorf("%w: number of rows must be positive", ErrInvalidArgument)
	}
	if c.MaxTaskID <= 0 {
		return fmt.Errorf("%w: maximum task id must be positive", ErrInvalidArgument)
	}
	if Repetitions(c.NumRows, c.MaxTaskID) > constants.MaxPoolSize/c.MaxTaskID {
		return fmt.Errorf("%w: task pool for %d rows over %d ids exceeds %d entries",
			ErrInvalidArgument, c.NumRows, c.MaxTaskID, constants.MaxPoolSize)
	}
	return nil
}
