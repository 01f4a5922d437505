package interaction

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInteraction is returned for a mutation that names a value
	// the exercise does not contain or that its kind does not support.
	ErrInvalidInteraction = errors.New("invalid interaction")

	// ErrStaleInteraction is returned for a mutation applied after the
	// owning exercise has been left.
	ErrStaleInteraction = errors.New("stale interaction")
)

// StaleError identifies the exercise a stale mutation targeted.
type StaleError struct {
	ExerciseID string
	Op         string
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("%s on exercise %q after it was left", e.Op, e.ExerciseID)
}

func (e *StaleError) Is(target error) bool { return target == ErrStaleInteraction }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInteraction, fmt.Sprintf(format, args...))
}
