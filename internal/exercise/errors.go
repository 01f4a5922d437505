package exercise

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is matched by every loader failure that happened before
	// any exercise could be decoded.
	ErrTransport = errors.New("exercise transport failure")

	// ErrMalformedExerciseData is matched by every decoding failure of a
	// single exercise.
	ErrMalformedExerciseData = errors.New("malformed exercise data")
)

// TransportError wraps a network, storage or decoding failure of the
// exercise list as a whole.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// MalformedError reports an exercise whose payload is inconsistent with its
// kind.
type MalformedError struct {
	ExerciseID string
	Reason     string
	Err        error
}

func (e *MalformedError) Error() string {
	msg := fmt.Sprintf("malformed exercise %q: %s", e.ExerciseID, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedError) Unwrap() error { return e.Err }

func (e *MalformedError) Is(target error) bool { return target == ErrMalformedExerciseData }

func malformed(id, reason string, err error) *MalformedError {
	return &MalformedError{ExerciseID: id, Reason: reason, Err: err}
}
