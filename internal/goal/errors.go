package goal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGoalNotFound matches a StorageError raised because the store reported no such row.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrNotFound is returned by Repository implementations when no row matched.
	ErrNotFound = errors.New("record not found")
)

// StorageError is the only error the gateway surfaces for a failed round-trip.
// The storage cause is logged by the service and deliberately not unwrapped.
type StorageError struct {
	Op       string
	notFound bool
}

func (e *StorageError) Error() string {
	return "failed to " + e.Op
}

func (e *StorageError) Is(target error) bool {
	return target == ErrGoalNotFound && e.notFound
}

func newStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, notFound: errors.Is(cause, ErrNotFound)}
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidEnum[T ~string](field, value string, allowed []T) *ValidationError {
	names := make([]string, len(allowed))
	for i, v := range allowed {
		names[i] = string(v)
	}
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf("%q is not one of %s", value, strings.Join(names, ", ")),
	}
}
