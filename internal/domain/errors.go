package domain

import "errors"

// Sentinel errors shared by every engine. Callers distinguish routine domain
// conditions from storage failures with errors.Is.
var (
	// ErrNotFound marks operations on unknown timer, entry, reminder or week ids.
	ErrNotFound = errors.New("not found")

	// ErrLocked marks mutations attempted against a submitted or approved week.
	ErrLocked = errors.New("week is locked")

	// ErrInvalidInput marks malformed or missing caller input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyInState marks transitions that would not change anything,
	// like resuming a timer that is not paused.
	ErrAlreadyInState = errors.New("already in requested state")

	// ErrStorage marks unexpected persistence failures. Retryable; never a
	// routine domain condition.
	ErrStorage = errors.New("storage failure")
)

type storageError struct {
	op  string
	err error
}

func (e *storageError) Error() string {
	return e.op + ": " + e.err.Error()
}

func (e *storageError) Unwrap() error { return e.err }

func (e *storageError) Is(target error) bool { return target == ErrStorage }

// WrapStorage tags an unexpected persistence error so that
// errors.Is(err, ErrStorage) holds while the original cause stays unwrappable.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &storageError{op: op, err: err}
}
