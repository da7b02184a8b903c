package services

import (
	"errors"
	"fmt"
)

var (
	// ErrTweetNotFound is returned when a referenced tweet does not exist
	ErrTweetNotFound = errors.New("tweet not found")
	// ErrUserNotFound is returned when a referenced user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrNotTweetOwner is returned when a user tries to delete a tweet they do not own
	ErrNotTweetOwner = errors.New("tweets can only be deleted by their owner")
	// ErrSelfFollow is returned when a user tries to follow themselves
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// ValidationError reports malformed input. It is raised before any
// mutation is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// PersistenceError reports that an atomic unit of work failed to
// commit. The unit was rolled back in full; Err carries the storage
// cause for logging.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying storage error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// wrapPersistence classifies an error coming out of a unit of work.
// Domain errors raised inside the transaction pass through untouched;
// anything else is a storage failure.
func wrapPersistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTweetNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrNotTweetOwner) ||
		errors.Is(err, ErrSelfFollow) {
		return err
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
