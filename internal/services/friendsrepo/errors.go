package friendsrepo

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const (
	// ErrConflict is returned when a friend with the same mid is already stored.
	ErrConflict = constError("friend already exists")
	// ValidationError is returned for requests missing required fields.
	ValidationError = constError("invalid request")
	// DuplicateKeyError is returned when a duplicate key error occurs.
	DuplicateKeyError = pq.ErrorCode("23505")
)

// StorageError wraps a failed store operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsDuplicateKeyError checks if the error is a duplicate key error.
func IsDuplicateKeyError(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == DuplicateKeyError
}

// IsConflict checks if the error is a conflict on the friend's mid.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsNoRowsError checks if the error is a no rows error.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ValidationError)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
