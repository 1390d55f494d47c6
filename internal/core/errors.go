package core

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ValidationError reports bad or missing user input. It is recoverable: the
// caller reports it and no state has changed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateTaxIDError reports a unique-constraint violation on a customer tax id.
type DuplicateTaxIDError struct {
	TaxID string
}

func (e *DuplicateTaxIDError) Error() string {
	return fmt.Sprintf("customer with tax id %s already exists", e.TaxID)
}

// StorageError wraps a failed durable operation. By the time it reaches the
// caller any in-flight transaction has been rolled back, so prior durable state
// is unchanged and the operation may be retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// uniqueViolation is the PostgreSQL error code for a unique-constraint violation.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
