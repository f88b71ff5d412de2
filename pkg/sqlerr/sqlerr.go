// Package sqlerr translates Postgres driver errors into the
// data-access layer's error taxonomy. Collectors apply Translate to
// query errors before shape handling, so callers match on the
// sentinels here instead of driver error codes.
package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Sentinels for the common constraint-violation classes.
var (
	// ErrNoRows is the translated "no rows in result set". Collectors
	// treat it as an empty result, not a failure.
	ErrNoRows = errors.New("sqlerr: no rows in result")

	ErrUniqueViolation     = errors.New("sqlerr: unique violation")
	ErrForeignKeyViolation = errors.New("sqlerr: foreign key violation")
	ErrNotNullViolation    = errors.New("sqlerr: not null violation")
	ErrCheckViolation      = errors.New("sqlerr: check violation")
)

// DriverError wraps a Postgres error with its code and constraint,
// unwrapping to both the matching sentinel and the original error.
type DriverError struct {
	Sentinel   error
	Code       pq.ErrorCode
	Constraint string
	cause      error
}

func (e *DriverError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%v: constraint %q (code %s)", e.Sentinel, e.Constraint, e.Code)
	}
	return fmt.Sprintf("%v (code %s)", e.Sentinel, e.Code)
}

func (e *DriverError) Unwrap() []error {
	return []error{e.Sentinel, e.cause}
}

// Postgres error codes for the integrity-constraint violation class.
const (
	codeNotNullViolation    pq.ErrorCode = "23502"
	codeForeignKeyViolation pq.ErrorCode = "23503"
	codeUniqueViolation     pq.ErrorCode = "23505"
	codeCheckViolation      pq.ErrorCode = "23514"
)

// Translate maps a lower-level data-access error onto the layer's
// taxonomy. Unknown errors pass through unchanged; nil stays nil.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoRows
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		sentinel := sentinelFor(pqErr.Code)
		if sentinel == nil {
			return err
		}
		return &DriverError{
			Sentinel:   sentinel,
			Code:       pqErr.Code,
			Constraint: pqErr.Constraint,
			cause:      err,
		}
	}

	return err
}

func sentinelFor(code pq.ErrorCode) error {
	switch code {
	case codeNotNullViolation:
		return ErrNotNullViolation
	case codeForeignKeyViolation:
		return ErrForeignKeyViolation
	case codeUniqueViolation:
		return ErrUniqueViolation
	case codeCheckViolation:
		return ErrCheckViolation
	}
	return nil
}
