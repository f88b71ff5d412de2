package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateNil(t *testing.T) {
	assert.NoError(t, Translate(nil))
}

func TestTranslateNoRows(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "database/sql", err: sql.ErrNoRows},
		{name: "gorm", err: gorm.ErrRecordNotFound},
		{name: "wrapped", err: fmt.Errorf("fetch user: %w", sql.ErrNoRows)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Translate(tt.err), ErrNoRows)
		})
	}
}

func TestTranslateConstraintViolations(t *testing.T) {
	tests := []struct {
		name     string
		code     pq.ErrorCode
		sentinel error
	}{
		{name: "unique", code: "23505", sentinel: ErrUniqueViolation},
		{name: "foreign key", code: "23503", sentinel: ErrForeignKeyViolation},
		{name: "not null", code: "23502", sentinel: ErrNotNullViolation},
		{name: "check", code: "23514", sentinel: ErrCheckViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pqErr := &pq.Error{Code: tt.code, Constraint: "users_email_key"}

			err := Translate(pqErr)
			assert.ErrorIs(t, err, tt.sentinel)

			var driverErr *DriverError
			require.ErrorAs(t, err, &driverErr)
			assert.Equal(t, tt.code, driverErr.Code)
			assert.Equal(t, "users_email_key", driverErr.Constraint)

			// Original driver error stays reachable through the chain.
			var original *pq.Error
			assert.ErrorAs(t, err, &original)
		})
	}
}

func TestTranslatePassesThroughUnknown(t *testing.T) {
	plain := errors.New("connection refused")
	assert.Equal(t, plain, Translate(plain))

	// Unmapped pq codes pass through untouched too.
	pqErr := &pq.Error{Code: "57014"} // query_canceled
	assert.Equal(t, error(pqErr), Translate(pqErr))
}

func TestTranslateWrappedDriverError(t *testing.T) {
	inner := &pq.Error{Code: "23505", Constraint: "sessions_token_key"}
	err := Translate(fmt.Errorf("create session: %w", inner))
	assert.ErrorIs(t, err, ErrUniqueViolation)
}
