package collect

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/modelbase-go/modelbase/pkg/modelbase"
	"github.com/modelbase-go/modelbase/pkg/sqlerr"
)

type user struct {
	ID    uuid.UUID              `json:"id"`
	Email string                 `json:"email" validate:"required,email"`
	Token modelbase.SecretString `json:"token"`
}

var aliceID = uuid.MustParse("0a7afed4-61d7-4dc0-9b5c-5c2a63f25e77")

func aliceRow() map[string]interface{} {
	return map[string]interface{}{
		"id":    aliceID.String(),
		"email": "alice@example.com",
		"token": "tok-alice",
	}
}

func TestOne(t *testing.T) {
	u, err := One[user](aliceRow(), nil)
	require.NoError(t, err)
	assert.Equal(t, aliceID, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "tok-alice", u.Token.Reveal())
}

func TestOneEmptyResult(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
	}{
		{name: "nil result", raw: nil},
		{name: "empty row set", raw: []map[string]interface{}{}},
		{name: "empty map", raw: map[string]interface{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := One[user](tt.raw, nil)
			assert.ErrorIs(t, err, ErrEmptyResult)
		})
	}
}

func TestOneNoRowsError(t *testing.T) {
	// Driver-level "no rows" means an absent result, which for a
	// required shape is ErrEmptyResult.
	_, err := One[user](nil, sql.ErrNoRows)
	assert.ErrorIs(t, err, ErrEmptyResult)

	_, err = One[user](nil, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestOneUnwrapsSingleRowSet(t *testing.T) {
	u, err := One[user]([]map[string]interface{}{aliceRow()}, nil)
	require.NoError(t, err)
	assert.Equal(t, aliceID, u.ID)
}

func TestOneTypedResult(t *testing.T) {
	in := user{ID: aliceID, Email: "alice@example.com", Token: "tok"}

	u, err := One[user](in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, u)

	u, err = One[user](&in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, u)
}

func TestOneValidationFailure(t *testing.T) {
	row := aliceRow()
	row["email"] = "not-an-email"

	_, err := One[user](row, nil)
	require.Error(t, err)

	var convertErr *ConvertError
	require.ErrorAs(t, err, &convertErr)
	assert.Equal(t, ShapeOne, convertErr.Shape)
}

func TestMaybe(t *testing.T) {
	u, err := Maybe[user](aliceRow(), nil)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, aliceID, u.ID)
}

func TestMaybeEmptyResult(t *testing.T) {
	u, err := Maybe[user](nil, nil)
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = Maybe[user]([]map[string]interface{}{}, nil)
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = Maybe[user](nil, gorm.ErrRecordNotFound)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestSlice(t *testing.T) {
	bobRow := map[string]interface{}{
		"id":    uuid.New().String(),
		"email": "bob@example.com",
		"token": "tok-bob",
	}

	users, err := Slice[user]([]map[string]interface{}{aliceRow(), bobRow}, nil)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice@example.com", users[0].Email)
	assert.Equal(t, "bob@example.com", users[1].Email)
}

func TestSliceEmptyResultIsEmptySlice(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		err  error
	}{
		{name: "nil result", raw: nil},
		{name: "empty row set", raw: []map[string]interface{}{}},
		{name: "no rows error", raw: nil, err: sql.ErrNoRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := Slice[user](tt.raw, tt.err)
			require.NoError(t, err)
			require.NotNil(t, users)
			assert.Empty(t, users)
		})
	}
}

func TestSliceTypedResult(t *testing.T) {
	in := []user{{ID: aliceID, Email: "alice@example.com"}}

	users, err := Slice[user](in, nil)
	require.NoError(t, err)
	assert.Equal(t, in, users)
}

func TestSliceRejectsNonSlice(t *testing.T) {
	_, err := Slice[user](aliceRow(), nil)
	require.Error(t, err)

	var convertErr *ConvertError
	require.ErrorAs(t, err, &convertErr)
	assert.Equal(t, ShapeSlice, convertErr.Shape)
}

func TestMaybeSlice(t *testing.T) {
	users, err := MaybeSlice[user](nil, nil)
	require.NoError(t, err)
	assert.Nil(t, users)

	users, err = MaybeSlice[user]([]map[string]interface{}{aliceRow()}, nil)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, aliceID, users[0].ID)
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard("ignored", nil))

	plain := errors.New("boom")
	assert.Equal(t, plain, Discard(nil, plain))
}

func TestCollectorsTranslateDriverErrors(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "users_email_key"}

	_, err := One[user](nil, dup)
	assert.ErrorIs(t, err, sqlerr.ErrUniqueViolation)

	_, err = Maybe[user](nil, dup)
	assert.ErrorIs(t, err, sqlerr.ErrUniqueViolation)

	_, err = Slice[user](nil, dup)
	assert.ErrorIs(t, err, sqlerr.ErrUniqueViolation)

	assert.ErrorIs(t, Discard(nil, dup), sqlerr.ErrUniqueViolation)
}

func TestDecodeNormalizedTemporalFields(t *testing.T) {
	type event struct {
		Name string         `json:"name"`
		At   time.Time      `json:"at"`
		Day  modelbase.Date `json:"day"`
	}

	e, err := One[event](map[string]interface{}{
		"name": "deploy",
		"at":   "2024-05-01 10:30:00",
		"day":  "2024-05-01",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), e.At)
	assert.Equal(t, "2024-05-01", e.Day.String())
}

func TestShapeStrings(t *testing.T) {
	assert.Equal(t, "one", ShapeOne.String())
	assert.Equal(t, "maybeslice", ShapeMaybeSlice.String())

	s, err := ShapeString("slice")
	require.NoError(t, err)
	assert.Equal(t, ShapeSlice, s)

	assert.True(t, ShapeNone.IsAShape())
	assert.False(t, Shape(99).IsAShape())
}
