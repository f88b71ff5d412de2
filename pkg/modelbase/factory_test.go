package modelbase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureUser struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email" validate:"required,email"`
	Password  SecretString    `json:"password" validate:"required"`
	Balance   decimal.Decimal `json:"balance"`
	BirthDate Date            `json:"birth_date"`
	Active    bool            `json:"active"`
	Age       int             `json:"age"`
	CreatedAt time.Time       `json:"created_at"`
	Nickname  *string         `json:"nickname"`
	Tags      []string        `json:"tags"`
}

func TestFactoryBuild(t *testing.T) {
	u, err := NewFactory[fixtureUser]().Build(nil)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Contains(t, u.Email, "@example.com")
	assert.NotEmpty(t, u.Password.Reveal())
	assert.False(t, u.CreatedAt.IsZero())
	assert.NotNil(t, u.Nickname)
	assert.NotEmpty(t, u.Tags)
}

func TestFactoryBuildPassesValidation(t *testing.T) {
	u, err := NewFactory[fixtureUser]().Build(nil)
	require.NoError(t, err)
	require.NoError(t, Validate(u))
}

func TestFactoryOverrides(t *testing.T) {
	id := uuid.MustParse("1b671a64-40d5-491e-99b0-da01ff1f3341")

	u, err := NewFactory[fixtureUser]().Build(map[string]interface{}{
		"id":    id,
		"email": "fixed@example.com",
		"age":   33,
	})
	require.NoError(t, err)

	assert.Equal(t, id, u.ID)
	assert.Equal(t, "fixed@example.com", u.Email)
	assert.Equal(t, 33, u.Age)
}

func TestFactorySeedIsDeterministic(t *testing.T) {
	first, err := NewFactory[fixtureUser]().Seed(42).Build(nil)
	require.NoError(t, err)
	second, err := NewFactory[fixtureUser]().Seed(42).Build(nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	third, err := NewFactory[fixtureUser]().Seed(43).Build(nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestFactoryNestedStructs(t *testing.T) {
	type address struct {
		City string `json:"city" validate:"required"`
	}
	type person struct {
		Name    string    `json:"name" validate:"required"`
		Home    address   `json:"home"`
		Offices []address `json:"offices"`
	}

	p, err := NewFactory[person]().Build(nil)
	require.NoError(t, err)

	assert.NotEmpty(t, p.Name)
	assert.NotEmpty(t, p.Home.City)
	require.NotEmpty(t, p.Offices)
	assert.NotEmpty(t, p.Offices[0].City)
}
