package modelbase

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Mask is the placeholder emitted for secret values in textual output.
const Mask = "**********"

// SecretString is a string that masks itself in every textual
// representation. The underlying value is only accessible through
// Reveal, or through ToMap with the WithSecrets option.
type SecretString string

// Reveal returns the underlying secret value.
func (s SecretString) Reveal() string {
	return string(s)
}

// String returns the mask placeholder, or the empty string for an
// empty secret.
func (s SecretString) String() string {
	if s == "" {
		return ""
	}
	return Mask
}

// MarshalJSON emits the masked form.
func (s SecretString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON reads the raw value into the secret.
func (s *SecretString) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = SecretString(raw)
	return nil
}

// MarshalYAML emits the masked form.
func (s SecretString) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner so models can load secrets from database
// columns.
func (s *SecretString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = ""
	case string:
		*s = SecretString(v)
	case []byte:
		*s = SecretString(v)
	default:
		return fmt.Errorf("modelbase: cannot scan %T into SecretString", src)
	}
	return nil
}

// Value implements driver.Valuer. The revealed value is written to the
// database; masking is a presentation concern only.
func (s SecretString) Value() (driver.Value, error) {
	return string(s), nil
}

// SecretBytes is a byte slice that masks itself in every textual
// representation.
type SecretBytes []byte

// Reveal returns the underlying secret value.
func (s SecretBytes) Reveal() []byte {
	return []byte(s)
}

// String returns the mask placeholder, or the empty string for an
// empty secret.
func (s SecretBytes) String() string {
	if len(s) == 0 {
		return ""
	}
	return Mask
}

// MarshalJSON emits the masked form.
func (s SecretBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON reads the raw value into the secret.
func (s *SecretBytes) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = SecretBytes(raw)
	return nil
}

// MarshalYAML emits the masked form.
func (s SecretBytes) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// Scan implements sql.Scanner.
func (s *SecretBytes) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = nil
	case []byte:
		buf := make([]byte, len(v))
		copy(buf, v)
		*s = buf
	case string:
		*s = SecretBytes(v)
	default:
		return fmt.Errorf("modelbase: cannot scan %T into SecretBytes", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (s SecretBytes) Value() (driver.Value, error) {
	return []byte(s), nil
}
