package modelbase

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// validate is shared across all decodes. Struct validation rules come
// from `validate` tags, following go-playground conventions.
var validate = validator.New()

// Decode converts an arbitrarily shaped source (a field map, a row, or
// another struct) into a value of the target model type, then runs
// struct validation against it. Field names resolve through json tags,
// matching ToMap's projection keys.
func Decode[T any](src interface{}) (T, error) {
	var out T

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &out,
		WeaklyTypedInput: true,
		Squash:           true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return out, err
	}

	if err := dec.Decode(src); err != nil {
		return out, fmt.Errorf("modelbase: decode into %T: %w", out, err)
	}

	if err := Validate(&out); err != nil {
		return out, err
	}
	return out, nil
}

// Validate runs schema validation over a model value. Non-struct
// values always pass.
func Validate(model interface{}) error {
	rv := reflect.ValueOf(model)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	if err := validate.Struct(rv.Interface()); err != nil {
		return fmt.Errorf("modelbase: validate %s: %w", rv.Type(), err)
	}
	return nil
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		uuidHook,
		decimalHook,
		timestampHook,
		dateHook,
		clockHook,
		secretHook,
	)
}

var (
	uuidType         = reflect.TypeOf(uuid.UUID{})
	decimalType      = reflect.TypeOf(decimal.Decimal{})
	timeType         = reflect.TypeOf(time.Time{})
	dateType         = reflect.TypeOf(Date{})
	clockType        = reflect.TypeOf(Clock{})
	secretStringType = reflect.TypeOf(SecretString(""))
	secretBytesType  = reflect.TypeOf(SecretBytes(nil))
)

func uuidHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != uuidType || from == uuidType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return uuid.Parse(v)
	case []byte:
		return uuid.ParseBytes(v)
	}
	return data, nil
}

func decimalHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != decimalType || from == decimalType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return decimal.NewFromString(v)
	case []byte:
		return decimal.NewFromString(string(v))
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	}
	return data, nil
}

// timestampHook accepts the normalized "YYYY-MM-DD HH:MM:SS" form that
// ToMap emits, plus RFC 3339 for values arriving off the wire.
func timestampHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != timeType {
		return data, nil
	}
	raw, ok := stringData(data)
	if !ok {
		return data, nil
	}
	for _, layout := range []string{TimestampLayout, time.RFC3339, DateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("modelbase: invalid timestamp %q", raw)
}

func dateHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != dateType {
		return data, nil
	}
	if t, ok := data.(time.Time); ok {
		return DateOf(t), nil
	}
	raw, ok := stringData(data)
	if !ok {
		return data, nil
	}
	return ParseDate(raw)
}

func clockHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != clockType {
		return data, nil
	}
	if t, ok := data.(time.Time); ok {
		return ClockOf(t), nil
	}
	raw, ok := stringData(data)
	if !ok {
		return data, nil
	}
	return ParseClock(raw)
}

func secretHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	switch to {
	case secretStringType:
		if raw, ok := stringData(data); ok {
			return SecretString(raw), nil
		}
	case secretBytesType:
		if raw, ok := stringData(data); ok {
			return SecretBytes(raw), nil
		}
	}
	return data, nil
}

func stringData(data interface{}) (string, bool) {
	switch v := data.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case SecretString:
		return v.Reveal(), true
	case SecretBytes:
		return string(v.Reveal()), true
	}
	return "", false
}
