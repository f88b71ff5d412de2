package modelbase

import (
	"reflect"
)

// MigrateOption configures a Migrate call.
type MigrateOption func(*migration)

type migration struct {
	matchKeys   map[string]string
	extraFields map[string]interface{}
	randomFill  bool
	seed        *uint64
}

// MatchKeys relocates source values under new names. Keys are field
// names in the target model, values are field names in the source
// model.
func MatchKeys(keys map[string]string) MigrateOption {
	return func(m *migration) { m.matchKeys = keys }
}

// ExtraFields sets literal values on the target model, overriding
// anything carried over from the source.
func ExtraFields(fields map[string]interface{}) MigrateOption {
	return func(m *migration) { m.extraFields = fields }
}

// RandomFill synthesizes random values for target fields that have no
// corresponding source value, instead of failing validation.
func RandomFill() MigrateOption {
	return func(m *migration) { m.randomFill = true }
}

// RandomFillSeed is RandomFill with a deterministic source, for
// reproducible tests.
func RandomFillSeed(seed uint64) MigrateOption {
	return func(m *migration) {
		m.randomFill = true
		m.seed = &seed
	}
}

// Migrate produces a value of the target model type from an existing
// model's field values. The source is projected with secrets revealed,
// reshaped per the options, and validated against the target schema.
// Source fields the target schema does not have are dropped. The
// source model is never mutated.
func Migrate[T any](src interface{}, opts ...MigrateOption) (T, error) {
	var zero T
	m := &migration{}
	for _, opt := range opts {
		opt(m)
	}

	fields := ToMap(src, WithSecrets())

	for target, source := range m.matchKeys {
		value, ok := fields[source]
		if !ok {
			return zero, &FieldError{Field: source}
		}
		delete(fields, source)
		fields[target] = value
	}

	for field, value := range m.extraFields {
		fields[field] = value
	}

	if m.randomFill {
		rng := newRand(m.seed)
		for name, value := range randomFields(reflect.TypeOf(zero), rng) {
			if _, ok := fields[name]; !ok {
				fields[name] = value
			}
		}
	}

	return Decode[T](fields)
}
