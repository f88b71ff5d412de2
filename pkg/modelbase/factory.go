package modelbase

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Factory builds schema-conformant instances populated with randomly
// generated, type-appropriate values. Intended for test fixtures.
type Factory[T any] struct {
	rng *rand.Rand
}

// NewFactory returns a factory for the given model type.
func NewFactory[T any]() *Factory[T] {
	return &Factory[T]{rng: newRand(nil)}
}

// Seed makes the factory deterministic. Two factories with the same
// seed produce identical sequences of instances.
func (f *Factory[T]) Seed(seed uint64) *Factory[T] {
	f.rng = rand.New(rand.NewPCG(seed, seed))
	return f
}

// Build produces a random instance. Overrides replace the generated
// value for the named fields (keys follow the projection names, i.e.
// json tags).
func (f *Factory[T]) Build(overrides map[string]interface{}) (T, error) {
	var zero T
	fields := randomFields(reflect.TypeOf(zero), f.rng)
	for name, value := range overrides {
		fields[name] = value
	}
	return Decode[T](fields)
}

func newRand(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, *seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// randomFields generates a projection-shaped field map with random
// values for every field of the struct type.
func randomFields(rt reflect.Type, rng *rand.Rand) map[string]interface{} {
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	out := map[string]interface{}{}
	if rt == nil || rt.Kind() != reflect.Struct {
		return out
	}

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name, ok := fieldName(field)
		if !ok {
			continue
		}

		if field.Anonymous && field.Type.Kind() == reflect.Struct &&
			field.Tag.Get("json") == "" && !isLeafType(field.Type) {
			for k, v := range randomFields(field.Type, rng) {
				out[k] = v
			}
			continue
		}

		if value, ok := randomValue(field.Type, field.Tag.Get("validate"), rng); ok {
			out[name] = value
		}
	}
	return out
}

func isLeafType(rt reflect.Type) bool {
	switch rt {
	case uuidType, decimalType, timeType, dateType, clockType, secretStringType, secretBytesType:
		return true
	}
	return false
}

func randomValue(rt reflect.Type, hint string, rng *rand.Rand) (interface{}, bool) {
	switch rt {
	case uuidType:
		return randomUUID(rng), true
	case decimalType:
		return decimal.New(rng.Int64N(1_000_000), -2), true
	case timeType:
		return randomTimestamp(rng), true
	case dateType:
		return DateOf(randomTimestamp(rng)), true
	case clockType:
		return ClockOf(randomTimestamp(rng)), true
	case secretStringType:
		return SecretString(randomString(rng, 16)), true
	case secretBytesType:
		return SecretBytes(randomString(rng, 16)), true
	}

	switch rt.Kind() {
	case reflect.Pointer:
		return randomValue(rt.Elem(), hint, rng)
	case reflect.String:
		return randomString(rng, 12, hint), true
	case reflect.Bool:
		return rng.IntN(2) == 1, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rng.Int64N(10_000), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rng.Uint64N(10_000), true
	case reflect.Float32, reflect.Float64:
		return float64(rng.Int64N(1_000_000)) / 100, true
	case reflect.Struct:
		return randomFields(rt, rng), true
	case reflect.Slice:
		if rt.Elem().Kind() == reflect.Uint8 {
			return []byte(randomString(rng, 16)), true
		}
		n := 1 + rng.IntN(2)
		out := make([]interface{}, 0, n)
		for i := 0; i < n; i++ {
			v, ok := randomValue(rt.Elem(), "", rng)
			if !ok {
				return nil, false
			}
			out = append(out, v)
		}
		return out, true
	case reflect.Map:
		if rt.Key().Kind() != reflect.String {
			return nil, false
		}
		v, ok := randomValue(rt.Elem(), "", rng)
		if !ok {
			return nil, false
		}
		return map[string]interface{}{randomString(rng, 6): v}, true
	}

	return nil, false
}

// randomTimestamp picks a second-precision instant in a fixed window
// so seeded factories stay reproducible.
func randomTimestamp(rng *rand.Rand) time.Time {
	const epoch = 1_600_000_000
	return time.Unix(epoch+rng.Int64N(200_000_000), 0).UTC()
}

func randomUUID(rng *rand.Rand) uuid.UUID {
	var raw [16]byte
	for i := range raw {
		raw[i] = byte(rng.UintN(256))
	}
	// Stamp version 4 / variant bits so the value reads as a normal
	// random UUID.
	raw[6] = (raw[6] & 0x0f) | 0x40
	raw[8] = (raw[8] & 0x3f) | 0x80
	return uuid.UUID(raw)
}

const randomAlphabet = "abcdefghijklmnopqrstuvwxyz"

func randomString(rng *rand.Rand, n int, hints ...string) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(randomAlphabet[rng.IntN(len(randomAlphabet))])
	}
	for _, hint := range hints {
		if strings.Contains(hint, "email") {
			return fmt.Sprintf("%s@example.com", b.String())
		}
		if strings.Contains(hint, "uuid") {
			return randomUUID(rng).String()
		}
	}
	return b.String()
}
