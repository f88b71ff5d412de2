package modelbase

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Map is a projected field mapping produced by ToMap.
type Map map[string]interface{}

// FieldError reports an operation against a field the schema does not
// have.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("modelbase: no such field %q", e.Field)
}

// Delete removes a field from the map. It returns a *FieldError when
// the field is absent.
func (m Map) Delete(field string) error {
	if _, ok := m[field]; !ok {
		return &FieldError{Field: field}
	}
	delete(m, field)
	return nil
}

// ProjectOption configures a ToMap projection.
type ProjectOption func(*projector)

// WithSecrets reveals secret fields instead of masking them.
func WithSecrets() ProjectOption {
	return func(p *projector) { p.showSecrets = true }
}

// WithValues projects the supplied field mapping instead of the
// model's own fields. Values still go through the normal value
// normalization.
func WithValues(values map[string]interface{}) ProjectOption {
	return func(p *projector) { p.values = values }
}

// ToMap converts a model into a plain field mapping. Exported struct
// fields are keyed by their json tag name (falling back to the field
// name); nested structs, maps and slices are walked recursively.
// Secret fields mask unless WithSecrets is given; timestamps, dates,
// clocks, UUIDs and decimals normalize to strings. The model itself is
// never mutated.
func ToMap(model interface{}, opts ...ProjectOption) Map {
	p := &projector{}
	for _, opt := range opts {
		opt(p)
	}

	if p.values != nil {
		out := make(Map, len(p.values))
		for k, v := range p.values {
			out[k] = p.cast(v)
		}
		return out
	}

	return p.project(reflect.ValueOf(model))
}

type projector struct {
	showSecrets bool
	values      map[string]interface{}
}

func (p *projector) project(rv reflect.Value) Map {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Map{}
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		out := make(Map, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = p.cast(iter.Value().Interface())
		}
		return out
	case reflect.Struct:
		out := Map{}
		p.projectFields(rv, out)
		return out
	default:
		return Map{}
	}
}

func (p *projector) projectFields(rv reflect.Value, out Map) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		name, ok := fieldName(field)
		if !ok {
			continue
		}

		value := rv.Field(i)

		// Anonymous struct embeds flatten into the parent, matching
		// encoding/json. Known leaf types like Date keep their field.
		if field.Anonymous && field.Type.Kind() == reflect.Struct &&
			field.Tag.Get("json") == "" && !isLeaf(value.Interface()) {
			p.projectFields(value, out)
			continue
		}

		out[name] = p.cast(value.Interface())
	}
}

// fieldName resolves the projected key for a struct field. A json tag
// of "-" drops the field.
func fieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name, true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", false
	}
	if name == "" {
		return field.Name, true
	}
	return name, true
}

func isLeaf(v interface{}) bool {
	switch v.(type) {
	case SecretString, SecretBytes, Date, Clock, time.Time, uuid.UUID, decimal.Decimal:
		return true
	}
	return false
}

func (p *projector) cast(v interface{}) interface{} {
	switch x := v.(type) {
	case nil:
		return nil
	case SecretString:
		if p.showSecrets {
			return x.Reveal()
		}
		return x.String()
	case SecretBytes:
		if p.showSecrets {
			return string(x.Reveal())
		}
		return x.String()
	case Date:
		return x.String()
	case Clock:
		return x.String()
	case time.Time:
		return x.Format(TimestampLayout)
	case uuid.UUID:
		return x.String()
	case decimal.Decimal:
		return x.String()
	case []byte:
		return x
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return p.cast(rv.Elem().Interface())
	case reflect.Struct, reflect.Map:
		return p.project(rv)
	case reflect.Slice, reflect.Array:
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = p.cast(rv.Index(i).Interface())
		}
		return out
	}

	return v
}
