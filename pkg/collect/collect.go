package collect

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/modelbase-go/modelbase/pkg/modelbase"
	"github.com/modelbase-go/modelbase/pkg/sqlerr"
)

// ErrEmptyResult is returned when a required result is absent.
var ErrEmptyResult = errors.New("collect: empty result")

// ConvertError reports raw data that could not be coerced to the
// target model schema.
type ConvertError struct {
	Shape Shape
	Type  string
	Err   error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("collect: cannot convert result to %s of %s: %v", e.Shape, e.Type, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// One collects a required single model. An empty result yields
// ErrEmptyResult.
func One[T any](raw interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		if translated := sqlerr.Translate(err); !errors.Is(translated, sqlerr.ErrNoRows) {
			return zero, translated
		}
		return zero, ErrEmptyResult
	}
	if isEmpty(raw) {
		return zero, ErrEmptyResult
	}
	return decodeOne[T](ShapeOne, raw)
}

// Maybe collects an optional single model. An empty result yields
// (nil, nil).
func Maybe[T any](raw interface{}, err error) (*T, error) {
	if err != nil {
		if translated := sqlerr.Translate(err); !errors.Is(translated, sqlerr.ErrNoRows) {
			return nil, translated
		}
		return nil, nil
	}
	if isEmpty(raw) {
		return nil, nil
	}
	out, err := decodeOne[T](ShapeMaybe, raw)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Slice collects a list of models. An empty result yields an empty
// slice, never an error.
func Slice[T any](raw interface{}, err error) ([]T, error) {
	if err != nil {
		if translated := sqlerr.Translate(err); !errors.Is(translated, sqlerr.ErrNoRows) {
			return nil, translated
		}
		return []T{}, nil
	}
	if isEmpty(raw) {
		return []T{}, nil
	}
	return decodeMany[T](ShapeSlice, raw)
}

// MaybeSlice collects an optional list of models. An empty result
// yields (nil, nil).
func MaybeSlice[T any](raw interface{}, err error) ([]T, error) {
	if err != nil {
		if translated := sqlerr.Translate(err); !errors.Is(translated, sqlerr.ErrNoRows) {
			return nil, translated
		}
		return nil, nil
	}
	if isEmpty(raw) {
		return nil, nil
	}
	return decodeMany[T](ShapeMaybeSlice, raw)
}

// Discard drops the raw result and propagates only the translated
// error. It is the collector for calls with no declared result.
func Discard(raw interface{}, err error) error {
	_ = raw
	return sqlerr.Translate(err)
}

func decodeOne[T any](shape Shape, raw interface{}) (T, error) {
	var zero T
	rec := firstRecord(raw)

	// Fast path for results that already carry the target type.
	if v, ok := rec.(T); ok {
		if err := modelbase.Validate(v); err != nil {
			return zero, &ConvertError{Shape: shape, Type: typeName(zero), Err: err}
		}
		return v, nil
	}
	if v, ok := rec.(*T); ok && v != nil {
		if err := modelbase.Validate(v); err != nil {
			return zero, &ConvertError{Shape: shape, Type: typeName(zero), Err: err}
		}
		return *v, nil
	}

	out, err := modelbase.Decode[T](rec)
	if err != nil {
		return zero, &ConvertError{Shape: shape, Type: typeName(zero), Err: err}
	}
	return out, nil
}

func decodeMany[T any](shape Shape, raw interface{}) ([]T, error) {
	var zero T

	if vs, ok := raw.([]T); ok {
		for i := range vs {
			if err := modelbase.Validate(vs[i]); err != nil {
				return nil, &ConvertError{Shape: shape, Type: typeName(zero), Err: err}
			}
		}
		return vs, nil
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, &ConvertError{
			Shape: shape,
			Type:  typeName(zero),
			Err:   fmt.Errorf("expected a slice of records, got %T", raw),
		}
	}

	out := make([]T, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, err := modelbase.Decode[T](rv.Index(i).Interface())
		if err != nil {
			return nil, &ConvertError{Shape: shape, Type: typeName(zero), Err: err}
		}
		out = append(out, item)
	}
	return out, nil
}

// firstRecord unwraps single-model results that arrive as a row set,
// e.g. a LIMIT 1 query scanned into a slice of maps.
func firstRecord(raw interface{}) interface{} {
	if _, ok := raw.([]byte); ok {
		return raw
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() == reflect.Slice && rv.Len() > 0 {
		return rv.Index(0).Interface()
	}
	return raw
}

func isEmpty(raw interface{}) bool {
	if raw == nil {
		return true
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isEmpty(rv.Elem().Interface())
	}
	return false
}

func typeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}
