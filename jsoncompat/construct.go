package jsoncompat

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Into returns a Constructor that maps fields onto a new T using its json
// struct tags. Embedded structs are flattened, and already-promoted domain
// objects are assigned as-is. A number that does not fit an integer field
// exactly is an error.
func Into[T any]() Constructor {
	return func(fields map[string]any) (any, error) {
		out := new(T)
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook: exactIntegerHook,
			TagName:    "json",
			Squash:     true,
			Result:     out,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(fields); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// exactIntegerHook rejects floats headed for integer fields when they have
// a fractional part or fall outside the field's range.
func exactIntegerHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	var lo, hi float64
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		lo, hi = -math.Ldexp(1, to.Bits()-1), math.Ldexp(1, to.Bits()-1)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		lo, hi = 0, math.Ldexp(1, to.Bits())
	default:
		return data, nil
	}
	if math.Trunc(f) != f {
		return nil, fmt.Errorf("%v is not an integer", f)
	}
	if f < lo || f >= hi {
		return nil, fmt.Errorf("%v overflows %s", f, to)
	}
	return data, nil
}
