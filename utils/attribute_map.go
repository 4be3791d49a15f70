package utils

import (
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// AttributeMap is a free-form set of named options, usually straight out of a JSON config.
type AttributeMap map[string]interface{}

// Has reports whether the named attribute is present.
func (am AttributeMap) Has(name string) bool {
	_, has := am[name]
	return has
}

// Float64 returns the named attribute as a float64, or def if it is absent or not numeric.
func (am AttributeMap) Float64(name string, def float64) float64 {
	v, err := am.TryFloat64(name)
	if err != nil {
		return def
	}
	return v
}

// TryFloat64 returns the named attribute as a float64. Ints, json.Numbers and numeric strings
// are accepted, the same conversions TransformAttributeMap makes.
func (am AttributeMap) TryFloat64(name string) (float64, error) {
	x, has := am[name]
	if !has {
		return 0, errors.Errorf("attribute %q not found", name)
	}
	switch v := x.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, errors.Wrapf(err, "attribute %q", name)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "attribute %q", name)
		}
		return f, nil
	default:
		return 0, NewAttributeTypeError[float64](name, x)
	}
}

// TransformAttributeMap uses an attribute map to transform attributes to the prescribed format.
// Fields are matched on their json tags and scalar types are converted where possible.
func TransformAttributeMap[T any](attributes AttributeMap) (T, error) {
	var out T

	var forResult interface{}

	toT := reflect.TypeOf(out)
	if toT == nil {
		// nothing to transform
		return out, nil
	}
	if toT.Kind() == reflect.Ptr {
		// needs to be allocated then
		var ok bool
		out, ok = reflect.New(toT.Elem()).Interface().(T)
		if !ok {
			return out, errors.Errorf("failed to allocate default config type %T", out)
		}
		forResult = out
	} else {
		forResult = &out
	}
	if len(attributes) == 0 {
		return out, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           forResult,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, err
	}
	if err := decoder.Decode(map[string]interface{}(attributes)); err != nil {
		return out, err
	}
	return out, nil
}
