// Package scrub rewrites every reachable string inside a decoded value into
// valid UTF-8, in place. It is the container level application of the textly
// conversion: struct pointers are walked field by field, maps and slices
// element by element, anything else is left untouched.
package scrub

import (
	"reflect"
)

// Any normalizes the supplied value in place. Struct pointers, maps and
// slices are descended; a value with nothing addressable to rewrite is a
// no-op.
func Any(v interface{}, opts ...Option) error {
	if v == nil {
		return nil
	}
	return scrubAny(v, newOptions(opts))
}

// Strings normalizes each element in place.
func Strings(items []string, opts ...Option) {
	scrubStrings(items, newOptions(opts))
}

// StringMap normalizes each key and value in place.
func StringMap(aMap map[string]string, opts ...Option) {
	scrubStringMap(aMap, newOptions(opts))
}

func scrubAny(v interface{}, o *options) error {
	switch actual := v.(type) {
	case []string:
		scrubStrings(actual, o)
		return nil
	case map[string]string:
		scrubStringMap(actual, o)
		return nil
	case map[string]interface{}:
		return scrubAnyMap(actual, o)
	case []interface{}:
		return scrubSlice(actual, o)
	case *string:
		if actual != nil {
			*actual = o.text(*actual, nil)
		}
		return nil
	case *interface{}:
		if actual == nil {
			return nil
		}
		normalized, err := normalizeValue(*actual, o)
		if err != nil {
			return err
		}
		*actual = normalized
		return nil
	}
	rType := reflect.TypeOf(v)
	if rType.Kind() == reflect.Ptr && rType.Elem().Kind() == reflect.Struct {
		return scrubStruct(v, o)
	}
	return nil
}

// normalizeValue returns the normalized counterpart of an interface element,
// rewriting containers in place and replacing string values.
func normalizeValue(v interface{}, o *options) (interface{}, error) {
	switch actual := v.(type) {
	case nil:
		return nil, nil
	case string:
		return o.text(actual, nil), nil
	case []interface{}:
		return actual, scrubSlice(actual, o)
	case map[string]interface{}:
		return actual, scrubAnyMap(actual, o)
	case []string:
		scrubStrings(actual, o)
		return actual, nil
	case map[string]string:
		scrubStringMap(actual, o)
		return actual, nil
	}
	rType := reflect.TypeOf(v)
	if rType.Kind() == reflect.Ptr && rType.Elem().Kind() == reflect.Struct {
		return v, scrubStruct(v, o)
	}
	return v, nil
}

func scrubStrings(items []string, o *options) {
	for i, item := range items {
		items[i] = o.text(item, nil)
	}
}

func scrubStringMap(aMap map[string]string, o *options) {
	for key, value := range aMap {
		clean := o.text(key, nil)
		if clean != key {
			delete(aMap, key)
		}
		aMap[clean] = o.text(value, nil)
	}
}

func scrubAnyMap(aMap map[string]interface{}, o *options) error {
	for key, value := range aMap {
		normalized, err := normalizeValue(value, o)
		if err != nil {
			return err
		}
		clean := o.text(key, nil)
		if clean != key {
			delete(aMap, key)
		}
		aMap[clean] = normalized
	}
	return nil
}

func scrubSlice(items []interface{}, o *options) error {
	for i, item := range items {
		normalized, err := normalizeValue(item, o)
		if err != nil {
			return err
		}
		items[i] = normalized
	}
	return nil
}
