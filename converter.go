package textly

import (
	"bytes"
	"encoding"
	"fmt"
	"golang.org/x/text/unicode/norm"
	"reflect"
	"strings"
	"sync"
)

// InvalidPolicy controls invalid encoding substitution.
type InvalidPolicy int

const (
	//ReplaceSequence substitutes each invalid encoding step
	ReplaceSequence InvalidPolicy = iota
	//BlankBuffer substitutes the whole buffer, one character per input byte
	BlankBuffer
)

// FallbackPolicy controls inputs outside the string like set.
type FallbackPolicy int

const (
	//FormatFallback formats the value with fmt.Sprint, then sanitizes
	FormatFallback FallbackPolicy = iota
	//ErrorFallback reports unsupported inputs as an error
	ErrorFallback
)

// Options contains configuration for the converter
type Options struct {
	// Replacement substitutes content that cannot be represented
	Replacement rune
	// Invalid selects the substitution policy
	Invalid InvalidPolicy
	// Fallback controls inputs outside the string like set
	Fallback FallbackPolicy
	// Canonical enables Unicode normalization of results
	Canonical bool
	// Form is the normalization form applied when Canonical is set
	Form norm.Form
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		Replacement: Replacement,
		Invalid:     ReplaceSequence,
		Fallback:    FormatFallback,
		Form:        norm.NFC,
	}
}

// Func defines a custom conversion function
type Func func(v interface{}) (string, error)

// Converter normalizes string like values into owned valid UTF-8 strings
type Converter struct {
	options Options
	custom  sync.Map // map[reflect.Type]Func
	derived sync.Map // map[reflect.Type]Func
}

// NewConverter creates a new converter with the provided options
func NewConverter(options Options) *Converter {
	if options.Replacement == 0 {
		options.Replacement = Replacement
	}
	return &Converter{options: options}
}

// Options returns converter options
func (c *Converter) Options() Options {
	return c.options
}

// Register registers a custom conversion for the supplied input type
func (c *Converter) Register(rType reflect.Type, fn Func) {
	c.custom.Store(rType, fn)
}

// String converts a string like value into an owned valid UTF-8 string.
// Invalid encoding is substituted, never reported; an error indicates an
// unsupported input or a failing text marshaler.
func (c *Converter) String(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	if fn, ok := c.custom.Load(reflect.TypeOf(v)); ok {
		return fn.(Func)(v)
	}
	// a typed nil pointer converts to "" even when its type satisfies one of
	// the interface arms below, which would otherwise call a nil receiver
	if value := reflect.ValueOf(v); value.Kind() == reflect.Ptr && value.IsNil() {
		return "", nil
	}
	switch actual := v.(type) {
	case string:
		return c.fromString(actual), nil
	case *string:
		if actual == nil {
			return "", nil
		}
		return c.fromString(*actual), nil
	case []byte:
		return c.fromBytes(actual), nil
	case CString:
		return c.fromCString(actual), nil
	case *CString:
		if actual == nil {
			return "", nil
		}
		return c.fromCString(*actual), nil
	case WideString:
		return c.fromWide(actual), nil
	case []uint16:
		return c.fromWide(actual), nil
	case []rune:
		return c.fromRunes(actual), nil
	case rune:
		return c.fromRune(actual), nil
	case *strings.Builder:
		if actual == nil {
			return "", nil
		}
		return c.fromString(actual.String()), nil
	case *bytes.Buffer:
		if actual == nil {
			return "", nil
		}
		return c.fromBytes(actual.Bytes()), nil
	case encoding.TextMarshaler:
		text, err := actual.MarshalText()
		if err != nil {
			return "", err
		}
		return c.fromBytes(text), nil
	case error:
		return c.fromString(actual.Error()), nil
	case fmt.Stringer:
		return c.fromString(actual.String()), nil
	}
	return c.reflectString(v)
}

// reflectString dispatches named and pointer wrapped types, caching the
// derived conversion per input type.
func (c *Converter) reflectString(v interface{}) (string, error) {
	rType := reflect.TypeOf(v)
	if cached, ok := c.derived.Load(rType); ok {
		return cached.(Func)(v)
	}
	fn := c.derive(rType)
	c.derived.Store(rType, fn)
	return fn(v)
}

func (c *Converter) derive(rType reflect.Type) Func {
	switch rType.Kind() {
	case reflect.Ptr:
		return func(v interface{}) (string, error) {
			value := reflect.ValueOf(v)
			if value.IsNil() {
				return "", nil
			}
			return c.String(value.Elem().Interface())
		}
	case reflect.String:
		return func(v interface{}) (string, error) {
			return c.fromString(reflect.ValueOf(v).String()), nil
		}
	case reflect.Slice:
		switch rType.Elem().Kind() {
		case reflect.Uint8:
			if rType.Elem() == byteType {
				return func(v interface{}) (string, error) {
					return c.fromBytes(reflect.ValueOf(v).Bytes()), nil
				}
			}
			return func(v interface{}) (string, error) {
				value := reflect.ValueOf(v)
				data := make([]byte, value.Len())
				for i := 0; i < len(data); i++ {
					data[i] = byte(value.Index(i).Uint())
				}
				return c.fromBytes(data), nil
			}
		case reflect.Uint16:
			return func(v interface{}) (string, error) {
				value := reflect.ValueOf(v)
				wide := make(WideString, value.Len())
				for i := 0; i < len(wide); i++ {
					wide[i] = uint16(value.Index(i).Uint())
				}
				return c.fromWide(wide), nil
			}
		case reflect.Int32:
			return func(v interface{}) (string, error) {
				value := reflect.ValueOf(v)
				runes := make([]rune, value.Len())
				for i := 0; i < len(runes); i++ {
					runes[i] = rune(value.Index(i).Int())
				}
				return c.fromRunes(runes), nil
			}
		}
	}
	if c.options.Fallback == ErrorFallback {
		return func(v interface{}) (string, error) {
			return "", fmt.Errorf("unsupported conversion: %T to string", v)
		}
	}
	return func(v interface{}) (string, error) {
		return c.fromString(fmt.Sprint(v)), nil
	}
}

var byteType = reflect.TypeOf(byte(0))

func indirect(value reflect.Value) reflect.Value {
	for (value.Kind() == reflect.Ptr || value.Kind() == reflect.Interface) && !value.IsNil() {
		value = value.Elem()
	}
	return value
}
