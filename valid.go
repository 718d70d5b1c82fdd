package textly

import (
	"bytes"
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// Valid reports whether conversion of v is lossless, i.e. String would
// return the input text without substituting any replacement character.
func (c *Converter) Valid(v interface{}) bool {
	if v == nil {
		return true
	}
	if value := reflect.ValueOf(v); value.Kind() == reflect.Ptr && value.IsNil() {
		return true
	}
	switch actual := v.(type) {
	case string:
		return utf8.ValidString(actual)
	case *string:
		return actual == nil || utf8.ValidString(*actual)
	case []byte:
		return utf8.Valid(actual)
	case CString:
		return utf8.Valid(actual.Bytes())
	case *CString:
		return actual == nil || utf8.Valid(actual.Bytes())
	case WideString:
		return actual.Valid()
	case []uint16:
		return WideString(actual).Valid()
	case []rune:
		for _, r := range actual {
			if !utf8.ValidRune(r) {
				return false
			}
		}
		return true
	case rune:
		return utf8.ValidRune(actual)
	case *strings.Builder:
		return actual == nil || utf8.ValidString(actual.String())
	case *bytes.Buffer:
		return actual == nil || utf8.Valid(actual.Bytes())
	case encoding.TextMarshaler:
		text, err := actual.MarshalText()
		return err == nil && utf8.Valid(text)
	case error:
		return utf8.ValidString(actual.Error())
	case fmt.Stringer:
		return utf8.ValidString(actual.String())
	}
	value := indirect(reflect.ValueOf(v))
	switch value.Kind() {
	case reflect.String:
		return utf8.ValidString(value.String())
	case reflect.Slice:
		switch value.Type().Elem().Kind() {
		case reflect.Uint8:
			data := make([]byte, value.Len())
			for i := 0; i < len(data); i++ {
				data[i] = byte(value.Index(i).Uint())
			}
			return utf8.Valid(data)
		case reflect.Uint16:
			wide := make(WideString, value.Len())
			for i := 0; i < len(wide); i++ {
				wide[i] = uint16(value.Index(i).Uint())
			}
			return wide.Valid()
		case reflect.Int32:
			for i := 0; i < value.Len(); i++ {
				if !utf8.ValidRune(rune(value.Index(i).Int())) {
					return false
				}
			}
			return true
		}
	}
	// inputs outside the string like set convert through formatting, which
	// may still carry invalid bytes worth substituting
	return utf8.ValidString(fmt.Sprint(v))
}
