package textly

import "fmt"

var defaultConverter = NewConverter(DefaultOptions())

// Default returns the converter backing the package level API.
func Default() *Converter {
	return defaultConverter
}

// String converts a string like value into an owned valid UTF-8 string
// using the default converter. It never fails: invalid encoding is
// substituted, inputs outside the string like set are formatted, and an
// input the converter reports an error for, such as a failing text
// marshaler, is formatted as well.
func String(v interface{}) string {
	result, err := defaultConverter.String(v)
	if err != nil {
		return Sanitize(fmt.Sprint(v))
	}
	return result
}

// Valid reports whether v converts without substitution.
func Valid(v interface{}) bool {
	return defaultConverter.Valid(v)
}
