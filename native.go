package textly

import (
	"bytes"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CString represents a NUL terminated platform byte string, typically a
// buffer copied back from a syscall or a C API. Content past the first NUL
// is ignored; a buffer with no NUL is all content.
type CString []byte

// Bytes returns the content without the terminating NUL.
func (c CString) Bytes() []byte {
	if index := bytes.IndexByte(c, 0); index != -1 {
		return c[:index]
	}
	return c
}

// String converts the content into an owned string. Valid content is copied
// as is; content with any invalid encoding converts to one replacement
// character per content byte.
func (c CString) String() string {
	content := c.Bytes()
	if utf8.Valid(content) {
		return string(content)
	}
	return blank(len(content), Replacement)
}

// WideString represents a platform wide string, a sequence of UTF-16 code
// units without byte order concerns.
type WideString []uint16

// String decodes the code units into an owned string, substituting each
// unpaired surrogate with the replacement character.
func (w WideString) String() string {
	return string(utf16.Decode(w))
}

// Valid reports whether the code units decode without substitution.
func (w WideString) Valid() bool {
	for i := 0; i < len(w); i++ {
		unit := rune(w[i])
		if !utf16.IsSurrogate(unit) {
			continue
		}
		if unit >= 0xDC00 || i+1 >= len(w) {
			return false
		}
		next := rune(w[i+1])
		if next < 0xDC00 || next > 0xDFFF {
			return false
		}
		i++
	}
	return true
}

var wideEncoding = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)

// DecodeUTF16 decodes a UTF-16 byte stream into an owned string. A byte
// order mark is honored and removed, little endian is assumed otherwise.
// Invalid units, including an odd trailing byte, are substituted with the
// replacement character.
func DecodeUTF16(data []byte) string {
	decoded, _, err := transform.Bytes(wideEncoding.NewDecoder(), data)
	if err != nil {
		return Sanitize(string(decoded))
	}
	return string(decoded)
}

func (c *Converter) fromCString(data CString) string {
	content := data.Bytes()
	if utf8.Valid(content) {
		return c.canonical(string(content))
	}
	return c.canonical(blank(len(content), c.options.Replacement))
}

func (c *Converter) fromWide(units []uint16) string {
	if WideString(units).Valid() {
		return c.canonical(string(utf16.Decode(units)))
	}
	if c.options.Invalid == BlankBuffer {
		return c.canonical(blank(len(units), c.options.Replacement))
	}
	builder := strings.Builder{}
	builder.Grow(len(units))
	for i := 0; i < len(units); i++ {
		unit := rune(units[i])
		if !utf16.IsSurrogate(unit) {
			builder.WriteRune(unit)
			continue
		}
		if unit < 0xDC00 && i+1 < len(units) {
			next := rune(units[i+1])
			if next >= 0xDC00 && next <= 0xDFFF {
				builder.WriteRune(utf16.DecodeRune(unit, next))
				i++
				continue
			}
		}
		builder.WriteRune(c.options.Replacement)
	}
	return c.canonical(builder.String())
}
