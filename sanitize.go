package textly

import (
	"strings"
	"unicode/utf8"
)

// Replacement is the character substituted for content that cannot be
// represented as UTF-8.
const Replacement = utf8.RuneError

// Sanitize returns s with every invalid encoding step replaced by the
// replacement character. A valid string is returned unchanged, without
// reallocation.
func Sanitize(s string) string {
	return sanitizeString(s, Replacement)
}

// SanitizeBytes returns the text of b as an owned string, substituting every
// invalid encoding step. The result never aliases b.
func SanitizeBytes(b []byte) string {
	return sanitizeBytes(b, Replacement)
}

func sanitizeString(s string, replacement rune) string {
	if utf8.ValidString(s) {
		return s
	}
	builder := strings.Builder{}
	builder.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			builder.WriteRune(replacement)
			i++
			continue
		}
		builder.WriteRune(r)
		i += size
	}
	return builder.String()
}

func sanitizeBytes(b []byte, replacement rune) string {
	if utf8.Valid(b) {
		return string(b)
	}
	builder := strings.Builder{}
	builder.Grow(len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			builder.WriteRune(replacement)
			i++
			continue
		}
		builder.WriteRune(r)
		i += size
	}
	return builder.String()
}

// blank builds a string of one replacement character per input byte, the
// whole buffer substitution rule.
func blank(size int, replacement rune) string {
	if size == 0 {
		return ""
	}
	builder := strings.Builder{}
	builder.Grow(size * utf8.RuneLen(replacement))
	for i := 0; i < size; i++ {
		builder.WriteRune(replacement)
	}
	return builder.String()
}

func (c *Converter) fromString(s string) string {
	if !utf8.ValidString(s) {
		if c.options.Invalid == BlankBuffer {
			s = blank(len(s), c.options.Replacement)
		} else {
			s = sanitizeString(s, c.options.Replacement)
		}
	}
	return c.canonical(s)
}

func (c *Converter) fromBytes(b []byte) string {
	if utf8.Valid(b) {
		return c.canonical(string(b))
	}
	if c.options.Invalid == BlankBuffer {
		return c.canonical(blank(len(b), c.options.Replacement))
	}
	return c.canonical(sanitizeBytes(b, c.options.Replacement))
}

func (c *Converter) fromRunes(runes []rune) string {
	if c.options.Replacement == Replacement {
		return c.canonical(string(runes))
	}
	builder := strings.Builder{}
	builder.Grow(len(runes))
	for _, r := range runes {
		if !utf8.ValidRune(r) {
			builder.WriteRune(c.options.Replacement)
			continue
		}
		builder.WriteRune(r)
	}
	return c.canonical(builder.String())
}

func (c *Converter) fromRune(r rune) string {
	if !utf8.ValidRune(r) {
		r = c.options.Replacement
	}
	return c.canonical(string(r))
}

func (c *Converter) canonical(s string) string {
	if !c.options.Canonical {
		return s
	}
	return c.options.Form.String(s)
}
