package textly

import (
	"strings"
	"testing"
)

var benchResult string

func BenchmarkSanitize_Valid(b *testing.B) {
	input := strings.Repeat("valid utf-8 content ", 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult = Sanitize(input)
	}
}

func BenchmarkSanitize_Invalid(b *testing.B) {
	input := strings.Repeat("bad \xff byte ", 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult = Sanitize(input)
	}
}

func BenchmarkConverter_String(b *testing.B) {
	converter := NewConverter(DefaultOptions())
	input := strings.Repeat("payload ", 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult, _ = converter.String(input)
	}
}

func BenchmarkConverter_String_namedType(b *testing.B) {
	converter := NewConverter(DefaultOptions())
	input := localName(strings.Repeat("payload ", 16))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult, _ = converter.String(input)
	}
}

func BenchmarkCString_String(b *testing.B) {
	input := CString("hostname\x00" + strings.Repeat("\x00", 55))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult = input.String()
	}
}

func BenchmarkWideString_String(b *testing.B) {
	input := make(WideString, 128)
	for i := range input {
		input[i] = uint16('a' + i%26)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResult = input.String()
	}
}
