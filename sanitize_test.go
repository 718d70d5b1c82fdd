package textly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expect      string
	}{
		{
			description: "valid ascii",
			input:       "hello world",
			expect:      "hello world",
		},
		{
			description: "valid multi byte",
			input:       "héllo wörld \U0001F600",
			expect:      "héllo wörld \U0001F600",
		},
		{
			description: "lone continuation byte",
			input:       "a\x80b",
			expect:      "a�b",
		},
		{
			description: "overlong sequence",
			input:       "\xC0\xAF",
			expect:      "��",
		},
		{
			description: "truncated sequence at end",
			input:       "ok\xE2\x82",
			expect:      "ok��",
		},
		{
			description: "literal replacement character survives",
			input:       "a�b",
			expect:      "a�b",
		},
		{
			description: "empty",
			input:       "",
			expect:      "",
		},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, Sanitize(testCase.input), testCase.description)
	}
}

func TestSanitize_validReuse(t *testing.T) {
	input := "already valid"
	actual := Sanitize(input)
	assert.Equal(t, unsafeStringData(input), unsafeStringData(actual))
}

func TestSanitizeBytes(t *testing.T) {
	assert.EqualValues(t, "abc", SanitizeBytes([]byte("abc")))
	assert.EqualValues(t, "a�c", SanitizeBytes([]byte{0x61, 0xF5, 0x63}))
	assert.EqualValues(t, "", SanitizeBytes(nil))
}
