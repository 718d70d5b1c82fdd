package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValues_MatchPairs(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      map[string]string
	}{
		{
			description: "flags only",
			input:       "cstring",
			expect: map[string]string{
				"cstring": "",
			},
		},
		{
			description: "mixed",
			input:       ",cstring,form=nfc",
			expect: map[string]string{
				"cstring": "",
				"form":    "nfc",
			},
		},
		{
			description: "scoped value",
			input:       "form={nfkd},cstring",
			expect: map[string]string{
				"form":    "{nfkd}",
				"cstring": "",
			},
		},
		{
			description: "trailing pair",
			input:       "omit,form=nfd",
			expect: map[string]string{
				"omit": "",
				"form": "nfd",
			},
		},
	}
	for _, testCase := range testCases {
		values := Values(testCase.input)
		actual := map[string]string{}
		err := values.MatchPairs(func(key, value string) error {
			actual[key] = value
			return nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
