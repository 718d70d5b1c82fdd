package tags

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		tag         reflect.StructTag
		name        string
		expect      *Tag
	}{
		{
			description: "absent tag",
			tag:         reflect.StructTag(`json:"name"`),
			name:        "text",
			expect:      nil,
		},
		{
			description: "omit",
			tag:         reflect.StructTag(`text:"-"`),
			name:        "text",
			expect:      &Tag{Name: "text", Omit: true},
		},
		{
			description: "cstring",
			tag:         reflect.StructTag(`text:"cstring"`),
			name:        "text",
			expect:      &Tag{Name: "text", CString: true},
		},
		{
			description: "form override",
			tag:         reflect.StructTag(`text:"form=nfkc"`),
			name:        "text",
			expect:      &Tag{Name: "text", Form: "nfkc"},
		},
		{
			description: "scoped form value",
			tag:         reflect.StructTag(`text:"form={nfkd}"`),
			name:        "text",
			expect:      &Tag{Name: "text", Form: "nfkd"},
		},
		{
			description: "quoted form value",
			tag:         reflect.StructTag(`text:"form='nfd'"`),
			name:        "text",
			expect:      &Tag{Name: "text", Form: "nfd"},
		},
		{
			description: "combined",
			tag:         reflect.StructTag(`text:"cstring,form=nfc"`),
			name:        "text",
			expect:      &Tag{Name: "text", CString: true, Form: "nfc"},
		},
		{
			description: "unknown keys ignored",
			tag:         reflect.StructTag(`text:"future,form=nfd"`),
			name:        "text",
			expect:      &Tag{Name: "text", Form: "nfd"},
		},
		{
			description: "custom tag name",
			tag:         reflect.StructTag(`scrub:"cstring"`),
			name:        "scrub",
			expect:      &Tag{Name: "scrub", CString: true},
		},
		{
			description: "empty literal",
			tag:         reflect.StructTag(`text:""`),
			name:        "text",
			expect:      &Tag{Name: "text"},
		},
	}
	for _, testCase := range testCases {
		actual := Parse(testCase.tag, testCase.name)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
