package json

import (
	"bytes"
	"testing"

	"github.com/francoispqt/gojay"
	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
	"github.com/viant/textly"
)

func TestMarshal(t *testing.T) {
	testCases := []struct {
		description string
		input       interface{}
		options     []Option
		expect      string
	}{
		{
			description: "object with invalid string value",
			input:       Object{"name": "jo\xffhn", "age": 33},
			expect:      `{"age":33,"name":"jo` + "\uFFFD" + `hn"}`,
		},
		{
			description: "object with invalid key",
			input:       Object{"na\xffme": "x"},
			expect:      `{"na` + "\uFFFD" + `me":"x"}`,
		},
		{
			description: "nested object and array",
			input: Object{
				"item": map[string]interface{}{"label": "ba\xffd"},
				"tags": []interface{}{"o\xffk", true, nil},
			},
			expect: `{"item":{"label":"ba` + "\uFFFD" + `d"},"tags":["o` + "\uFFFD" + `k",true,null]}`,
		},
		{
			description: "flat string map",
			input:       Strings{"key": "val\xffue"},
			expect:      `{"key":"val` + "\uFFFD" + `ue"}`,
		},
		{
			description: "string values",
			input:       Values{"a", "b\xffc"},
			expect:      `["a","b` + "\uFFFD" + `c"]`,
		},
		{
			description: "plain string",
			input:       "he\xffllo",
			expect:      `"he` + "\uFFFD" + `llo"`,
		},
		{
			description: "nil",
			input:       nil,
			expect:      `null`,
		},
		{
			description: "case formatted keys",
			input:       Object{"UserName": "sam", "ID": 3},
			options:     []Option{WithCaseFormat(text.CaseFormatLowerUnderscore)},
			expect:      `{"id":3,"user_name":"sam"}`,
		},
	}

	for _, testCase := range testCases {
		actual, err := Marshal(testCase.input, testCase.options...)
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, string(actual), testCase.description)
	}
}

func TestMarshal_unsupported(t *testing.T) {
	_, err := Marshal(struct{ Name string }{})
	assert.NotNil(t, err)
}

func TestUnmarshal(t *testing.T) {
	{
		var dest Object
		err := Unmarshal([]byte(`{"name":"jo`+"\xff"+`hn","age":33,"tags":["o`+"\xff"+`k"]}`), &dest)
		assert.Nil(t, err)
		assert.EqualValues(t, "jo�hn", dest["name"])
		assert.EqualValues(t, 33, dest["age"])
		assert.EqualValues(t, "o�k", dest["tags"].([]interface{})[0])
	}
	{
		var dest Strings
		err := Unmarshal([]byte(`{"k":"v`+"\xff"+`alue"}`), &dest)
		assert.Nil(t, err)
		assert.EqualValues(t, Strings{"k": "v�alue"}, dest)
	}
	{
		var dest Values
		err := Unmarshal([]byte(`["a","b`+"\xff"+`c"]`), &dest)
		assert.Nil(t, err)
		assert.EqualValues(t, Values{"a", "b�c"}, dest)
	}
	{
		var dest List
		err := Unmarshal([]byte(`["x",1,null]`), &dest)
		assert.Nil(t, err)
		assert.EqualValues(t, 3, len(dest))
		assert.EqualValues(t, "x", dest[0])
	}
	{
		dest := ""
		err := Unmarshal([]byte(`"pla`+"\xff"+`in"`), &dest)
		assert.Nil(t, err)
		assert.EqualValues(t, "pla�in", dest)
	}
	{
		var dest map[string]string
		err := Unmarshal([]byte(`{"a":"b"}`), &dest)
		assert.Nil(t, err)
		assert.EqualValues(t, map[string]string{"a": "b"}, dest)
	}
}

func TestUnmarshal_customConverter(t *testing.T) {
	options := textly.DefaultOptions()
	options.Replacement = '?'
	converter := textly.NewConverter(options)

	var dest Strings
	err := Unmarshal([]byte(`{"k":"v`+"\xff"+`"}`), &dest, WithConverter(converter))
	assert.Nil(t, err)
	assert.EqualValues(t, Strings{"k": "v?"}, dest)
}

type account struct {
	Name  string
	Email string
}

func (a *account) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "name":
		return dec.String(&a.Name)
	case "email":
		return dec.String(&a.Email)
	}
	return nil
}

func (a *account) NKeys() int { return 2 }

func (a *account) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", a.Name)
	enc.StringKey("email", a.Email)
}

func (a *account) IsNil() bool { return a == nil }

func TestUnmarshal_userObjectDeepScrub(t *testing.T) {
	dest := &account{}
	err := Unmarshal([]byte(`{"name":"a`+"\xff"+`b","email":"a@b.c"}`), dest)
	assert.Nil(t, err)
	assert.EqualValues(t, "a�b", dest.Name)
	assert.EqualValues(t, "a@b.c", dest.Email)
}

func TestMarshal_userObjectPassthrough(t *testing.T) {
	actual, err := Marshal(&account{Name: "sam", Email: "s@e.co"})
	assert.Nil(t, err)
	assert.EqualValues(t, `{"name":"sam","email":"s@e.co"}`, string(actual))
}

func TestEncoder(t *testing.T) {
	buffer := &bytes.Buffer{}
	encoder := NewEncoder(buffer)
	err := encoder.Encode(Object{"text": "o\xffk"})
	assert.Nil(t, err)
	assert.EqualValues(t, `{"text":"o` + "\uFFFD" + `k"}`, buffer.String())
}

func TestDecoder(t *testing.T) {
	reader := bytes.NewReader([]byte(`{"text":"o` + "\xff" + `k"}`))
	decoder := NewDecoder(reader)
	var dest Object
	err := decoder.Decode(&dest)
	assert.Nil(t, err)
	assert.EqualValues(t, "o�k", dest["text"])
}
