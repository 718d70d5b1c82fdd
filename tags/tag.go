// Package tags parses the text struct tag controlling per field string
// normalization.
package tags

import (
	"reflect"
	"strings"
)

// TagName is the default control tag name
const TagName = "text"

// Tag represents parsed text tag control options
type Tag struct {
	Name string
	//Omit excludes the field from normalization
	Omit bool
	//CString applies the NUL terminated byte string rule to the field content
	CString bool
	//Form overrides the canonical form for the field: nfc, nfd, nfkc or nfkd
	Form string
}

// Parse returns the parsed control tag for the supplied struct tag, or nil
// when the tag is absent. Unknown keys are ignored.
func Parse(structTag reflect.StructTag, name string) *Tag {
	if name == "" {
		name = TagName
	}
	literal, ok := structTag.Lookup(name)
	if !ok {
		return nil
	}
	result := &Tag{Name: name}
	if literal == "" {
		return result
	}
	if literal == "-" {
		result.Omit = true
		return result
	}
	_ = Values(literal).MatchPairs(func(key, value string) error {
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "-", "omit":
			result.Omit = true
		case "cstring":
			result.CString = true
		case "form":
			result.Form = strings.ToLower(unscope(strings.TrimSpace(value)))
		}
		return nil
	})
	return result
}

// unscope strips a {...} scope or '...' quote the value grammar tolerates.
func unscope(value string) string {
	if len(value) > 1 {
		if value[0] == '{' && value[len(value)-1] == '}' {
			return value[1 : len(value)-1]
		}
		if value[0] == '\'' && value[len(value)-1] == '\'' {
			return value[1 : len(value)-1]
		}
	}
	return value
}
