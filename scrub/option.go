package scrub

import (
	"github.com/viant/textly"
	"github.com/viant/textly/tags"
	"golang.org/x/text/unicode/norm"
)

type options struct {
	converter *textly.Converter
	tagName   string
	skip      map[string]bool
}

// Option customizes normalization
type Option func(*options)

// WithConverter sets the converter applied to each reachable string
func WithConverter(converter *textly.Converter) Option {
	return func(o *options) {
		o.converter = converter
	}
}

// WithSkip excludes the supplied dotted field paths from normalization
func WithSkip(paths ...string) Option {
	return func(o *options) {
		if o.skip == nil {
			o.skip = map[string]bool{}
		}
		for _, path := range paths {
			o.skip[path] = true
		}
	}
}

// WithTag overrides the control tag name, "text" by default
func WithTag(name string) Option {
	return func(o *options) {
		if name != "" {
			o.tagName = name
		}
	}
}

func newOptions(opts []Option) *options {
	result := &options{converter: textly.Default(), tagName: tags.TagName}
	for _, opt := range opts {
		opt(result)
	}
	return result
}

func (o *options) skipped(path string) bool {
	return len(o.skip) > 0 && o.skip[path]
}

var forms = map[string]norm.Form{
	"nfc":  norm.NFC,
	"nfd":  norm.NFD,
	"nfkc": norm.NFKC,
	"nfkd": norm.NFKD,
}

// text applies the field control tag and the converter to a single value.
func (o *options) text(value string, tag *tags.Tag) string {
	if tag != nil && tag.CString {
		value, _ = o.converter.String(textly.CString(value))
	}
	result, _ := o.converter.String(value)
	if tag != nil && tag.Form != "" {
		if form, ok := forms[tag.Form]; ok {
			result = form.String(result)
		}
	}
	return result
}
