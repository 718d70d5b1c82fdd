package json

import (
	"github.com/viant/tagly/format/text"
	"github.com/viant/textly"
)

// Options controls codec behavior
type Options struct {
	// Converter normalizes keys and string values both directions
	Converter *textly.Converter
	// CaseFormat reformats output object keys
	CaseFormat text.CaseFormat
	// NameTransformer reformats output object keys, derived from CaseFormat
	// unless set explicitly
	NameTransformer NameTransformer
}

// Option customizes codec behavior
type Option interface {
	apply(*Options)
}

type optionFn func(*Options)

func (o optionFn) apply(opts *Options) { o(opts) }

// WithConverter sets the converter normalizing keys and string values
func WithConverter(converter *textly.Converter) Option {
	return optionFn(func(o *Options) { o.Converter = converter })
}

// WithCaseFormat reformats output object keys into the supplied case format
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return optionFn(func(o *Options) { o.CaseFormat = caseFormat })
}

// WithNameTransformer sets an explicit output key transformer
func WithNameTransformer(transformer NameTransformer) Option {
	return optionFn(func(o *Options) { o.NameTransformer = transformer })
}

func defaultOptions() Options {
	return Options{
		Converter:  textly.Default(),
		CaseFormat: text.CaseFormatUndefined,
	}
}

func resolveOptions(opts []Option) *Options {
	result := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(&result)
	}
	if result.Converter == nil {
		result.Converter = textly.Default()
	}
	if result.NameTransformer == nil {
		if result.CaseFormat != text.CaseFormatUndefined && result.CaseFormat != "" {
			result.NameTransformer = caseFormatTransformer{caseFormat: result.CaseFormat}
		} else {
			result.NameTransformer = defaultNameTransformer{}
		}
	}
	return &result
}

var defaultBridge = resolveOptions(nil)

func (o *Options) text(s string) string {
	result, _ := o.Converter.String(s)
	return result
}

func (o *Options) key(k string) string {
	return o.NameTransformer.Transform(o.text(k))
}
