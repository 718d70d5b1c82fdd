// Package json is a UTF-8 safe JSON bridge: every string passing through it,
// keys and values both directions, is normalized with the textly converter,
// so emitted documents are valid UTF-8 regardless of input bytes.
package json

import (
	"fmt"
	"io"

	"github.com/francoispqt/gojay"
	"github.com/viant/textly/scrub"
)

// Marshal encodes the supplied value. It accepts Object, List, Strings,
// Values, their plain map and slice counterparts, string, and user gojay
// marshalers, which are passed through untouched.
func Marshal(value interface{}, opts ...Option) ([]byte, error) {
	o := resolveOptions(opts)
	switch actual := value.(type) {
	case nil:
		return []byte("null"), nil
	case Object:
		return gojay.MarshalJSONObject(&object{data: actual, options: o})
	case map[string]interface{}:
		return gojay.MarshalJSONObject(&object{data: actual, options: o})
	case Strings:
		return gojay.MarshalJSONObject(&stringMap{data: actual, options: o})
	case map[string]string:
		return gojay.MarshalJSONObject(&stringMap{data: actual, options: o})
	case List:
		return gojay.MarshalJSONArray(&list{data: actual, options: o})
	case []interface{}:
		return gojay.MarshalJSONArray(&list{data: actual, options: o})
	case Values:
		return gojay.MarshalJSONArray(&stringList{data: actual, options: o})
	case []string:
		return gojay.MarshalJSONArray(&stringList{data: actual, options: o})
	case string:
		return gojay.Marshal(o.text(actual))
	case gojay.MarshalerJSONObject:
		return gojay.MarshalJSONObject(actual)
	case gojay.MarshalerJSONArray:
		return gojay.MarshalJSONArray(actual)
	}
	return nil, fmt.Errorf("unsupported marshal source: %T", value)
}

// Unmarshal decodes data into dest, normalizing every decoded string. A user
// gojay object unmarshaler is decoded as is, then deep scrubbed.
func Unmarshal(data []byte, dest interface{}, opts ...Option) error {
	o := resolveOptions(opts)
	switch actual := dest.(type) {
	case *Object:
		if *actual == nil {
			*actual = Object{}
		}
		return gojay.UnmarshalJSONObject(data, &object{data: *actual, options: o})
	case *map[string]interface{}:
		if *actual == nil {
			*actual = map[string]interface{}{}
		}
		return gojay.UnmarshalJSONObject(data, &object{data: *actual, options: o})
	case *Strings:
		if *actual == nil {
			*actual = Strings{}
		}
		return gojay.UnmarshalJSONObject(data, &stringMap{data: *actual, options: o})
	case *map[string]string:
		if *actual == nil {
			*actual = map[string]string{}
		}
		return gojay.UnmarshalJSONObject(data, &stringMap{data: *actual, options: o})
	case *List:
		return gojay.UnmarshalJSONArray(data, &listDecoder{dest: (*[]interface{})(actual), options: o})
	case *[]interface{}:
		return gojay.UnmarshalJSONArray(data, &listDecoder{dest: actual, options: o})
	case *Values:
		return gojay.UnmarshalJSONArray(data, &stringListDecoder{dest: (*[]string)(actual), options: o})
	case *[]string:
		return gojay.UnmarshalJSONArray(data, &stringListDecoder{dest: actual, options: o})
	case *string:
		if err := gojay.Unmarshal(data, actual); err != nil {
			return err
		}
		*actual = o.text(*actual)
		return nil
	case gojay.UnmarshalerJSONObject:
		if err := gojay.UnmarshalJSONObject(data, actual); err != nil {
			return err
		}
		return scrub.Any(actual, scrub.WithConverter(o.Converter))
	}
	return fmt.Errorf("unsupported unmarshal destination: %T", dest)
}

// Encoder writes normalized JSON documents to a stream.
type Encoder struct {
	writer  io.Writer
	options *Options
}

// NewEncoder creates a stream encoder
func NewEncoder(writer io.Writer, opts ...Option) *Encoder {
	return &Encoder{writer: writer, options: resolveOptions(opts)}
}

// Encode writes one document. Accepted values match Marshal.
func (e *Encoder) Encode(value interface{}) error {
	enc := gojay.BorrowEncoder(e.writer)
	defer enc.Release()
	switch actual := value.(type) {
	case Object:
		return enc.EncodeObject(&object{data: actual, options: e.options})
	case map[string]interface{}:
		return enc.EncodeObject(&object{data: actual, options: e.options})
	case Strings:
		return enc.EncodeObject(&stringMap{data: actual, options: e.options})
	case map[string]string:
		return enc.EncodeObject(&stringMap{data: actual, options: e.options})
	case List:
		return enc.EncodeArray(&list{data: actual, options: e.options})
	case []interface{}:
		return enc.EncodeArray(&list{data: actual, options: e.options})
	case Values:
		return enc.EncodeArray(&stringList{data: actual, options: e.options})
	case []string:
		return enc.EncodeArray(&stringList{data: actual, options: e.options})
	case string:
		return enc.EncodeString(e.options.text(actual))
	case gojay.MarshalerJSONObject:
		return enc.EncodeObject(actual)
	case gojay.MarshalerJSONArray:
		return enc.EncodeArray(actual)
	}
	return fmt.Errorf("unsupported marshal source: %T", value)
}

// Decoder reads JSON documents from a stream, normalizing decoded strings.
type Decoder struct {
	decoder *gojay.Decoder
	options *Options
}

// NewDecoder creates a stream decoder
func NewDecoder(reader io.Reader, opts ...Option) *Decoder {
	return &Decoder{decoder: gojay.NewDecoder(reader), options: resolveOptions(opts)}
}

// Decode reads one document into dest. Accepted destinations match
// Unmarshal.
func (d *Decoder) Decode(dest interface{}) error {
	switch actual := dest.(type) {
	case *Object:
		if *actual == nil {
			*actual = Object{}
		}
		return d.decoder.DecodeObject(&object{data: *actual, options: d.options})
	case *map[string]interface{}:
		if *actual == nil {
			*actual = map[string]interface{}{}
		}
		return d.decoder.DecodeObject(&object{data: *actual, options: d.options})
	case *Strings:
		if *actual == nil {
			*actual = Strings{}
		}
		return d.decoder.DecodeObject(&stringMap{data: *actual, options: d.options})
	case *map[string]string:
		if *actual == nil {
			*actual = map[string]string{}
		}
		return d.decoder.DecodeObject(&stringMap{data: *actual, options: d.options})
	case *List:
		return d.decoder.DecodeArray(&listDecoder{dest: (*[]interface{})(actual), options: d.options})
	case *[]interface{}:
		return d.decoder.DecodeArray(&listDecoder{dest: actual, options: d.options})
	case *Values:
		return d.decoder.DecodeArray(&stringListDecoder{dest: (*[]string)(actual), options: d.options})
	case *[]string:
		return d.decoder.DecodeArray(&stringListDecoder{dest: actual, options: d.options})
	case *string:
		if err := d.decoder.DecodeString(actual); err != nil {
			return err
		}
		*actual = d.options.text(*actual)
		return nil
	case gojay.UnmarshalerJSONObject:
		if err := d.decoder.DecodeObject(actual); err != nil {
			return err
		}
		return scrub.Any(actual, scrub.WithConverter(d.options.Converter))
	}
	return fmt.Errorf("unsupported unmarshal destination: %T", dest)
}
