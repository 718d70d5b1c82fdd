package json

import (
	"sort"

	"github.com/francoispqt/gojay"
	"github.com/viant/textly/scrub"
)

// Object represents a JSON object whose keys and string values are
// normalized into valid UTF-8 both directions, recursing through nested
// objects and arrays.
type Object map[string]interface{}

// MarshalJSONObject implements gojay object marshaler
func (o Object) MarshalJSONObject(enc *gojay.Encoder) {
	encodeObject(o, enc, defaultBridge)
}

// IsNil implements gojay object marshaler
func (o Object) IsNil() bool { return o == nil }

// UnmarshalJSONObject implements gojay object unmarshaler
func (o Object) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	return decodeObjectKey(o, dec, key, defaultBridge)
}

// NKeys accepts any key set
func (o Object) NKeys() int { return 0 }

// List represents a JSON array with normalized string elements.
type List []interface{}

// MarshalJSONArray implements gojay array marshaler
func (l List) MarshalJSONArray(enc *gojay.Encoder) {
	encodeList(l, enc, defaultBridge)
}

// IsNil implements gojay array marshaler
func (l List) IsNil() bool { return l == nil }

// UnmarshalJSONArray implements gojay array unmarshaler
func (l *List) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	*l = append(*l, defaultBridge.normalize(value))
	return nil
}

// Strings represents a flat JSON object of string values.
type Strings map[string]string

// MarshalJSONObject implements gojay object marshaler
func (s Strings) MarshalJSONObject(enc *gojay.Encoder) {
	(&stringMap{data: s, options: defaultBridge}).MarshalJSONObject(enc)
}

// IsNil implements gojay object marshaler
func (s Strings) IsNil() bool { return s == nil }

// UnmarshalJSONObject implements gojay object unmarshaler
func (s Strings) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	return (&stringMap{data: s, options: defaultBridge}).UnmarshalJSONObject(dec, key)
}

// NKeys accepts any key set
func (s Strings) NKeys() int { return 0 }

// Values represents a flat JSON array of string values.
type Values []string

// MarshalJSONArray implements gojay array marshaler
func (v Values) MarshalJSONArray(enc *gojay.Encoder) {
	(&stringList{data: v, options: defaultBridge}).MarshalJSONArray(enc)
}

// IsNil implements gojay array marshaler
func (v Values) IsNil() bool { return v == nil }

// UnmarshalJSONArray implements gojay array unmarshaler
func (v *Values) UnmarshalJSONArray(dec *gojay.Decoder) error {
	value := ""
	if err := dec.String(&value); err != nil {
		return err
	}
	*v = append(*v, defaultBridge.text(value))
	return nil
}

type object struct {
	data    map[string]interface{}
	options *Options
}

func (o *object) MarshalJSONObject(enc *gojay.Encoder) {
	encodeObject(o.data, enc, o.options)
}

func (o *object) IsNil() bool { return o == nil || o.data == nil }

func (o *object) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	return decodeObjectKey(o.data, dec, key, o.options)
}

func (o *object) NKeys() int { return 0 }

type list struct {
	data    []interface{}
	options *Options
}

func (l *list) MarshalJSONArray(enc *gojay.Encoder) {
	encodeList(l.data, enc, l.options)
}

func (l *list) IsNil() bool { return l == nil || l.data == nil }

type listDecoder struct {
	dest    *[]interface{}
	options *Options
}

func (l *listDecoder) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	*l.dest = append(*l.dest, l.options.normalize(value))
	return nil
}

type stringMap struct {
	data    map[string]string
	options *Options
}

func (s *stringMap) MarshalJSONObject(enc *gojay.Encoder) {
	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		enc.StringKey(s.options.key(key), s.options.text(s.data[key]))
	}
}

func (s *stringMap) IsNil() bool { return s == nil || s.data == nil }

func (s *stringMap) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	value := ""
	if err := dec.String(&value); err != nil {
		return err
	}
	s.data[s.options.text(key)] = s.options.text(value)
	return nil
}

func (s *stringMap) NKeys() int { return 0 }

type stringList struct {
	data    []string
	options *Options
}

func (s *stringList) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range s.data {
		enc.String(s.options.text(item))
	}
}

func (s *stringList) IsNil() bool { return s == nil || s.data == nil }

type stringListDecoder struct {
	dest    *[]string
	options *Options
}

func (s *stringListDecoder) UnmarshalJSONArray(dec *gojay.Decoder) error {
	value := ""
	if err := dec.String(&value); err != nil {
		return err
	}
	*s.dest = append(*s.dest, s.options.text(value))
	return nil
}

func encodeObject(data map[string]interface{}, enc *gojay.Encoder, o *Options) {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		encodeValueKey(enc, o.key(key), data[key], o)
	}
}

func encodeList(data []interface{}, enc *gojay.Encoder, o *Options) {
	for _, item := range data {
		encodeValue(enc, item, o)
	}
}

func encodeValueKey(enc *gojay.Encoder, key string, value interface{}, o *Options) {
	switch actual := value.(type) {
	case nil:
		enc.NullKey(key)
	case string:
		enc.StringKey(key, o.text(actual))
	case bool:
		enc.BoolKey(key, actual)
	case int:
		enc.IntKey(key, actual)
	case int64:
		enc.Int64Key(key, actual)
	case float64:
		enc.FloatKey(key, actual)
	case float32:
		enc.Float32Key(key, actual)
	case Object:
		enc.ObjectKey(key, &object{data: actual, options: o})
	case map[string]interface{}:
		enc.ObjectKey(key, &object{data: actual, options: o})
	case Strings:
		enc.ObjectKey(key, &stringMap{data: actual, options: o})
	case map[string]string:
		enc.ObjectKey(key, &stringMap{data: actual, options: o})
	case List:
		enc.ArrayKey(key, &list{data: actual, options: o})
	case []interface{}:
		enc.ArrayKey(key, &list{data: actual, options: o})
	case Values:
		enc.ArrayKey(key, &stringList{data: actual, options: o})
	case []string:
		enc.ArrayKey(key, &stringList{data: actual, options: o})
	case gojay.MarshalerJSONObject:
		enc.ObjectKey(key, actual)
	case gojay.MarshalerJSONArray:
		enc.ArrayKey(key, actual)
	default:
		enc.AddInterfaceKey(key, value)
	}
}

func encodeValue(enc *gojay.Encoder, value interface{}, o *Options) {
	switch actual := value.(type) {
	case nil:
		enc.Null()
	case string:
		enc.String(o.text(actual))
	case bool:
		enc.Bool(actual)
	case int:
		enc.Int(actual)
	case int64:
		enc.Int64(actual)
	case float64:
		enc.Float(actual)
	case float32:
		enc.Float32(actual)
	case Object:
		enc.Object(&object{data: actual, options: o})
	case map[string]interface{}:
		enc.Object(&object{data: actual, options: o})
	case Strings:
		enc.Object(&stringMap{data: actual, options: o})
	case map[string]string:
		enc.Object(&stringMap{data: actual, options: o})
	case List:
		enc.Array(&list{data: actual, options: o})
	case []interface{}:
		enc.Array(&list{data: actual, options: o})
	case Values:
		enc.Array(&stringList{data: actual, options: o})
	case []string:
		enc.Array(&stringList{data: actual, options: o})
	case gojay.MarshalerJSONObject:
		enc.Object(actual)
	case gojay.MarshalerJSONArray:
		enc.Array(actual)
	default:
		enc.AddInterface(value)
	}
}

func decodeObjectKey(data map[string]interface{}, dec *gojay.Decoder, key string, o *Options) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	data[o.text(key)] = o.normalize(value)
	return nil
}

// normalize rewrites decoded containers in place and replaces string values.
func (o *Options) normalize(value interface{}) interface{} {
	switch actual := value.(type) {
	case string:
		return o.text(actual)
	case nil:
		return nil
	}
	_ = scrub.Any(value, scrub.WithConverter(o.Converter))
	return value
}
