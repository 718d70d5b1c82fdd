package scrub

import (
	"fmt"
	"reflect"
	"time"
	"unicode"
	"unicode/utf8"
	"unsafe"

	"github.com/viant/textly/tags"
	"github.com/viant/xunsafe"
)

var timeType = reflect.TypeOf(time.Time{})

var (
	structCache = NewSyncMap[reflect.Type, *xunsafe.Struct]()
	sliceCache  = NewSyncMap[reflect.Type, *xunsafe.Slice]()
)

// Struct normalizes every reachable string field of the supplied struct
// pointer in place. Exported string, *string, []string, map fields and
// nested structs are descended; []byte fields are binary payload and stay
// untouched.
func Struct(v interface{}, opts ...Option) error {
	return scrubStruct(v, newOptions(opts))
}

func scrubStruct(v interface{}, o *options) error {
	rType := reflect.TypeOf(v)
	if rType == nil || rType.Kind() != reflect.Ptr || rType.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected struct pointer, got %T", v)
	}
	if reflect.ValueOf(v).IsNil() {
		return fmt.Errorf("expected non nil struct pointer, got %T", v)
	}
	walker := &walker{options: o, visited: map[unsafe.Pointer]bool{}}
	return walker.structAt(rType.Elem(), xunsafe.AsPointer(v), "")
}

type walker struct {
	options *options
	visited map[unsafe.Pointer]bool
}

func xStructFor(structType reflect.Type) *xunsafe.Struct {
	xStruct, ok := structCache.Get(structType)
	if !ok {
		xStruct = xunsafe.NewStruct(structType)
		structCache.Put(structType, xStruct)
	}
	return xStruct
}

func xSliceFor(sliceType reflect.Type) *xunsafe.Slice {
	xSlice, ok := sliceCache.Get(sliceType)
	if !ok {
		xSlice = xunsafe.NewSlice(sliceType)
		sliceCache.Put(sliceType, xSlice)
	}
	return xSlice
}

func (w *walker) structAt(structType reflect.Type, ptr unsafe.Pointer, path string) error {
	if structType == timeType {
		return nil
	}
	xStruct := xStructFor(structType)
	for i := range xStruct.Fields {
		xField := &xStruct.Fields[i]
		if !exported(xField.Name) {
			continue
		}
		fieldPath := xField.Name
		if path != "" {
			fieldPath = path + "." + xField.Name
		}
		if w.options.skipped(fieldPath) {
			continue
		}
		tag := tags.Parse(xField.Tag, w.options.tagName)
		if tag != nil && tag.Omit {
			continue
		}
		if err := w.fieldAt(xField, ptr, fieldPath, tag); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) fieldAt(xField *xunsafe.Field, ptr unsafe.Pointer, path string, tag *tags.Tag) error {
	fieldType := xField.Type
	switch fieldType.Kind() {
	case reflect.String:
		fieldPtr := xField.Pointer(ptr)
		*(*string)(fieldPtr) = w.options.text(*(*string)(fieldPtr), tag)
	case reflect.Ptr:
		switch fieldType.Elem().Kind() {
		case reflect.String:
			holder := *(**string)(xField.Pointer(ptr))
			if holder != nil {
				*holder = w.options.text(*holder, tag)
			}
		case reflect.Struct:
			fieldPtr := xField.Pointer(ptr)
			if *(*unsafe.Pointer)(fieldPtr) == nil {
				return nil
			}
			elemPtr := xunsafe.DerefPointer(fieldPtr)
			if w.visited[elemPtr] {
				return nil
			}
			w.visited[elemPtr] = true
			return w.structAt(fieldType.Elem(), elemPtr, path)
		}
	case reflect.Slice:
		return w.sliceAt(xField, ptr, path, tag)
	case reflect.Map:
		if fieldType.Key().Kind() != reflect.String {
			return nil
		}
		switch fieldType.Elem().Kind() {
		case reflect.String:
			aMap := *(*map[string]string)(xField.Pointer(ptr))
			if aMap != nil {
				scrubStringMap(aMap, w.options)
			}
		case reflect.Interface:
			aMap := *(*map[string]interface{})(xField.Pointer(ptr))
			if aMap != nil {
				return scrubAnyMap(aMap, w.options)
			}
		}
	case reflect.Interface:
		if fieldType.NumMethod() != 0 {
			return nil
		}
		value := xField.Value(ptr)
		if value == nil {
			return nil
		}
		normalized, err := normalizeValue(value, w.options)
		if err != nil {
			return err
		}
		xField.SetValue(ptr, normalized)
	case reflect.Struct:
		return w.structAt(fieldType, xField.Pointer(ptr), path)
	}
	return nil
}

func (w *walker) sliceAt(xField *xunsafe.Field, ptr unsafe.Pointer, path string, tag *tags.Tag) error {
	elemType := xField.Type.Elem()
	switch elemType.Kind() {
	case reflect.String:
		items := *(*[]string)(xField.Pointer(ptr))
		for i, item := range items {
			items[i] = w.options.text(item, tag)
		}
	case reflect.Interface:
		if elemType.NumMethod() != 0 {
			return nil
		}
		items := *(*[]interface{})(xField.Pointer(ptr))
		return scrubSlice(items, w.options)
	case reflect.Struct:
		if elemType == timeType {
			return nil
		}
		slicePtr := xField.Pointer(ptr)
		xSlice := xSliceFor(xField.Type)
		itemCount := xSlice.Len(slicePtr)
		for i := 0; i < itemCount; i++ {
			if err := w.structAt(elemType, xSlice.PointerAt(slicePtr, uintptr(i)), path); err != nil {
				return err
			}
		}
	case reflect.Ptr:
		if elemType.Elem().Kind() != reflect.Struct {
			return nil
		}
		slicePtr := xField.Pointer(ptr)
		xSlice := xSliceFor(xField.Type)
		itemCount := xSlice.Len(slicePtr)
		for i := 0; i < itemCount; i++ {
			itemPtr := xSlice.PointerAt(slicePtr, uintptr(i))
			if *(*unsafe.Pointer)(itemPtr) == nil {
				continue
			}
			elemPtr := xunsafe.DerefPointer(itemPtr)
			if w.visited[elemPtr] {
				continue
			}
			w.visited[elemPtr] = true
			if err := w.structAt(elemType.Elem(), elemPtr, path); err != nil {
				return err
			}
		}
	}
	return nil
}

func exported(name string) bool {
	if name == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
